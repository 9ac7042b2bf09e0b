package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencia-api/internal/domain/entity"
	apphttp "github.com/jhoicas/agencia-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/agencia-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "agencia-api-test"
	testExpMin    = 60
)

// fakeUserRepo implementa repository.UserRepository en memoria, indexado por id.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) List(page, limit int) ([]*entity.User, int, error) {
	return nil, len(r.users), nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) UpdatePassword(id, hash string) error {
	if u := r.users[id]; u != nil {
		u.PasswordHash = hash
	}
	return nil
}
func (r *fakeUserRepo) ChangeStatus(id, status string) error {
	if u := r.users[id]; u != nil {
		u.Status = status
	}
	return nil
}

func testUser(id, role, status string) *entity.User {
	now := time.Now()
	return &entity.User{
		ID:        id,
		Email:     id + "@agencia.test",
		Name:      "Usuario " + role,
		Role:      role,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware que re-resuelve el usuario contra el repo fake
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(repo *fakeUserRepo, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetUserRole(c),
			})
		},
	)
	app.Get("/public",
		apphttp.OptionalAuth(testJWTSecret, repo),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": apphttp.GetUserRole(c)})
		},
	)
	return app
}

// tokenFor genera un JWT para el usuario indicado.
func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.Email, u.Role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → 401: falta la credencial, no es un rechazo.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	admin := testUser("u-admin", entity.RoleAdmin, entity.UserStatusActive)
	app := buildTestApp(newFakeUserRepo(admin), entity.RoleAdmin)

	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"credencial ausente debe retornar 401")
}

// Token malformado → 403: la credencial existe pero no es válida.
func TestAuthMiddleware_TokenInvalido_Retorna403(t *testing.T) {
	admin := testUser("u-admin", entity.RoleAdmin, entity.UserStatusActive)
	app := buildTestApp(newFakeUserRepo(admin), entity.RoleAdmin)

	resp := doRequest(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"token inválido debe retornar 403")
}

// Token expirado → 403.
func TestAuthMiddleware_TokenExpirado_Retorna403(t *testing.T) {
	admin := testUser("u-admin", entity.RoleAdmin, entity.UserStatusActive)
	app := buildTestApp(newFakeUserRepo(admin), entity.RoleAdmin)

	tok, err := pkgjwt.Generate(testJWTSecret, admin.ID, admin.Email, admin.Role, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Token válido de un usuario suspendido → 403: la base manda, no el token.
func TestAuthMiddleware_UsuarioSuspendido_Retorna403(t *testing.T) {
	suspended := testUser("u-susp", entity.RoleEditor, entity.UserStatusSuspended)
	app := buildTestApp(newFakeUserRepo(suspended), entity.RoleEditor)

	resp := doRequest(t, app, "/protected", tokenFor(t, suspended))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"usuario suspendido debe perder acceso aunque su token siga vigente")
}

// Token válido de un usuario borrado de la base → 403.
func TestAuthMiddleware_UsuarioInexistente_Retorna403(t *testing.T) {
	ghost := testUser("u-ghost", entity.RoleAdmin, entity.UserStatusActive)
	app := buildTestApp(newFakeUserRepo(), entity.RoleAdmin) // repo vacío

	resp := doRequest(t, app, "/protected", tokenFor(t, ghost))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	admin := testUser("u-admin", entity.RoleAdmin, entity.UserStatusActive)
	app := buildTestApp(newFakeUserRepo(admin), entity.RoleAdmin)

	resp := doRequest(t, app, "/protected", tokenFor(t, admin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestRequireRole_EditorAccedeRutaMultiRol(t *testing.T) {
	editor := testUser("u-editor", entity.RoleEditor, entity.UserStatusActive)
	app := buildTestApp(newFakeUserRepo(editor), entity.RoleAdmin, entity.RoleEditor)

	resp := doRequest(t, app, "/protected", tokenFor(t, editor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"editor debe poder acceder a ruta que permite admin o editor")
}

func TestRequireRole_UserBloqueadoEnRutaEditor(t *testing.T) {
	user := testUser("u-user", entity.RoleUser, entity.UserStatusActive)
	app := buildTestApp(newFakeUserRepo(user), entity.RoleAdmin, entity.RoleEditor)

	resp := doRequest(t, app, "/protected", tokenFor(t, user))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"rol user no debe poder acceder a rutas de edición")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OptionalAuth
// ──────────────────────────────────────────────────────────────────────────────

// Sin token el request público pasa igual, sin usuario en el contexto.
func TestOptionalAuth_SinToken_Pasa(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())

	resp := doRequest(t, app, "/public", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body["role"], "sin token no debe haber rol en el contexto")
}

// Con token de editor el request público adquiere el rol.
func TestOptionalAuth_ConToken_AdjuntaUsuario(t *testing.T) {
	editor := testUser("u-editor", entity.RoleEditor, entity.UserStatusActive)
	app := buildTestApp(newFakeUserRepo(editor))

	resp := doRequest(t, app, "/public", tokenFor(t, editor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.RoleEditor, body["role"])
}

// Token inválido en ruta pública no bloquea: se trata como anónimo.
func TestOptionalAuth_TokenInvalido_PasaComoAnonimo(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())

	resp := doRequest(t, app, "/public", "Bearer basura")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
