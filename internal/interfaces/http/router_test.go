package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencia-api/internal/application/auth"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	apphttp "github.com/jhoicas/agencia-api/internal/interfaces/http"
)

// buildRouterApp monta el router real sobre repos nulos: los tests de esta
// suite solo verifican la superficie de rutas (método, middleware de rol),
// cortando en el parseo del body antes de llegar a los casos de uso.
func buildRouterApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(repo, nil, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
			RefreshTTL: time.Hour,
		}),
		UserUC:     usecase.NewUserUseCase(repo),
		ContentUC:  usecase.NewContentUseCase(nil),
		ServiceUC:  usecase.NewServiceUseCase(nil, nil),
		PlanUC:     usecase.NewPlanUseCase(nil, nil),
		ProductUC:  usecase.NewProductUseCase(nil, nil),
		BlogPostUC: usecase.NewBlogPostUseCase(nil, nil),
		LeadUC:     usecase.NewLeadUseCase(nil),
		LeadReport: usecase.NewLeadReportUseCase(nil, nil),
		UserRepo:   repo,
		JWTSecret:  testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con body JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de superficie de rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ReorderEsPOST(t *testing.T) {
	editor := testUser("editor-1", entity.RoleEditor, entity.UserStatusActive)
	repo := newFakeUserRepo(editor)
	app := buildRouterApp(repo)
	token := tokenFor(t, editor)

	for _, path := range []string{
		"/api/services/reorder",
		"/api/plans/reorder",
		"/api/products/reorder",
		"/api/episodes/reorder",
	} {
		// Un body malformado corta en el handler con 400: la ruta existe
		// como POST y el editor pasa el control de rol.
		resp := doJSON(t, app, http.MethodPost, path, token, `{"order":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "POST %s", path)

		resp = doJSON(t, app, http.MethodPatch, path, token, `{}`)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, "PATCH %s", path)
	}
}

func TestRouter_ReorderRechazaRolUser(t *testing.T) {
	user := testUser("user-1", entity.RoleUser, entity.UserStatusActive)
	repo := newFakeUserRepo(user)
	app := buildRouterApp(repo)

	resp := doJSON(t, app, http.MethodPost, "/api/services/reorder", tokenFor(t, user), `{}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_EscriturasDeLeadsSoloEditores(t *testing.T) {
	user := testUser("user-1", entity.RoleUser, entity.UserStatusActive)
	repo := newFakeUserRepo(user)
	app := buildRouterApp(repo)
	token := tokenFor(t, user)

	cases := []struct{ method, path string }{
		{http.MethodPut, "/api/leads/lead-1"},
		{http.MethodPut, "/api/leads/lead-1/estado"},
		{http.MethodPut, "/api/leads/lead-1/asignar"},
	}
	for _, c := range cases {
		resp := doJSON(t, app, c.method, c.path, token, `{}`)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s con rol user", c.method, c.path)
	}
}

func TestRouter_EditorPasaElControlDeRolEnLeads(t *testing.T) {
	editor := testUser("editor-1", entity.RoleEditor, entity.UserStatusActive)
	repo := newFakeUserRepo(editor)
	app := buildRouterApp(repo)

	// Body malformado: 400 del handler demuestra que el editor pasó el
	// middleware de rol.
	resp := doJSON(t, app, http.MethodPut, "/api/leads/lead-1/estado", tokenFor(t, editor), `{"estado":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
