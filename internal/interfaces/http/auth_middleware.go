package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
	"github.com/jhoicas/agencia-api/pkg/jwt"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserRole  = "user_role"
)

// bearerToken extrae el token del header Authorization. El segundo valor
// distingue "header ausente" de "header malformado".
func bearerToken(c *fiber.Ctx) (token string, present bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", true
	}
	return strings.TrimSpace(parts[1]), true
}

// AuthMiddleware valida el Bearer Token JWT y re-resuelve el usuario contra
// la base en cada request: un usuario desactivado pierde acceso de inmediato
// aunque su token siga vigente. Credencial ausente responde 401; credencial
// presente pero inválida (o cuenta no activa) responde 403.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, present := bearerToken(c)
		if !present {
			return fail(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		if token == "" {
			return fail(c, fiber.StatusForbidden, "formato: Bearer <token>")
		}
		claims, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return fail(c, fiber.StatusForbidden, "token inválido o expirado")
		}
		user, err := users.GetByID(claims.Subject)
		if err != nil {
			return failErr(c, err)
		}
		if user == nil || user.Status != entity.UserStatusActive {
			return fail(c, fiber.StatusForbidden, "cuenta inactiva o suspendida")
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserEmail, user.Email)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// OptionalAuth adjunta el usuario si viene un token válido y deja pasar en
// cualquier otro caso. Lo usan los GET públicos para decidir si mostrar
// recursos no publicados a los editores.
func OptionalAuth(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, present := bearerToken(c)
		if !present || token == "" {
			return c.Next()
		}
		claims, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Next()
		}
		user, err := users.GetByID(claims.Subject)
		if err != nil || user == nil || user.Status != entity.UserStatusActive {
			return c.Next()
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserEmail, user.Email)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// RequireRole exige que el rol del usuario autenticado esté en la lista.
// Corre después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetUserRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, "rol insuficiente")
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserRole devuelve el rol del contexto.
func GetUserRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserRole).(string)
	return s
}

// IsEditor indica si el usuario del contexto puede ver recursos no
// publicados (admin o editor).
func IsEditor(c *fiber.Ctx) bool {
	role := GetUserRole(c)
	return role == entity.RoleAdmin || role == entity.RoleEditor
}
