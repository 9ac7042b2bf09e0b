package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/agencia-api/internal/application/auth"
	"github.com/redis/go-redis/v9"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStore guarda refresh tokens opacos en Redis con TTL. El valor es el
// user id del dueño. Consume borra y devuelve en una sola operación, de modo
// que cada refresh token se usa exactamente una vez (rotación).
type TokenStore struct {
	client *redis.Client
}

var _ auth.RefreshTokenStore = (*TokenStore)(nil)

// NewTokenStore construye el store sobre un cliente Redis.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save registra un refresh token para userID con la vida indicada.
func (s *TokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshTokenKeyPrefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("guardar refresh token: %w", err)
	}
	return nil
}

// Consume devuelve el user id del token y lo elimina. Devuelve "" si el
// token no existe o ya expiró.
func (s *TokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, refreshTokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("consumir refresh token: %w", err)
	}
	return userID, nil
}

// Revoke elimina un refresh token (logout).
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshTokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("revocar refresh token: %w", err)
	}
	return nil
}
