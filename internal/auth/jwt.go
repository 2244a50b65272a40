package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - полезная нагрузка токена внешнего провайдера идентификации.
// sub = id пользователя, role = роль (USER, MODERATOR, ADMIN).
type Claims struct {
	UserID string `json:"-"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

var (
	mu     sync.RWMutex
	secret []byte
	ttl    = time.Hour
)

// Configure задает секрет HS256 и время жизни выпускаемых токенов
func Configure(jwtSecret string, tokenTTL time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	secret = []byte(jwtSecret)
	if tokenTTL > 0 {
		ttl = tokenTTL
	}
}

func signingKey() ([]byte, error) {
	mu.RLock()
	defer mu.RUnlock()
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	return secret, nil
}

// GenerateToken выпускает токен. Сам сервис токены не выдает,
// функция нужна для тестов и локальной разработки (cmd/seed).
func GenerateToken(userID, role string) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	mu.RLock()
	lifetime := ttl
	mu.RUnlock()

	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(tokenStr string) (*Claims, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	claims.UserID = claims.Subject
	return claims, nil
}
