package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"

	CookieName = "jwt"
)

type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

type Config struct {
	Secret    string        `envconfig:"JWT_SECRET" required:"true" json:"-"`
	ExpiresIn time.Duration `envconfig:"JWT_EXPIRES_IN" default:"24h"`
}

type TokenManager struct {
	key []byte
	ttl time.Duration
}

func NewTokenManager(cfg Config) *TokenManager {
	return &TokenManager{key: []byte(cfg.Secret), ttl: cfg.ExpiresIn}
}

func (m *TokenManager) Sign(p Profile) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.ttl)
	claims := &Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

var (
	ErrInvalidToken = errors.New("invalid token. Please log in again")
	ErrTokenExpired = errors.New("your token has expired. Please log in again")
)

func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.key, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (Profile, bool) {
	p, ok := ctx.Value(ctxKey{}).(Profile)
	return p, ok
}

func IsAdmin(ctx context.Context) bool {
	p, ok := FromContext(ctx)
	return ok && p.Role == RoleAdmin
}
