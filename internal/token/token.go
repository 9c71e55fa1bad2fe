package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims é a identidade resolvida de um bearer token válido.
type Claims struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

// Manager emite e verifica tokens HS256 com validade fixa (8h por
// padrão, via config). O segredo nunca sai daqui.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) Issue(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":   float64(user.ID),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   now.Add(m.ttl).Unix(),
		"iat":   now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *Manager) Verify(tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mc["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	name, _ := mc["name"].(string)
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)

	return &Claims{
		UserID: uint(sub),
		Name:   name,
		Email:  email,
		Role:   role,
	}, nil
}
