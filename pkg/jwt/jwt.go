package jwt

import (
	"errors"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/config"
)

var (
	ErrTokenExpired = errors.New("token expirado")
	ErrTokenInvalid = errors.New("token inválido")
)

// Claims contenido del token de sesión: sub (id_persona), nombre, exp
type Claims struct {
	Nombre string `json:"nombre"`
	jwtv5.RegisteredClaims
}

// PersonaID devuelve sub como id_persona numérico
func (c *Claims) PersonaID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Manager firma y verifica tokens. Inmutable después de construirse.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager crea el gestor de tokens
func NewManager(cfg *config.AuthConfig) *Manager {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
	}
}

// TTL vigencia de los tokens emitidos
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// GenerateToken emite un token HS256 para la persona indicada
func (m *Manager) GenerateToken(personaID int64, nombre string) (string, error) {
	now := time.Now()
	claims := Claims{
		Nombre: nombre,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatInt(personaID, 10),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken decodifica y verifica firma y expiración
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if _, err := claims.PersonaID(); err != nil {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
