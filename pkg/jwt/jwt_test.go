package jwt

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "clave-de-prueba-para-tests-2025",
		TokenTTL:  24 * time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken(42, "Ana Pérez")
	if err != nil {
		t.Fatalf("GenerateToken falló: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falló: %v", err)
	}

	if claims.Subject != "42" {
		t.Errorf("se esperaba sub=42, se obtuvo %s", claims.Subject)
	}
	id, err := claims.PersonaID()
	if err != nil || id != 42 {
		t.Errorf("PersonaID inesperado: %d, %v", id, err)
	}
	if claims.Nombre != "Ana Pérez" {
		t.Errorf("se esperaba nombre=Ana Pérez, se obtuvo %s", claims.Nombre)
	}
	if claims.ID == "" {
		t.Error("jti no debe estar vacío")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("vigencia esperada ~24h, se obtuvo %v", ttl)
	}
}

func TestNewManager_TTLPorDefecto(t *testing.T) {
	m := NewManager(&config.AuthConfig{JWTSecret: "clave-de-prueba-para-tests-2025"})
	if m.TTL() != 24*time.Hour {
		t.Errorf("TTL por defecto esperado 24h, se obtuvo %v", m.TTL())
	}
}

func TestParseToken_Invalido(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("invalid.token.string"); err != ErrTokenInvalid {
		t.Errorf("se esperaba ErrTokenInvalid, se obtuvo %v", err)
	}
}

func TestParseToken_OtraClave(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret: "otra-clave-distinta-de-la-primera",
		TokenTTL:  time.Hour,
	})

	token, _ := m1.GenerateToken(1, "Tutor")
	if _, err := m2.ParseToken(token); err == nil {
		t.Error("un token firmado con otra clave no debe validar")
	}
}

func TestParseToken_Expirado(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret: "clave-de-prueba-para-tests-2025",
		TokenTTL:  time.Millisecond,
	})

	token, _ := m.GenerateToken(1, "Tutor")
	time.Sleep(1100 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err != ErrTokenExpired {
		t.Errorf("se esperaba ErrTokenExpired, se obtuvo %v", err)
	}
}

func TestParseToken_SubjectNoNumerico(t *testing.T) {
	m := newTestManager()

	claims := Claims{
		Nombre: "x",
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   "abc",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		t.Fatalf("firmar: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("se esperaba ErrTokenInvalid, se obtuvo %v", err)
	}
}
