package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8000},
		Auth: AuthConfig{
			JWTSecret: "una-clave-suficientemente-larga",
			TokenTTL:  24 * time.Hour,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("se esperaba configuración válida: %v", err)
	}
}

func TestValidate_SecretVacio(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("un secreto vacío debe fallar")
	}
}

func TestValidate_SecretCorto(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "corto"
	if err := cfg.Validate(); err == nil {
		t.Error("un secreto de menos de 16 caracteres debe fallar")
	}
}

func TestValidate_PuertoFueraDeRango(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("puerto 70000 debe fallar")
	}
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-desde-el-entorno-123")
	t.Setenv("TUTORIAS_DB_HOST", "db.interna")
	t.Setenv("DB_SERVICE", "XEPDB1")
	t.Setenv("TUTORIAS_AUTH_TOKEN_TTL", "2h")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load falló: %v", err)
	}
	if cfg.Auth.JWTSecret != "secreto-desde-el-entorno-123" {
		t.Errorf("JWTSecret inesperado: %q", cfg.Auth.JWTSecret)
	}
	if cfg.Database.Host != "db.interna" {
		t.Errorf("db.host inesperado: %q", cfg.Database.Host)
	}
	if cfg.Database.Name != "XEPDB1" {
		t.Errorf("db.name inesperado: %q", cfg.Database.Name)
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("token_ttl inesperado: %v", cfg.Auth.TokenTTL)
	}
	if !strings.Contains(cfg.Database.DSN(), "dbname=XEPDB1") {
		t.Errorf("DSN no incluye el nombre del servicio: %s", cfg.Database.DSN())
	}
}
