package logger

import (
	"testing"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/config"
)

func TestNewLogger_Formatos(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := NewLogger(&config.LogConfig{Level: "debug", Format: format})
		if err != nil {
			t.Fatalf("formato %s: %v", format, err)
		}
		if !l.Core().Enabled(-1) {
			t.Errorf("formato %s: el nivel debug debería estar habilitado", format)
		}
	}
}

func TestNewLogger_NivelInvalido(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "verbose", Format: "json"}); err == nil {
		t.Error("un nivel desconocido debe fallar")
	}
}
