package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type horaFecha struct {
	Hora  string  `json:"hora"  binding:"required,hora"`
	Fecha *string `json:"fecha" binding:"omitempty,fecha"`
}

func strPtr(s string) *string { return &s }

func TestHora(t *testing.T) {
	Register()

	valid := []string{"06:00", "18:00", "23:59", "07:30:15"}
	for _, h := range valid {
		if err := binding.Validator.ValidateStruct(&horaFecha{Hora: h}); err != nil {
			t.Errorf("%q debería ser válida: %v", h, err)
		}
	}

	invalid := []string{"6:00", "24:00", "12:60", "12-30", "mediodía", "12:30:"}
	for _, h := range invalid {
		if err := binding.Validator.ValidateStruct(&horaFecha{Hora: h}); err == nil {
			t.Errorf("%q debería ser inválida", h)
		}
	}
}

func TestFecha(t *testing.T) {
	Register()

	if err := binding.Validator.ValidateStruct(&horaFecha{Hora: "08:00", Fecha: strPtr("2025-02-28")}); err != nil {
		t.Errorf("fecha válida rechazada: %v", err)
	}
	for _, f := range []string{"2025-02-30", "28/02/2025", "2025-2-1"} {
		if err := binding.Validator.ValidateStruct(&horaFecha{Hora: "08:00", Fecha: strPtr(f)}); err == nil {
			t.Errorf("%q debería ser inválida", f)
		}
	}
}

func TestMessage_UsaNombreJSON(t *testing.T) {
	Register()

	err := binding.Validator.ValidateStruct(&horaFecha{Hora: "25:00"})
	msg := Message(err)
	if !strings.Contains(msg, "hora") || !strings.Contains(msg, "HH:MM") {
		t.Errorf("mensaje inesperado: %s", msg)
	}

	if Message(errors.New("unexpected EOF")) != "Cuerpo de la petición inválido" {
		t.Error("un error que no es de validación debe dar el mensaje genérico")
	}
}
