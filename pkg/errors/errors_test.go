package errors

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassify_NotFound(t *testing.T) {
	err := Classify(gorm.ErrRecordNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("se esperaba ErrNotFound, se obtuvo %v", err)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("el error original debe seguir siendo accesible")
	}
}

func TestClassify_Integridad(t *testing.T) {
	cases := []error{
		&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
		&pgconn.PgError{Code: "23505", Message: "duplicate key"},
		gorm.ErrForeignKeyViolated,
		fmt.Errorf("crear aula: %w", gorm.ErrDuplicatedKey),
	}
	for _, c := range cases {
		if !errors.Is(Classify(c), ErrIntegrity) {
			t.Errorf("%v debería clasificarse como ErrIntegrity", c)
		}
	}
}

func TestClassify_NoDisponible(t *testing.T) {
	if !errors.Is(Classify(driver.ErrBadConn), ErrUnavailable) {
		t.Error("driver.ErrBadConn debería clasificarse como ErrUnavailable")
	}
	if !errors.Is(Classify(&pgconn.PgError{Code: "08006"}), ErrUnavailable) {
		t.Error("SQLSTATE 08006 debería clasificarse como ErrUnavailable")
	}
}

func TestClassify_Generico(t *testing.T) {
	err := Classify(errors.New("syntax error at or near"))
	if !errors.Is(err, ErrDatabase) {
		t.Errorf("se esperaba ErrDatabase, se obtuvo %v", err)
	}
}

func TestClassify_YaClasificado(t *testing.T) {
	orig := Wrap(ErrNotFound, "tutor no encontrado")
	if got := Classify(orig); got != orig {
		t.Errorf("un error ya clasificado no debe envolverse de nuevo: %v", got)
	}

	ve := NewValidation("dia", "día %q no permitido", "Domingo")
	if got := Classify(ve); got != ve {
		t.Errorf("un ValidationError no debe reclasificarse: %v", got)
	}
}

func TestClassify_Nil(t *testing.T) {
	if Classify(nil) != nil {
		t.Error("Classify(nil) debe ser nil")
	}
}

func TestValidationError_Mensaje(t *testing.T) {
	err := NewValidation("grado", "grado %d no soportado", 7)
	if err.Error() != "grado 7 no soportado" {
		t.Errorf("mensaje inesperado: %s", err.Error())
	}
	if !IsValidation(fmt.Errorf("crear horario: %w", err)) {
		t.Error("IsValidation debe atravesar wrapping")
	}
}

func TestPublicMessage(t *testing.T) {
	nf := Wrap(ErrNotFound, "Tutor no encontrado")
	if !errors.Is(nf, ErrNotFound) {
		t.Error("Wrap debe conservar la categoría")
	}
	if got := PublicMessage(fmt.Errorf("eliminar: %w", nf), "x"); got != "Tutor no encontrado" {
		t.Errorf("mensaje inesperado: %s", got)
	}
	if got := PublicMessage(NewValidation("dia", "día no permitido"), "x"); got != "día no permitido" {
		t.Errorf("mensaje inesperado: %s", got)
	}
	if got := PublicMessage(Classify(errors.New("boom")), "Error en la base de datos"); got != "Error en la base de datos" {
		t.Errorf("se esperaba el fallback, se obtuvo %s", got)
	}
}
