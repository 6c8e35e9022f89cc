// Package errors define la taxonomía de errores compartida por servicios y handlers.
package errors

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Categorías. Los errores de cada módulo envuelven una de ellas.
var (
	ErrNotFound     = errors.New("registro no encontrado")
	ErrIntegrity    = errors.New("error de integridad de datos")
	ErrConflict     = errors.New("el registro tiene dependencias")
	ErrDatabase     = errors.New("error en la base de datos")
	ErrUnavailable  = errors.New("base de datos no disponible")
	ErrUnauthorized = errors.New("no autorizado")
)

// ValidationError regla de negocio o entrada inválida; el mensaje se devuelve al cliente
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation crea un ValidationError
func NewValidation(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation indica si err (o alguno de sus envueltos) es un ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// moduleError error de un módulo concreto; su texto se puede mostrar al cliente
type moduleError struct {
	kind error
	msg  string
}

func (e *moduleError) Error() string { return e.msg }
func (e *moduleError) Unwrap() error { return e.kind }

// Wrap crea un error de módulo que pertenece a la categoría kind
func Wrap(kind error, msg string) error {
	return &moduleError{kind: kind, msg: msg}
}

// PublicMessage texto apto para el cliente, o fallback si err no lo trae
func PublicMessage(err error, fallback string) string {
	var me *moduleError
	if errors.As(err, &me) {
		return me.msg
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}

type classified struct {
	kind error
	err  error
}

func (c *classified) Error() string {
	return c.kind.Error() + ": " + c.err.Error()
}

func (c *classified) Unwrap() []error {
	return []error{c.kind, c.err}
}

// Classify asigna una categoría a un error devuelto por gorm / pgx.
// Los errores que ya tienen categoría se devuelven sin cambios.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if Categorized(err) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &classified{kind: ErrNotFound, err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return &classified{kind: ErrIntegrity, err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// clase 23: violación de restricción de integridad
		if strings.HasPrefix(pgErr.Code, "23") {
			return &classified{kind: ErrIntegrity, err: err}
		}
		// clase 08: excepción de conexión
		if strings.HasPrefix(pgErr.Code, "08") {
			return &classified{kind: ErrUnavailable, err: err}
		}
		return &classified{kind: ErrDatabase, err: err}
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return &classified{kind: ErrUnavailable, err: err}
	}

	return &classified{kind: ErrDatabase, err: err}
}

// Categorized indica si err ya pertenece a alguna categoría de la taxonomía
func Categorized(err error) bool {
	for _, kind := range []error{ErrNotFound, ErrIntegrity, ErrConflict, ErrDatabase, ErrUnavailable, ErrUnauthorized} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return IsValidation(err)
}

// IsIntegrity atajo para errors.Is(Classify(err), ErrIntegrity)
func IsIntegrity(err error) bool {
	return errors.Is(Classify(err), ErrIntegrity)
}
