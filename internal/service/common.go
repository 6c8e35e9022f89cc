package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// Límites por defecto de los listados
const (
	LimitInstituciones = 100
	LimitSedes         = 100
	LimitAulas         = 500
	LimitEstudiantes   = 100
	LimitPersonas      = 100
	LimitTutores       = 100
	LimitHorarios      = 500
	LimitNotas         = 500
	LimitAsistencias   = 500
	LimitCatalogo      = 100 // periodos, componentes, programas, motivos
	LimitRegistros     = 100
)

// ErrSinCambios actualización sin ningún campo
var ErrSinCambios = apperrors.NewValidation("", "No hay campos para actualizar.")

// notFoundOr traduce gorm.ErrRecordNotFound al error del módulo; el resto pasa por dbError
func notFoundOr(logger *zap.Logger, err error, notFound error, msg string, fields ...zap.Field) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return dbError(logger, msg, err, fields...)
}

// dbError registra un fallo de persistencia y lo devuelve clasificado
func dbError(logger *zap.Logger, msg string, err error, fields ...zap.Field) error {
	classified := apperrors.Classify(err)
	fields = append(fields, zap.Error(err))
	switch {
	case errors.Is(classified, apperrors.ErrIntegrity),
		errors.Is(classified, apperrors.ErrConflict),
		errors.Is(classified, apperrors.ErrNotFound),
		apperrors.IsValidation(classified):
		logger.Warn(msg, fields...)
	default:
		logger.Error(msg, fields...)
	}
	return classified
}

// updateOrEmpty rechaza los conjuntos vacíos antes de ir a la base de datos
func updateOrEmpty(set *repository.UpdateSet) error {
	if set.Empty() {
		return ErrSinCambios
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
