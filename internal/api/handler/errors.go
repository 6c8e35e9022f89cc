package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// handleError traduce la categoría del error al código HTTP
func handleError(c *gin.Context, err error) {
	writeError(c, err, false)
}

// handleDeleteError como handleError; en un borrado la integridad es conflicto (409)
func handleDeleteError(c *gin.Context, err error) {
	writeError(c, err, true)
}

func writeError(c *gin.Context, err error, deleting bool) {
	_ = c.Error(err)

	switch {
	case apperrors.IsValidation(err):
		response.BadRequest(c, CodeValidation, apperrors.PublicMessage(err, "Datos inválidos"))
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, CodeNotFound, apperrors.PublicMessage(err, "Registro no encontrado"))
	case errors.Is(err, apperrors.ErrConflict):
		response.Conflict(c, CodeConflict, apperrors.PublicMessage(err, "El registro tiene dependencias"))
	case errors.Is(err, apperrors.ErrIntegrity):
		if deleting {
			response.Conflict(c, CodeConflict, apperrors.PublicMessage(err,
				"No se puede eliminar: otros registros dependen de él"))
			return
		}
		response.BadRequest(c, CodeValidation, apperrors.PublicMessage(err,
			"Los datos violan una restricción de integridad (referencia inexistente o valor duplicado)"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		response.Unauthorized(c, CodeUnauthorized, apperrors.PublicMessage(err, "No autorizado"))
	case errors.Is(err, apperrors.ErrUnavailable):
		response.ServiceUnavailable(c, CodeUnavailable, apperrors.PublicMessage(err, "Base de datos no disponible"))
	default:
		response.Error(c, http.StatusInternalServerError, 50000, "Error interno del servidor")
	}
}
