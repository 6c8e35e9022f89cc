package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/api/validation"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// Claves que JWTAuth deja en el contexto
const (
	CtxPersonaID = "persona_id"
	CtxNombre    = "nombre"
	CtxTokenJTI  = "token_jti"
	CtxTokenExp  = "token_exp"
)

// Códigos de error del envoltorio
const (
	CodeValidation   = 10001
	CodeUnauthorized = 10002
	CodeNotFound     = 10004
	CodeConflict     = 10009
	CodeTooMany      = 10029
	CodeUnavailable  = 50300
)

// MustGetPersonaID extrae id_persona del contexto.
// Si JWTAuth no lo dejó, responde 401 y devuelve false; el llamador debe retornar.
func MustGetPersonaID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(CtxPersonaID)
	if !exists {
		response.Unauthorized(c, CodeUnauthorized, "No autenticado")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		response.Unauthorized(c, CodeUnauthorized, "No autenticado")
		return 0, false
	}
	return id, true
}

// tokenMeta jti y expiración del token actual; vacíos si no hay token
func tokenMeta(c *gin.Context) (string, time.Time) {
	jti := c.GetString(CtxTokenJTI)
	exp, _ := c.Get(CtxTokenExp)
	t, _ := exp.(time.Time)
	return jti, t
}

// paramID lee :id como entero positivo; si no lo es responde 400
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, CodeValidation, "El id debe ser un entero positivo")
		return 0, false
	}
	return id, true
}

// bindJSON enlaza y valida el cuerpo; si falla responde 400 con el primer error
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, CodeValidation, validation.Message(err))
		return false
	}
	return true
}

// bindQuery igual que bindJSON para la query string
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.BadRequest(c, CodeValidation, validation.Message(err))
		return false
	}
	return true
}
