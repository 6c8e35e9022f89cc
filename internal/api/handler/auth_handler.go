package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// AuthHandler login y sesión
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crea AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login inicia sesión con correo y contraseña
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout revoca el token actual
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, exp := tokenMeta(c)
	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// Me persona de la sesión
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	personaID, ok := MustGetPersonaID(c)
	if !ok {
		return
	}

	p, err := h.authSvc.Me(c.Request.Context(), personaID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, p)
}
