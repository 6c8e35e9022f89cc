package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/api/handler"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/jwt"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// BlacklistChecker consulta si un token fue revocado en logout
type BlacklistChecker interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// JWTAuth valida Authorization: Bearer <token> y deja la sesión en el contexto.
// Con blacklist nil no se consultan revocaciones.
func JWTAuth(jwtMgr *jwt.Manager, blacklist BlacklistChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Falta el encabezado de autenticación")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Formato de autenticación inválido")
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "Token inválido o expirado")
			return
		}

		personaID, err := claims.PersonaID()
		if err != nil || personaID <= 0 {
			abortUnauthorized(c, "Token inválido o expirado")
			return
		}

		if blacklist != nil && claims.ID != "" {
			revoked, err := blacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			// si Redis falla se deja pasar
			if err == nil && revoked {
				abortUnauthorized(c, "La sesión fue cerrada")
				return
			}
		}

		c.Set(handler.CtxPersonaID, personaID)
		c.Set(handler.CtxNombre, claims.Nombre)
		c.Set(handler.CtxTokenJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(handler.CtxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	response.Unauthorized(c, handler.CodeUnauthorized, msg)
	c.Abort()
}
