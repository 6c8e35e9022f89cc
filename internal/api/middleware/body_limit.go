package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// BodyLimit tope del cuerpo de la petición (p. ej. 1<<20 = 1MB).
// Con Content-Length conocido responde 413 antes de leer; si no, el
// MaxBytesReader corta la lectura y el bind falla con 400.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10013, "El cuerpo de la petición es demasiado grande")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
