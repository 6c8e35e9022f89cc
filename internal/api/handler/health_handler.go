package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// tiempo máximo del ping a la base de datos
const dbPingTimeout = 3 * time.Second

// Pinger comprueba la conexión con la base de datos
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler sondas del servicio
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler crea HealthHandler
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Root GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": "GlobalEnglish API", "status": "ok"})
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBHealth GET /db-health
func (h *HealthHandler) DBHealth(c *gin.Context) {
	if h.pinger == nil {
		response.ServiceUnavailable(c, CodeUnavailable, "Base de datos no configurada")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		_ = c.Error(err)
		response.ServiceUnavailable(c, CodeUnavailable, "Base de datos no disponible")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
