package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// HorarioHandler /horarios. Las reglas por grado las aplica el servicio.
type HorarioHandler struct {
	svc service.HorarioService
}

// NewHorarioHandler crea HorarioHandler
func NewHorarioHandler(svc service.HorarioService) *HorarioHandler {
	return &HorarioHandler{svc: svc}
}

// Create POST /horarios
func (h *HorarioHandler) Create(c *gin.Context) {
	var req dto.CreateHorarioRequest
	if !bindJSON(c, &req) {
		return
	}
	horario, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, horario)
}

// List GET /horarios?id_aula=
func (h *HorarioHandler) List(c *gin.Context) {
	var q dto.HorarioListQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.svc.List(c.Request.Context(), &q)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// Get GET /horarios/:id
func (h *HorarioHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	horario, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, horario)
}

// Update PUT /horarios/:id
func (h *HorarioHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateHorarioRequest
	if !bindJSON(c, &req) {
		return
	}
	horario, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, horario)
}

// Delete DELETE /horarios/:id
func (h *HorarioHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleDeleteError(c, err)
		return
	}
	response.OK(c, nil)
}
