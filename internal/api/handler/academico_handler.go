package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// ═══════════════════════════════════════════════════════════
// Periodo
// ═══════════════════════════════════════════════════════════

// PeriodoHandler /periodos
type PeriodoHandler struct {
	svc service.PeriodoService
}

// NewPeriodoHandler crea PeriodoHandler
func NewPeriodoHandler(svc service.PeriodoService) *PeriodoHandler {
	return &PeriodoHandler{svc: svc}
}

// Create POST /periodos
func (h *PeriodoHandler) Create(c *gin.Context) {
	var req dto.CreatePeriodoRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, item)
}

// List GET /periodos
func (h *PeriodoHandler) List(c *gin.Context) {
	var q dto.LimitQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.svc.List(c.Request.Context(), q.GetLimit(service.LimitCatalogo))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// Get GET /periodos/:id
func (h *PeriodoHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}

// Update PUT /periodos/:id
func (h *PeriodoHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdatePeriodoRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}

// Delete DELETE /periodos/:id
func (h *PeriodoHandler) Delete(c *gin.Context) {
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

// ═══════════════════════════════════════════════════════════
// Componente
// ═══════════════════════════════════════════════════════════

// ComponenteHandler /componentes
type ComponenteHandler struct {
	svc service.ComponenteService
}

// NewComponenteHandler crea ComponenteHandler
func NewComponenteHandler(svc service.ComponenteService) *ComponenteHandler {
	return &ComponenteHandler{svc: svc}
}

// Create POST /componentes
func (h *ComponenteHandler) Create(c *gin.Context) {
	var req dto.CreateComponenteRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, item)
}

// List GET /componentes?id_programa=
func (h *ComponenteHandler) List(c *gin.Context) {
	var q dto.ComponenteListQuery
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

// Get GET /componentes/:id
func (h *ComponenteHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}

// Update PUT /componentes/:id
func (h *ComponenteHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateComponenteRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}

// Delete DELETE /componentes/:id
func (h *ComponenteHandler) Delete(c *gin.Context) {
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

// ═══════════════════════════════════════════════════════════
// Nota
// ═══════════════════════════════════════════════════════════

// NotaHandler /notas
type NotaHandler struct {
	svc service.NotaService
}

// NewNotaHandler crea NotaHandler
func NewNotaHandler(svc service.NotaService) *NotaHandler {
	return &NotaHandler{svc: svc}
}

// Create POST /notas
func (h *NotaHandler) Create(c *gin.Context) {
	var req dto.CreateNotaRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, item)
}

// List GET /notas?id_estudiante=&id_componente=
func (h *NotaHandler) List(c *gin.Context) {
	var q dto.NotaListQuery
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

// Get GET /notas/:id
func (h *NotaHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}

// Update PUT /notas/:id
func (h *NotaHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateNotaRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}

// Delete DELETE /notas/:id
func (h *NotaHandler) Delete(c *gin.Context) {
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
