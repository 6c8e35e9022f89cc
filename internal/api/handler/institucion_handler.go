package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// ═══════════════════════════════════════════════════════════
// Institución
// ═══════════════════════════════════════════════════════════

// InstitucionHandler /instituciones
type InstitucionHandler struct {
	svc service.InstitucionService
}

// NewInstitucionHandler crea InstitucionHandler
func NewInstitucionHandler(svc service.InstitucionService) *InstitucionHandler {
	return &InstitucionHandler{svc: svc}
}

// Create POST /instituciones
func (h *InstitucionHandler) Create(c *gin.Context) {
	var req dto.CreateInstitucionRequest
	if !bindJSON(c, &req) {
		return
	}
	inst, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, inst)
}

// List GET /instituciones
func (h *InstitucionHandler) List(c *gin.Context) {
	var q dto.LimitQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.svc.List(c.Request.Context(), q.GetLimit(service.LimitInstituciones))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// Get GET /instituciones/:id
func (h *InstitucionHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	inst, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, inst)
}

// Update PUT /instituciones/:id
func (h *InstitucionHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateInstitucionRequest
	if !bindJSON(c, &req) {
		return
	}
	inst, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, inst)
}

// Delete DELETE /instituciones/:id
func (h *InstitucionHandler) Delete(c *gin.Context) {
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
// Sede
// ═══════════════════════════════════════════════════════════

// SedeHandler /sedes
type SedeHandler struct {
	svc service.SedeService
}

// NewSedeHandler crea SedeHandler
func NewSedeHandler(svc service.SedeService) *SedeHandler {
	return &SedeHandler{svc: svc}
}

// Create POST /sedes
func (h *SedeHandler) Create(c *gin.Context) {
	var req dto.CreateSedeRequest
	if !bindJSON(c, &req) {
		return
	}
	sede, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, sede)
}

// List GET /sedes?id_institucion=
func (h *SedeHandler) List(c *gin.Context) {
	var q dto.SedeListQuery
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

// Get GET /sedes/:id
func (h *SedeHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	sede, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, sede)
}

// Update PUT /sedes/:id
func (h *SedeHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateSedeRequest
	if !bindJSON(c, &req) {
		return
	}
	sede, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, sede)
}

// Delete DELETE /sedes/:id
func (h *SedeHandler) Delete(c *gin.Context) {
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
// Programa
// ═══════════════════════════════════════════════════════════

// ProgramaHandler /programas
type ProgramaHandler struct {
	svc service.ProgramaService
}

// NewProgramaHandler crea ProgramaHandler
func NewProgramaHandler(svc service.ProgramaService) *ProgramaHandler {
	return &ProgramaHandler{svc: svc}
}

// Create POST /programas
func (h *ProgramaHandler) Create(c *gin.Context) {
	var req dto.CreateProgramaRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, p)
}

// List GET /programas
func (h *ProgramaHandler) List(c *gin.Context) {
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

// Get GET /programas/:id
func (h *ProgramaHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, p)
}

// Update PUT /programas/:id
func (h *ProgramaHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateProgramaRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, p)
}

// Delete DELETE /programas/:id
func (h *ProgramaHandler) Delete(c *gin.Context) {
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
