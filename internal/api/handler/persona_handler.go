package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// ═══════════════════════════════════════════════════════════
// Persona
// ═══════════════════════════════════════════════════════════

// PersonaHandler /personas
type PersonaHandler struct {
	svc service.PersonaService
}

// NewPersonaHandler crea PersonaHandler
func NewPersonaHandler(svc service.PersonaService) *PersonaHandler {
	return &PersonaHandler{svc: svc}
}

// Create POST /personas
func (h *PersonaHandler) Create(c *gin.Context) {
	var req dto.CreatePersonaRequest
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

// List GET /personas
func (h *PersonaHandler) List(c *gin.Context) {
	var q dto.LimitQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.svc.List(c.Request.Context(), q.GetLimit(service.LimitPersonas))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// Get GET /personas/:id
func (h *PersonaHandler) Get(c *gin.Context) {
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

// Update PUT /personas/:id
func (h *PersonaHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdatePersonaRequest
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

// Delete DELETE /personas/:id
func (h *PersonaHandler) Delete(c *gin.Context) {
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
// Usuario
// ═══════════════════════════════════════════════════════════

// UsuarioHandler /usuarios; :id es el id_persona
type UsuarioHandler struct {
	svc service.UsuarioService
}

// NewUsuarioHandler crea UsuarioHandler
func NewUsuarioHandler(svc service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{svc: svc}
}

// Create POST /usuarios
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req dto.CreateUsuarioRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, u)
}

// Get GET /usuarios/:id
func (h *UsuarioHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, u)
}

// UpdateContrasena PUT /usuarios/:id
func (h *UsuarioHandler) UpdateContrasena(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateUsuarioRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.UpdateContrasena(c.Request.Context(), id, &req); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// Delete DELETE /usuarios/:id
func (h *UsuarioHandler) Delete(c *gin.Context) {
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
// Tutor
// ═══════════════════════════════════════════════════════════

// TutorHandler /tutores
type TutorHandler struct {
	svc service.TutorService
}

// NewTutorHandler crea TutorHandler
func NewTutorHandler(svc service.TutorService) *TutorHandler {
	return &TutorHandler{svc: svc}
}

// Create POST /tutores
func (h *TutorHandler) Create(c *gin.Context) {
	var req dto.CreateTutorRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, t)
}

// List GET /tutores
func (h *TutorHandler) List(c *gin.Context) {
	var q dto.LimitQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.svc.List(c.Request.Context(), q.GetLimit(service.LimitTutores))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// Get GET /tutores/:id
func (h *TutorHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, t)
}

// Update PUT /tutores/:id
func (h *TutorHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateTutorRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, t)
}

// Delete DELETE /tutores/:id?force=true
func (h *TutorHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var q dto.DeleteQuery
	if !bindQuery(c, &q) {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, q.Force); err != nil {
		handleDeleteError(c, err)
		return
	}
	response.OK(c, nil)
}

// Asignar POST /tutores/asignar
func (h *TutorHandler) Asignar(c *gin.Context) {
	var req dto.AsignarTutorAulaRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.svc.Asignar(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, a)
}

// ListAulas GET /tutores/:id/aulas
func (h *TutorHandler) ListAulas(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	list, err := h.svc.ListAulas(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// ═══════════════════════════════════════════════════════════
// Estudiante
// ═══════════════════════════════════════════════════════════

// EstudianteHandler /estudiantes
type EstudianteHandler struct {
	svc service.EstudianteService
}

// NewEstudianteHandler crea EstudianteHandler
func NewEstudianteHandler(svc service.EstudianteService) *EstudianteHandler {
	return &EstudianteHandler{svc: svc}
}

// Create POST /estudiantes
func (h *EstudianteHandler) Create(c *gin.Context) {
	var req dto.CreateEstudianteRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, e)
}

// List GET /estudiantes?id_aula=
func (h *EstudianteHandler) List(c *gin.Context) {
	var q dto.EstudianteListQuery
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

// Get GET /estudiantes/:id
func (h *EstudianteHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	e, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, e)
}

// Update PUT /estudiantes/:id
func (h *EstudianteHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateEstudianteRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, e)
}

// Delete DELETE /estudiantes/:id?force=true
func (h *EstudianteHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var q dto.DeleteQuery
	if !bindQuery(c, &q) {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, q.Force); err != nil {
		handleDeleteError(c, err)
		return
	}
	response.OK(c, nil)
}
