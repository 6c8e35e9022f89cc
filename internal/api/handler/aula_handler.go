package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// AulaHandler /aulas
type AulaHandler struct {
	svc service.AulaService
}

// NewAulaHandler crea AulaHandler
func NewAulaHandler(svc service.AulaService) *AulaHandler {
	return &AulaHandler{svc: svc}
}

// Create POST /aulas
func (h *AulaHandler) Create(c *gin.Context) {
	var req dto.CreateAulaRequest
	if !bindJSON(c, &req) {
		return
	}
	aula, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, aula)
}

// List GET /aulas?id_sede=&id_institucion=&grado=&id_tutor=
func (h *AulaHandler) List(c *gin.Context) {
	var q dto.AulaListQuery
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

// Get GET /aulas/:id
func (h *AulaHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	aula, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, aula)
}

// Update PUT /aulas/:id
func (h *AulaHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateAulaRequest
	if !bindJSON(c, &req) {
		return
	}
	aula, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, aula)
}

// Delete DELETE /aulas/:id
func (h *AulaHandler) Delete(c *gin.Context) {
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

// AsignarTutor PUT /aulas/asignar-tutor; id_tutor null deja el aula sin tutor
func (h *AulaHandler) AsignarTutor(c *gin.Context) {
	var req dto.AsignarTutorRequest
	if !bindJSON(c, &req) {
		return
	}
	aula, err := h.svc.AsignarTutor(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, aula)
}

// ListEstudiantes GET /aulas/:id/estudiantes
func (h *AulaHandler) ListEstudiantes(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	list, err := h.svc.ListEstudiantes(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// ListHorarios GET /aulas/:id/horarios
func (h *AulaHandler) ListHorarios(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	list, err := h.svc.ListHorarios(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}
