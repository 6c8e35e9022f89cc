package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// ═══════════════════════════════════════════════════════════
// Motivo
// ═══════════════════════════════════════════════════════════

// MotivoHandler /motivos
type MotivoHandler struct {
	svc service.MotivoService
}

// NewMotivoHandler crea MotivoHandler
func NewMotivoHandler(svc service.MotivoService) *MotivoHandler {
	return &MotivoHandler{svc: svc}
}

// Create POST /motivos
func (h *MotivoHandler) Create(c *gin.Context) {
	var req dto.CreateMotivoRequest
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

// List GET /motivos
func (h *MotivoHandler) List(c *gin.Context) {
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

// Get GET /motivos/:id
func (h *MotivoHandler) Get(c *gin.Context) {
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

// Update PUT /motivos/:id
func (h *MotivoHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.UpdateMotivoRequest
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

// Delete DELETE /motivos/:id
func (h *MotivoHandler) Delete(c *gin.Context) {
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
// Asistencia
// ═══════════════════════════════════════════════════════════

// AsistenciaHandler /asistencias/tutores y /asistencias/estudiantes
type AsistenciaHandler struct {
	svc service.AsistenciaService
}

// NewAsistenciaHandler crea AsistenciaHandler
func NewAsistenciaHandler(svc service.AsistenciaService) *AsistenciaHandler {
	return &AsistenciaHandler{svc: svc}
}

// CreateTutor POST /asistencias/tutores
func (h *AsistenciaHandler) CreateTutor(c *gin.Context) {
	var req dto.CreateAsistenciaTutorRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.CreateTutor(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, item)
}

// ListTutor GET /asistencias/tutores?id_aula=&fecha=
func (h *AsistenciaHandler) ListTutor(c *gin.Context) {
	var q dto.AsistenciaListQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.svc.ListTutor(c.Request.Context(), &q)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// DeleteTutor DELETE /asistencias/tutores/:id
func (h *AsistenciaHandler) DeleteTutor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteTutor(c.Request.Context(), id); err != nil {
		handleDeleteError(c, err)
		return
	}
	response.OK(c, nil)
}

// CreateEstudiante POST /asistencias/estudiantes
func (h *AsistenciaHandler) CreateEstudiante(c *gin.Context) {
	var req dto.CreateAsistenciaEstudianteRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.CreateEstudiante(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, item)
}

// ListEstudiante GET /asistencias/estudiantes?id_aula=&fecha=
func (h *AsistenciaHandler) ListEstudiante(c *gin.Context) {
	var q dto.AsistenciaListQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.svc.ListEstudiante(c.Request.Context(), &q)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKList(c, list, len(list))
}

// DeleteEstudiante DELETE /asistencias/estudiantes/:id
func (h *AsistenciaHandler) DeleteEstudiante(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteEstudiante(c.Request.Context(), id); err != nil {
		handleDeleteError(c, err)
		return
	}
	response.OK(c, nil)
}

// ═══════════════════════════════════════════════════════════
// Registro
// ═══════════════════════════════════════════════════════════

// RegistroHandler /registros; la bitácora no admite edición ni borrado
type RegistroHandler struct {
	svc service.RegistroService
}

// NewRegistroHandler crea RegistroHandler
func NewRegistroHandler(svc service.RegistroService) *RegistroHandler {
	return &RegistroHandler{svc: svc}
}

// Create POST /registros
func (h *RegistroHandler) Create(c *gin.Context) {
	var req dto.CreateRegistroRequest
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

// List GET /registros?id_tutor=
func (h *RegistroHandler) List(c *gin.Context) {
	var q dto.RegistroListQuery
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

// Get GET /registros/:id
func (h *RegistroHandler) Get(c *gin.Context) {
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
