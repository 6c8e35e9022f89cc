package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
	// tope del archivo .ics subido
	maxICSUpload = 1 << 20
)

// ReporteHandler descargas e importación de archivos por aula
type ReporteHandler struct {
	svc service.ReporteService
}

// NewReporteHandler crea ReporteHandler
func NewReporteHandler(svc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{svc: svc}
}

// ExportNotas planilla de notas del aula
// GET /aulas/:id/notas/export
func (h *ReporteHandler) ExportNotas(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	buf, filename, err := h.svc.ExportNotas(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// ExportHorariosICS calendario semanal del aula
// GET /aulas/:id/horarios/ics
func (h *ReporteHandler) ExportHorariosICS(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	data, filename, err := h.svc.ExportHorariosICS(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, contentTypeICS, data)
}

// ImportHorariosICS crea los horarios del aula a partir de un .ics (campo "archivo")
// POST /aulas/:id/horarios/import
func (h *ReporteHandler) ImportHorariosICS(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("archivo")
	if err != nil {
		response.BadRequest(c, CodeValidation, "Falta el archivo .ics (campo archivo)")
		return
	}
	if fh.Size > maxICSUpload {
		response.BadRequest(c, CodeValidation, "El archivo supera 1MB")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, CodeValidation, "No se pudo leer el archivo")
		return
	}
	defer f.Close()

	result, err := h.svc.ImportHorariosICS(c.Request.Context(), id, f)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, result)
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
}
