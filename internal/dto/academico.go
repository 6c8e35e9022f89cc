package dto

// ── Periodo ──

// CreatePeriodoRequest alta de periodo
type CreatePeriodoRequest struct {
	FechaInicio string `json:"fecha_inicio" binding:"required,fecha"`
	FechaFin    string `json:"fecha_fin"    binding:"required,fecha"`
	IDPrograma  int64  `json:"id_programa"  binding:"required,min=1"`
}

// UpdatePeriodoRequest actualización parcial
type UpdatePeriodoRequest struct {
	FechaInicio *string `json:"fecha_inicio" binding:"omitempty,fecha"`
	FechaFin    *string `json:"fecha_fin"    binding:"omitempty,fecha"`
	IDPrograma  *int64  `json:"id_programa"  binding:"omitempty,min=1"`
}

// PeriodoResponse periodo
type PeriodoResponse struct {
	IDPeriodo   int64  `json:"id_periodo"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	IDPrograma  int64  `json:"id_programa"`
}

// ── Componente ──

// CreateComponenteRequest alta de componente
type CreateComponenteRequest struct {
	Nombre     string  `json:"nombre"      binding:"required,max=100"`
	Porcentaje float64 `json:"porcentaje"  binding:"required,gt=0,lte=100"`
	IDPrograma int64   `json:"id_programa" binding:"required,min=1"`
}

// UpdateComponenteRequest actualización parcial
type UpdateComponenteRequest struct {
	Nombre     *string  `json:"nombre"      binding:"omitempty,max=100"`
	Porcentaje *float64 `json:"porcentaje"  binding:"omitempty,gt=0,lte=100"`
	IDPrograma *int64   `json:"id_programa" binding:"omitempty,min=1"`
}

// ComponenteListQuery filtros de GET /componentes
type ComponenteListQuery struct {
	IDPrograma *int64 `form:"id_programa" binding:"omitempty,min=1"`
	LimitQuery
}

// ComponenteResponse componente
type ComponenteResponse struct {
	IDComponente int64   `json:"id_componente"`
	Nombre       string  `json:"nombre"`
	Porcentaje   float64 `json:"porcentaje"`
	IDPrograma   int64   `json:"id_programa"`
}

// ── Nota ──

// CreateNotaRequest alta de nota
type CreateNotaRequest struct {
	IDEstudiante int64    `json:"id_estudiante" binding:"required,min=1"`
	IDComponente int64    `json:"id_componente" binding:"required,min=1"`
	Calificacion *float64 `json:"calificacion"  binding:"required,gte=0"`
}

// UpdateNotaRequest actualización parcial
type UpdateNotaRequest struct {
	IDEstudiante *int64   `json:"id_estudiante" binding:"omitempty,min=1"`
	IDComponente *int64   `json:"id_componente" binding:"omitempty,min=1"`
	Calificacion *float64 `json:"calificacion"  binding:"omitempty,gte=0"`
}

// NotaListQuery filtros de GET /notas
type NotaListQuery struct {
	IDEstudiante *int64 `form:"id_estudiante" binding:"omitempty,min=1"`
	IDComponente *int64 `form:"id_componente" binding:"omitempty,min=1"`
	LimitQuery
}

// NotaResponse nota
type NotaResponse struct {
	IDNota       int64   `json:"id_nota"`
	IDEstudiante int64   `json:"id_estudiante"`
	IDComponente int64   `json:"id_componente"`
	Calificacion float64 `json:"calificacion"`
}
