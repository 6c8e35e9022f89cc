package dto

// ── Horario ──

// CreateHorarioRequest alta de horario. Sede e institución se toman del aula.
// El formato de las horas lo revisa el validador de horarios.
type CreateHorarioRequest struct {
	Dia        string `json:"dia"         binding:"required,max=10"`
	HoraInicio string `json:"hora_inicio" binding:"required"`
	HoraFin    string `json:"hora_fin"    binding:"required"`
	IDAula     int64  `json:"id_aula"     binding:"required,min=1"`
}

// UpdateHorarioRequest actualización parcial; se revalida con los valores resultantes
type UpdateHorarioRequest struct {
	Dia        *string `json:"dia"         binding:"omitempty,max=10"`
	HoraInicio *string `json:"hora_inicio"`
	HoraFin    *string `json:"hora_fin"`
	IDAula     *int64  `json:"id_aula"     binding:"omitempty,min=1"`
}

// HorarioListQuery filtros de GET /horarios
type HorarioListQuery struct {
	IDAula *int64 `form:"id_aula" binding:"omitempty,min=1"`
	LimitQuery
}

// HorarioResponse horario
type HorarioResponse struct {
	IDHorario     int64  `json:"id_horario"`
	Dia           string `json:"dia"`
	HoraInicio    string `json:"hora_inicio"`
	HoraFin       string `json:"hora_fin"`
	IDAula        int64  `json:"id_aula"`
	IDSede        int64  `json:"id_sede"`
	IDInstitucion int64  `json:"id_institucion"`
}

// ImportHorariosResponse resultado de POST /aulas/:id/horarios/import
type ImportHorariosResponse struct {
	Creados []HorarioResponse `json:"creados"`
	Total   int               `json:"total"`
}
