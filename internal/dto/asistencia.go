package dto

// ── Motivo ──

// CreateMotivoRequest alta de motivo
type CreateMotivoRequest struct {
	Descripcion string `json:"descripcion" binding:"required,max=200"`
}

// UpdateMotivoRequest actualización parcial
type UpdateMotivoRequest struct {
	Descripcion *string `json:"descripcion" binding:"omitempty,max=200"`
}

// MotivoResponse motivo
type MotivoResponse struct {
	IDMotivo    int64  `json:"id_motivo"`
	Descripcion string `json:"descripcion"`
}

// ── Asistencias ──

// CreateAsistenciaTutorRequest registro de asistencia de un tutor a un aula
type CreateAsistenciaTutorRequest struct {
	IDTutor     int64   `json:"id_tutor"     binding:"required,min=1"`
	IDAula      int64   `json:"id_aula"      binding:"required,min=1"`
	Fecha       string  `json:"fecha"        binding:"required,fecha"`
	HoraEntrada *string `json:"hora_entrada" binding:"omitempty,hora"`
	HoraSalida  *string `json:"hora_salida"  binding:"omitempty,hora"`
	Dictada     *bool   `json:"dictada"`
	IDMotivo    *int64  `json:"id_motivo"    binding:"omitempty,min=1"`
}

// CreateAsistenciaEstudianteRequest registro de asistencia de un estudiante
type CreateAsistenciaEstudianteRequest struct {
	IDEstudiante int64   `json:"id_estudiante" binding:"required,min=1"`
	IDAula       int64   `json:"id_aula"       binding:"required,min=1"`
	Fecha        string  `json:"fecha"         binding:"required,fecha"`
	HoraEntrada  *string `json:"hora_entrada"  binding:"omitempty,hora"`
	HoraSalida   *string `json:"hora_salida"   binding:"omitempty,hora"`
	Asistio      *bool   `json:"asistio"`
	IDMotivo     *int64  `json:"id_motivo"     binding:"omitempty,min=1"`
}

// AsistenciaListQuery filtros de GET /asistencias/*
type AsistenciaListQuery struct {
	IDAula *int64 `form:"id_aula" binding:"omitempty,min=1"`
	Fecha  string `form:"fecha"   binding:"omitempty,fecha"`
	LimitQuery
}

// AsistenciaTutorResponse asistencia de tutor
type AsistenciaTutorResponse struct {
	IDAsistencia int64   `json:"id_asistencia"`
	IDTutor      int64   `json:"id_tutor"`
	IDAula       int64   `json:"id_aula"`
	Fecha        string  `json:"fecha"`
	HoraEntrada  *string `json:"hora_entrada"`
	HoraSalida   *string `json:"hora_salida"`
	Dictada      bool    `json:"dictada"`
	IDMotivo     *int64  `json:"id_motivo"`
}

// AsistenciaEstudianteResponse asistencia de estudiante
type AsistenciaEstudianteResponse struct {
	IDAsistencia int64   `json:"id_asistencia"`
	IDEstudiante int64   `json:"id_estudiante"`
	IDAula       int64   `json:"id_aula"`
	Fecha        string  `json:"fecha"`
	HoraEntrada  *string `json:"hora_entrada"`
	HoraSalida   *string `json:"hora_salida"`
	Asistio      bool    `json:"asistio"`
	IDMotivo     *int64  `json:"id_motivo"`
}

// ── Registro de cambios ──

// CreateRegistroRequest alta en la bitácora
type CreateRegistroRequest struct {
	Fecha     string `json:"fecha"      binding:"required,fecha"`
	Hora      string `json:"hora"       binding:"required,hora"`
	Motivo    string `json:"motivo"     binding:"required,max=300"`
	IDPersona *int64 `json:"id_persona" binding:"omitempty,min=1"`
	IDTutor   *int64 `json:"id_tutor"   binding:"omitempty,min=1"`
}

// RegistroListQuery filtros de GET /registros
type RegistroListQuery struct {
	IDTutor *int64 `form:"id_tutor" binding:"omitempty,min=1"`
	LimitQuery
}

// RegistroResponse entrada de la bitácora
type RegistroResponse struct {
	IDRegistro int64  `json:"id_registro"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	Motivo     string `json:"motivo"`
	IDPersona  *int64 `json:"id_persona"`
	IDTutor    *int64 `json:"id_tutor"`
}
