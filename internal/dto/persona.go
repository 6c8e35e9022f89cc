package dto

// ── Persona ──

// CreatePersonaRequest alta de persona
type CreatePersonaRequest struct {
	Nombre          string  `json:"nombre"           binding:"required,max=150"`
	TipoDocumento   *string `json:"tipo_documento"   binding:"omitempty,max=10"`
	NumeroDocumento *string `json:"numero_documento" binding:"omitempty,max=30"`
	Correo          *string `json:"correo"           binding:"omitempty,email,max=255"`
	Rol             *string `json:"rol"              binding:"omitempty,oneof=ADMINISTRADOR ADMINISTRATIVO TUTOR"`
}

// UpdatePersonaRequest actualización parcial
type UpdatePersonaRequest struct {
	Nombre          *string `json:"nombre"           binding:"omitempty,max=150"`
	TipoDocumento   *string `json:"tipo_documento"   binding:"omitempty,max=10"`
	NumeroDocumento *string `json:"numero_documento" binding:"omitempty,max=30"`
	Correo          *string `json:"correo"           binding:"omitempty,email,max=255"`
	Rol             *string `json:"rol"              binding:"omitempty,oneof=ADMINISTRADOR ADMINISTRATIVO TUTOR"`
}

// PersonaResponse persona
type PersonaResponse struct {
	IDPersona       int64   `json:"id_persona"`
	Nombre          string  `json:"nombre"`
	TipoDocumento   *string `json:"tipo_documento"`
	NumeroDocumento *string `json:"numero_documento"`
	Correo          *string `json:"correo"`
	Rol             *string `json:"rol"`
}

// ── Usuario ──

// CreateUsuarioRequest credenciales para una persona existente
type CreateUsuarioRequest struct {
	IDPersona  int64  `json:"id_persona" binding:"required,min=1"`
	Contrasena string `json:"contrasena" binding:"required,min=4,max=72"`
}

// UpdateUsuarioRequest cambio de contraseña
type UpdateUsuarioRequest struct {
	Contrasena string `json:"contrasena" binding:"required,min=4,max=72"`
}

// UsuarioResponse usuario sin contraseña
type UsuarioResponse struct {
	IDPersona int64   `json:"id_persona"`
	Nombre    string  `json:"nombre,omitempty"`
	Correo    *string `json:"correo,omitempty"`
	Rol       *string `json:"rol,omitempty"`
}

// ── Tutor ──

// CreateTutorRequest alta de tutor
type CreateTutorRequest struct {
	IDPersona     *int64  `json:"id_persona"     binding:"omitempty,min=1"`
	FechaContrato *string `json:"fecha_contrato" binding:"omitempty,fecha"`
}

// UpdateTutorRequest actualización parcial
type UpdateTutorRequest struct {
	IDPersona     *int64  `json:"id_persona"     binding:"omitempty,min=1"`
	FechaContrato *string `json:"fecha_contrato" binding:"omitempty,fecha"`
}

// AsignarTutorAulaRequest POST /tutores/asignar (histórico de asignaciones)
type AsignarTutorAulaRequest struct {
	IDTutor     int64   `json:"id_tutor"     binding:"required,min=1"`
	IDAula      int64   `json:"id_aula"      binding:"required,min=1"`
	FechaInicio *string `json:"fecha_inicio" binding:"omitempty,fecha"`
	FechaFin    *string `json:"fecha_fin"    binding:"omitempty,fecha"`
}

// AsignacionResponse asignación registrada
type AsignacionResponse struct {
	IDAsignacion int64   `json:"id_asignacion"`
	IDTutor      int64   `json:"id_tutor"`
	IDAula       int64   `json:"id_aula"`
	FechaInicio  *string `json:"fecha_inicio"`
	FechaFin     *string `json:"fecha_fin"`
}

// TutorResponse tutor
type TutorResponse struct {
	IDTutor       int64   `json:"id_tutor"`
	IDPersona     *int64  `json:"id_persona"`
	FechaContrato *string `json:"fecha_contrato"`
	Nombre        *string `json:"nombre,omitempty"`
	Correo        *string `json:"correo,omitempty"`
}

// ── Estudiante ──

// CreateEstudianteRequest alta de estudiante; id_estudiante es su número de documento
type CreateEstudianteRequest struct {
	IDEstudiante  int64    `json:"id_estudiante"  binding:"required,min=1"`
	TipoDocumento string   `json:"tipo_documento" binding:"required,max=10"`
	Nombre        string   `json:"nombre"         binding:"required,max=150"`
	Grado         int      `json:"grado"          binding:"required,oneof=4 5 9 10"`
	ScoreInicial  *float64 `json:"score_inicial"  binding:"omitempty,gte=0"`
	ScoreFinal    *float64 `json:"score_final"    binding:"omitempty,gte=0"`
	IDAula        int64    `json:"id_aula"        binding:"required,min=1"`
	IDSede        int64    `json:"id_sede"        binding:"required,min=1"`
	IDInstitucion int64    `json:"id_institucion" binding:"required,min=1"`
}

// UpdateEstudianteRequest actualización parcial
type UpdateEstudianteRequest struct {
	TipoDocumento *string  `json:"tipo_documento" binding:"omitempty,max=10"`
	Nombre        *string  `json:"nombre"         binding:"omitempty,max=150"`
	Grado         *int     `json:"grado"          binding:"omitempty,oneof=4 5 9 10"`
	ScoreInicial  *float64 `json:"score_inicial"  binding:"omitempty,gte=0"`
	ScoreFinal    *float64 `json:"score_final"    binding:"omitempty,gte=0"`
	IDAula        *int64   `json:"id_aula"        binding:"omitempty,min=1"`
}

// EstudianteListQuery filtros de GET /estudiantes
type EstudianteListQuery struct {
	IDAula *int64 `form:"id_aula" binding:"omitempty,min=1"`
	LimitQuery
}

// EstudianteResponse estudiante
type EstudianteResponse struct {
	IDEstudiante  int64    `json:"id_estudiante"`
	TipoDocumento string   `json:"tipo_documento"`
	Nombre        string   `json:"nombre"`
	Grado         int      `json:"grado"`
	ScoreInicial  *float64 `json:"score_inicial"`
	ScoreFinal    *float64 `json:"score_final"`
	IDAula        int64    `json:"id_aula"`
	IDSede        int64    `json:"id_sede"`
	IDInstitucion int64    `json:"id_institucion"`
}
