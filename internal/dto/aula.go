package dto

// ── Aula ──

// CreateAulaRequest alta de aula; (id_sede, id_institucion) debe existir
type CreateAulaRequest struct {
	NombreAula    string `json:"nombre_aula"    binding:"required,max=100"`
	Grado         int    `json:"grado"          binding:"required,oneof=4 5 9 10"`
	IDSede        int64  `json:"id_sede"        binding:"required,min=1"`
	IDInstitucion int64  `json:"id_institucion" binding:"required,min=1"`
	IDPrograma    *int64 `json:"id_programa"    binding:"omitempty,min=1"`
	IDTutor       *int64 `json:"id_tutor"       binding:"omitempty,min=1"`
}

// UpdateAulaRequest actualización parcial. id_sede e id_institucion van juntos.
type UpdateAulaRequest struct {
	NombreAula    *string `json:"nombre_aula"    binding:"omitempty,max=100"`
	Grado         *int    `json:"grado"          binding:"omitempty,oneof=4 5 9 10"`
	IDSede        *int64  `json:"id_sede"        binding:"omitempty,min=1"`
	IDInstitucion *int64  `json:"id_institucion" binding:"omitempty,min=1"`
	IDPrograma    *int64  `json:"id_programa"    binding:"omitempty,min=1"`
	IDTutor       *int64  `json:"id_tutor"       binding:"omitempty,min=1"`
}

// AsignarTutorRequest PUT /aulas/asignar-tutor; id_tutor null desasigna
type AsignarTutorRequest struct {
	IDAula        int64  `json:"id_aula"        binding:"required,min=1"`
	IDSede        int64  `json:"id_sede"        binding:"required,min=1"`
	IDInstitucion int64  `json:"id_institucion" binding:"required,min=1"`
	IDTutor       *int64 `json:"id_tutor"       binding:"omitempty,min=1"`
}

// AulaListQuery filtros de GET /aulas
type AulaListQuery struct {
	IDSede        *int64 `form:"id_sede"        binding:"omitempty,min=1"`
	IDInstitucion *int64 `form:"id_institucion" binding:"omitempty,min=1"`
	Grado         *int   `form:"grado"          binding:"omitempty,oneof=4 5 9 10"`
	IDTutor       *int64 `form:"id_tutor"       binding:"omitempty,min=1"`
	LimitQuery
}

// AulaResponse aula
type AulaResponse struct {
	IDAula        int64  `json:"id_aula"`
	NombreAula    string `json:"nombre_aula"`
	Grado         int    `json:"grado"`
	IDSede        int64  `json:"id_sede"`
	IDInstitucion int64  `json:"id_institucion"`
	IDPrograma    *int64 `json:"id_programa"`
	IDTutor       *int64 `json:"id_tutor"`
}
