package dto

// ── Institución ──

// CreateInstitucionRequest alta de institución
type CreateInstitucionRequest struct {
	Nombre       string `json:"nombre"        binding:"required,max=150"`
	Jornada      string `json:"jornada"       binding:"required,oneof='UNICA MAÑANA' 'UNICA TARDE' MIXTA"`
	DuracionHora int    `json:"duracion_hora" binding:"required,oneof=40 45 50 55 60"`
}

// UpdateInstitucionRequest actualización parcial
type UpdateInstitucionRequest struct {
	Nombre       *string `json:"nombre"        binding:"omitempty,max=150"`
	Jornada      *string `json:"jornada"       binding:"omitempty,oneof='UNICA MAÑANA' 'UNICA TARDE' MIXTA"`
	DuracionHora *int    `json:"duracion_hora" binding:"omitempty,oneof=40 45 50 55 60"`
}

// InstitucionResponse institución
type InstitucionResponse struct {
	IDInstitucion int64  `json:"id_institucion"`
	Nombre        string `json:"nombre"`
	Jornada       string `json:"jornada"`
	DuracionHora  int    `json:"duracion_hora"`
}

// ── Sede ──

// CreateSedeRequest alta de sede
type CreateSedeRequest struct {
	IDInstitucion int64   `json:"id_institucion" binding:"required,min=1"`
	NombreSede    string  `json:"nombre_sede"    binding:"required,max=150"`
	Direccion     *string `json:"direccion"      binding:"omitempty,max=200"`
	Telefono      *string `json:"telefono"       binding:"omitempty,max=30"`
}

// UpdateSedeRequest actualización parcial; la institución de una sede no cambia
type UpdateSedeRequest struct {
	NombreSede *string `json:"nombre_sede" binding:"omitempty,max=150"`
	Direccion  *string `json:"direccion"   binding:"omitempty,max=200"`
	Telefono   *string `json:"telefono"    binding:"omitempty,max=30"`
}

// SedeListQuery filtros de GET /sedes
type SedeListQuery struct {
	IDInstitucion *int64 `form:"id_institucion" binding:"omitempty,min=1"`
	LimitQuery
}

// SedeResponse sede
type SedeResponse struct {
	IDSede            int64   `json:"id_sede"`
	IDInstitucion     int64   `json:"id_institucion"`
	NombreSede        string  `json:"nombre_sede"`
	Direccion         *string `json:"direccion"`
	Telefono          *string `json:"telefono"`
	NombreInstitucion *string `json:"nombre_institucion,omitempty"`
}

// ── Programa ──

// CreateProgramaRequest alta de programa
type CreateProgramaRequest struct {
	Tipo string `json:"tipo" binding:"required,oneof=INSIDECLASSROOM OUTSIDECLASSROOM"`
}

// UpdateProgramaRequest actualización parcial
type UpdateProgramaRequest struct {
	Tipo *string `json:"tipo" binding:"omitempty,oneof=INSIDECLASSROOM OUTSIDECLASSROOM"`
}

// ProgramaResponse programa
type ProgramaResponse struct {
	IDPrograma int64  `json:"id_programa"`
	Tipo       string `json:"tipo"`
}
