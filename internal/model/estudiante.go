package model

// Estudiante tabla estudiante. id_estudiante es el número de documento y lo envía el cliente.
type Estudiante struct {
	IDEstudiante  int64    `gorm:"column:id_estudiante;primaryKey;autoIncrement:false" json:"id_estudiante"`
	TipoDocumento string   `gorm:"column:tipo_documento;type:varchar(10);not null"     json:"tipo_documento"`
	Nombre        string   `gorm:"type:varchar(150);not null"                          json:"nombre"`
	Grado         int      `gorm:"type:smallint;not null"                              json:"grado"`
	ScoreInicial  *float64 `gorm:"column:score_inicial;type:numeric(6,2)"              json:"score_inicial,omitempty"`
	ScoreFinal    *float64 `gorm:"column:score_final;type:numeric(6,2)"                json:"score_final,omitempty"`
	IDAula        int64    `gorm:"column:id_aula;not null"                             json:"id_aula"`
	IDSede        int64    `gorm:"column:id_sede;not null"                             json:"id_sede"`
	IDInstitucion int64    `gorm:"column:id_institucion;not null"                      json:"id_institucion"`
}

// TableName nombre de la tabla
func (Estudiante) TableName() string { return "estudiante" }

// EstudianteReferencias filas que apuntan a un estudiante
type EstudianteReferencias struct {
	Notas       int64
	Asistencias int64
}

// Total suma de todas las referencias
func (r EstudianteReferencias) Total() int64 {
	return r.Notas + r.Asistencias
}
