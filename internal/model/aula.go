package model

import "time"

// Aula tabla aula. (id_sede, id_institucion) debe existir en sede.
type Aula struct {
	IDAula        int64  `gorm:"column:id_aula;primaryKey;autoIncrement" json:"id_aula"`
	NombreAula    string `gorm:"column:nombre_aula;type:varchar(100);not null" json:"nombre_aula"`
	Grado         int    `gorm:"type:smallint;not null"                  json:"grado"` // 4 | 5 | 9 | 10
	IDSede        int64  `gorm:"column:id_sede;not null"                 json:"id_sede"`
	IDInstitucion int64  `gorm:"column:id_institucion;not null"          json:"id_institucion"`
	IDPrograma    *int64 `gorm:"column:id_programa"                      json:"id_programa,omitempty"`
	IDTutor       *int64 `gorm:"column:id_tutor"                         json:"id_tutor,omitempty"`

	Institucion *Institucion `gorm:"foreignKey:IDInstitucion;references:IDInstitucion" json:"institucion,omitempty"`
}

// TableName nombre de la tabla
func (Aula) TableName() string { return "aula" }

// AsignacionTutorAula tabla asignacion_tutor_aula (histórico de asignaciones)
type AsignacionTutorAula struct {
	IDAsignacion int64      `gorm:"column:id_asignacion;primaryKey;autoIncrement" json:"id_asignacion"`
	IDTutor      int64      `gorm:"column:id_tutor;not null"                      json:"id_tutor"`
	IDAula       int64      `gorm:"column:id_aula;not null"                       json:"id_aula"`
	FechaInicio  *time.Time `gorm:"column:fecha_inicio;type:date"                 json:"fecha_inicio,omitempty"`
	FechaFin     *time.Time `gorm:"column:fecha_fin;type:date"                    json:"fecha_fin,omitempty"`
}

// TableName nombre de la tabla
func (AsignacionTutorAula) TableName() string { return "asignacion_tutor_aula" }
