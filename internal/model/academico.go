package model

import "time"

// Periodo tabla periodo
type Periodo struct {
	IDPeriodo   int64     `gorm:"column:id_periodo;primaryKey;autoIncrement" json:"id_periodo"`
	FechaInicio time.Time `gorm:"column:fecha_inicio;type:date;not null"     json:"fecha_inicio"`
	FechaFin    time.Time `gorm:"column:fecha_fin;type:date;not null"        json:"fecha_fin"`
	IDPrograma  int64     `gorm:"column:id_programa;not null"                json:"id_programa"`
}

// TableName nombre de la tabla
func (Periodo) TableName() string { return "periodo" }

// Componente tabla componente: parte ponderada de la nota de un programa
type Componente struct {
	IDComponente int64   `gorm:"column:id_componente;primaryKey;autoIncrement" json:"id_componente"`
	Nombre       string  `gorm:"type:varchar(100);not null"                    json:"nombre"`
	Porcentaje   float64 `gorm:"type:numeric(5,2);not null"                    json:"porcentaje"`
	IDPrograma   int64   `gorm:"column:id_programa;not null"                   json:"id_programa"`
}

// TableName nombre de la tabla
func (Componente) TableName() string { return "componente" }

// Nota tabla nota
type Nota struct {
	IDNota       int64   `gorm:"column:id_nota;primaryKey;autoIncrement" json:"id_nota"`
	IDEstudiante int64   `gorm:"column:id_estudiante;not null"           json:"id_estudiante"`
	IDComponente int64   `gorm:"column:id_componente;not null"           json:"id_componente"`
	Calificacion float64 `gorm:"type:numeric(5,2);not null"              json:"calificacion"`
}

// TableName nombre de la tabla
func (Nota) TableName() string { return "nota" }
