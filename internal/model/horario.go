package model

// Horario tabla horario: franja semanal recurrente de un aula
type Horario struct {
	IDHorario     int64  `gorm:"column:id_horario;primaryKey;autoIncrement" json:"id_horario"`
	Dia           string `gorm:"type:varchar(10);not null"                  json:"dia"`
	HoraInicio    string `gorm:"column:hora_inicio;type:varchar(5);not null" json:"hora_inicio"` // HH:MM
	HoraFin       string `gorm:"column:hora_fin;type:varchar(5);not null"    json:"hora_fin"`
	IDAula        int64  `gorm:"column:id_aula;not null"                    json:"id_aula"`
	IDSede        int64  `gorm:"column:id_sede;not null"                    json:"id_sede"`
	IDInstitucion int64  `gorm:"column:id_institucion;not null"             json:"id_institucion"`
}

// TableName nombre de la tabla
func (Horario) TableName() string { return "horario" }

// Días de la semana en su forma canónica
const (
	DiaLunes     = "Lunes"
	DiaMartes    = "Martes"
	DiaMiercoles = "Miércoles"
	DiaJueves    = "Jueves"
	DiaViernes   = "Viernes"
	DiaSabado    = "Sábado"
	DiaDomingo   = "Domingo"
)

// DiasSemana en orden, de lunes a domingo
var DiasSemana = []string{DiaLunes, DiaMartes, DiaMiercoles, DiaJueves, DiaViernes, DiaSabado, DiaDomingo}
