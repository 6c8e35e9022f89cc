package model

import "time"

// Motivo tabla motivo: causa de una inasistencia
type Motivo struct {
	IDMotivo    int64  `gorm:"column:id_motivo;primaryKey;autoIncrement" json:"id_motivo"`
	Descripcion string `gorm:"type:varchar(200);not null"                json:"descripcion"`
}

// TableName nombre de la tabla
func (Motivo) TableName() string { return "motivo" }

// AsistenciaTutor tabla asistencia_aula_tutor
type AsistenciaTutor struct {
	IDAsistencia int64     `gorm:"column:id_asistencia;primaryKey;autoIncrement" json:"id_asistencia"`
	IDTutor      int64     `gorm:"column:id_tutor;not null"                      json:"id_tutor"`
	IDAula       int64     `gorm:"column:id_aula;not null"                       json:"id_aula"`
	Fecha        time.Time `gorm:"type:date;not null"                            json:"fecha"`
	HoraEntrada  *string   `gorm:"column:hora_entrada;type:varchar(5)"           json:"hora_entrada,omitempty"`
	HoraSalida   *string   `gorm:"column:hora_salida;type:varchar(5)"            json:"hora_salida,omitempty"`
	Dictada      bool      `gorm:"not null;default:true"                         json:"dictada"`
	IDMotivo     *int64    `gorm:"column:id_motivo"                              json:"id_motivo,omitempty"`
}

// TableName nombre de la tabla
func (AsistenciaTutor) TableName() string { return "asistencia_aula_tutor" }

// AsistenciaEstudiante tabla asistencia_aula_estudiante
type AsistenciaEstudiante struct {
	IDAsistencia int64     `gorm:"column:id_asistencia;primaryKey;autoIncrement" json:"id_asistencia"`
	IDEstudiante int64     `gorm:"column:id_estudiante;not null"                 json:"id_estudiante"`
	IDAula       int64     `gorm:"column:id_aula;not null"                       json:"id_aula"`
	Fecha        time.Time `gorm:"type:date;not null"                            json:"fecha"`
	HoraEntrada  *string   `gorm:"column:hora_entrada;type:varchar(5)"           json:"hora_entrada,omitempty"`
	HoraSalida   *string   `gorm:"column:hora_salida;type:varchar(5)"            json:"hora_salida,omitempty"`
	Asistio      bool      `gorm:"not null;default:true"                         json:"asistio"`
	IDMotivo     *int64    `gorm:"column:id_motivo"                              json:"id_motivo,omitempty"`
}

// TableName nombre de la tabla
func (AsistenciaEstudiante) TableName() string { return "asistencia_aula_estudiante" }

// RegistroCambio tabla registro_de_cambio
type RegistroCambio struct {
	IDRegistro int64     `gorm:"column:id_registro;primaryKey;autoIncrement" json:"id_registro"`
	Fecha      time.Time `gorm:"type:date;not null"                          json:"fecha"`
	Hora       string    `gorm:"type:varchar(5);not null"                    json:"hora"`
	Motivo     string    `gorm:"type:varchar(300);not null"                  json:"motivo"`
	IDPersona  *int64    `gorm:"column:id_persona"                           json:"id_persona,omitempty"`
	IDTutor    *int64    `gorm:"column:id_tutor"                             json:"id_tutor,omitempty"`
}

// TableName nombre de la tabla
func (RegistroCambio) TableName() string { return "registro_de_cambio" }
