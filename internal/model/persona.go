package model

import "time"

// Persona tabla persona
type Persona struct {
	IDPersona       int64   `gorm:"column:id_persona;primaryKey;autoIncrement" json:"id_persona"`
	Nombre          string  `gorm:"type:varchar(150);not null"                 json:"nombre"`
	TipoDocumento   *string `gorm:"column:tipo_documento;type:varchar(10)"     json:"tipo_documento,omitempty"`
	NumeroDocumento *string `gorm:"column:numero_documento;type:varchar(30)"   json:"numero_documento,omitempty"`
	Correo          *string `gorm:"type:varchar(255)"                          json:"correo,omitempty"`
	Rol             *string `gorm:"type:varchar(20)"                           json:"rol,omitempty"` // ADMINISTRADOR | ADMINISTRATIVO | TUTOR
}

// TableName nombre de la tabla
func (Persona) TableName() string { return "persona" }

// Usuario tabla usuario. La contraseña nunca se serializa.
type Usuario struct {
	IDPersona  int64  `gorm:"column:id_persona;primaryKey;autoIncrement:false" json:"id_persona"`
	Contrasena string `gorm:"column:contrasena;type:varchar(255);not null"     json:"-"`

	Persona *Persona `gorm:"foreignKey:IDPersona;references:IDPersona" json:"persona,omitempty"`
}

// TableName nombre de la tabla
func (Usuario) TableName() string { return "usuario" }

// Credencial resultado del join persona + usuario usado en el login
type Credencial struct {
	IDPersona  int64   `gorm:"column:id_persona"`
	Nombre     string  `gorm:"column:nombre"`
	Correo     *string `gorm:"column:correo"`
	Rol        *string `gorm:"column:rol"`
	Contrasena string  `gorm:"column:contrasena"`
}

// Tutor tabla tutor
type Tutor struct {
	IDTutor       int64      `gorm:"column:id_tutor;primaryKey;autoIncrement" json:"id_tutor"`
	IDPersona     *int64     `gorm:"column:id_persona"                        json:"id_persona,omitempty"`
	FechaContrato *time.Time `gorm:"column:fecha_contrato;type:date"          json:"fecha_contrato,omitempty"`

	Persona *Persona `gorm:"foreignKey:IDPersona;references:IDPersona" json:"persona,omitempty"`
}

// TableName nombre de la tabla
func (Tutor) TableName() string { return "tutor" }

// TutorReferencias filas que apuntan a un tutor
type TutorReferencias struct {
	Aulas        int64
	Asistencias  int64
	Asignaciones int64
	Registros    int64
}

// Total suma de todas las referencias
func (r TutorReferencias) Total() int64 {
	return r.Aulas + r.Asistencias + r.Asignaciones + r.Registros
}
