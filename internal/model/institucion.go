package model

// Institucion tabla institucion
type Institucion struct {
	IDInstitucion int64  `gorm:"column:id_institucion;primaryKey;autoIncrement" json:"id_institucion"`
	Nombre        string `gorm:"type:varchar(150);not null"                      json:"nombre"`
	Jornada       string `gorm:"type:varchar(20);not null"                       json:"jornada"`       // UNICA MAÑANA | UNICA TARDE | MIXTA
	DuracionHora  int    `gorm:"column:duracion_hora;type:smallint;not null"     json:"duracion_hora"` // 40 | 45 | 50 | 55 | 60
}

// TableName nombre de la tabla
func (Institucion) TableName() string { return "institucion" }

// Sede tabla sede
type Sede struct {
	IDSede        int64   `gorm:"column:id_sede;primaryKey;autoIncrement" json:"id_sede"`
	IDInstitucion int64   `gorm:"column:id_institucion;not null"          json:"id_institucion"`
	NombreSede    string  `gorm:"column:nombre_sede;type:varchar(150)"    json:"nombre_sede"`
	Direccion     *string `gorm:"type:varchar(200)"                       json:"direccion,omitempty"`
	Telefono      *string `gorm:"type:varchar(30)"                        json:"telefono,omitempty"`

	Institucion *Institucion `gorm:"foreignKey:IDInstitucion;references:IDInstitucion" json:"institucion,omitempty"`
}

// TableName nombre de la tabla
func (Sede) TableName() string { return "sede" }

// Programa tabla programa
type Programa struct {
	IDPrograma int64  `gorm:"column:id_programa;primaryKey;autoIncrement" json:"id_programa"`
	Tipo       string `gorm:"type:varchar(30);not null"                   json:"tipo"` // INSIDECLASSROOM | OUTSIDECLASSROOM
}

// TableName nombre de la tabla
func (Programa) TableName() string { return "programa" }
