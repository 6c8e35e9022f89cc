package model

import "time"

// ── formatos de fecha y hora ──

const (
	FormatoFecha = "2006-01-02"
	FormatoHora  = "15:04"
)

// ── jornadas de una institución ──

const (
	JornadaUnicaManana = "UNICA MAÑANA"
	JornadaUnicaTarde  = "UNICA TARDE"
	JornadaMixta       = "MIXTA"
)

// ── tipos de programa ──

const (
	ProgramaInsideClassroom  = "INSIDECLASSROOM"
	ProgramaOutsideClassroom = "OUTSIDECLASSROOM"
)

// ── roles de persona ──

const (
	RolAdministrador  = "ADMINISTRADOR"
	RolAdministrativo = "ADMINISTRATIVO"
	RolTutor          = "TUTOR"
)

// FormatFecha fecha como YYYY-MM-DD
func FormatFecha(t time.Time) string {
	return t.Format(FormatoFecha)
}

// FormatFechaPtr igual que FormatFecha pero admite nil
func FormatFechaPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(FormatoFecha)
	return &s
}

// ParseFecha interpreta YYYY-MM-DD
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(FormatoFecha, s)
}
