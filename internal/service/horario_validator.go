package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Reglas de horario por aula
// ═══════════════════════════════════════════════════════════
//
//  grado 4/5:  lunes a viernes, máximo 2 horarios semanales
//  grado 9/10: lunes a sábado,  máximo 3 horarios semanales
//  franja permitida 06:00-18:00, inicio < fin
//  duracion_hora de la institución en {40,45,50,55,60}; cada horario cuenta como una hora

const (
	horaMinima = 6 * 3600
	horaMaxima = 18 * 3600
)

var duracionesPermitidas = []int{40, 45, 50, 55, 60}

var (
	diasPrimaria   = []string{model.DiaLunes, model.DiaMartes, model.DiaMiercoles, model.DiaJueves, model.DiaViernes}
	diasBachillera = []string{model.DiaLunes, model.DiaMartes, model.DiaMiercoles, model.DiaJueves, model.DiaViernes, model.DiaSabado}
)

var sinTildes = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u")

// HorarioCounter cuenta los horarios de un aula (HorarioRepository lo implementa)
type HorarioCounter interface {
	CountByAula(ctx context.Context, aulaID int64, excludeID *int64) (int64, error)
}

// HorarioInput datos a validar
type HorarioInput struct {
	Grado      int
	Dia        string
	HoraInicio string
	HoraFin    string
	Duracion   int // duracion_hora de la institución, en minutos
	IDAula     int64
	ExcludeID  *int64 // horario que se está editando
}

// HorarioValido valores normalizados listos para guardar
type HorarioValido struct {
	Dia        string
	HoraInicio string
	HoraFin    string
}

// ValidateHorario aplica las reglas en orden y se detiene en la primera que falla
func ValidateHorario(ctx context.Context, counter HorarioCounter, in HorarioInput) (*HorarioValido, error) {
	if err := ValidateGrado(in.Grado); err != nil {
		return nil, err
	}
	if err := ValidateDuracion(in.Duracion); err != nil {
		return nil, err
	}
	dia, err := ValidateDia(in.Grado, in.Dia)
	if err != nil {
		return nil, err
	}
	inicio, fin, err := ValidateFranja(in.HoraInicio, in.HoraFin)
	if err != nil {
		return nil, err
	}

	existentes, err := counter.CountByAula(ctx, in.IDAula, in.ExcludeID)
	if err != nil {
		return nil, err
	}
	limite := CapSemanal(in.Grado)
	if existentes+1 > int64(limite) {
		return nil, apperrors.NewValidation("id_aula",
			"El aula ya tiene %d horario(s) semanales; el máximo para grado %d es %d", existentes, in.Grado, limite)
	}

	return &HorarioValido{Dia: dia, HoraInicio: inicio, HoraFin: fin}, nil
}

// ValidateGrado solo 4, 5, 9 y 10
func ValidateGrado(grado int) error {
	switch grado {
	case 4, 5, 9, 10:
		return nil
	}
	return apperrors.NewValidation("grado", "Grado %d no soportado. Valores permitidos: 4, 5, 9, 10", grado)
}

// ValidateDuracion duración de la hora de clase de la institución
func ValidateDuracion(duracion int) error {
	for _, d := range duracionesPermitidas {
		if d == duracion {
			return nil
		}
	}
	return apperrors.NewValidation("duracion_hora",
		"Duración de hora %d no soportada. Valores permitidos: 40, 45, 50, 55, 60", duracion)
}

// CapSemanal horarios semanales permitidos por grado; 0 si el grado no existe
func CapSemanal(grado int) int {
	switch grado {
	case 4, 5:
		return 2
	case 9, 10:
		return 3
	}
	return 0
}

// DiasPermitidos días válidos para el grado, en orden
func DiasPermitidos(grado int) []string {
	switch grado {
	case 4, 5:
		return diasPrimaria
	case 9, 10:
		return diasBachillera
	}
	return nil
}

// NormalizeDia forma canónica (con tilde) de un nombre de día escrito en cualquier
// combinación de mayúsculas y con o sin tildes
func NormalizeDia(dia string) (string, bool) {
	key := sinTildes.Replace(strings.ToLower(strings.TrimSpace(dia)))
	for _, d := range model.DiasSemana {
		if sinTildes.Replace(strings.ToLower(d)) == key {
			return d, true
		}
	}
	return "", false
}

// ValidateDia devuelve el día canónico si el grado lo admite
func ValidateDia(grado int, dia string) (string, error) {
	permitidos := DiasPermitidos(grado)
	canon, ok := NormalizeDia(dia)
	if ok {
		for _, d := range permitidos {
			if d == canon {
				return canon, nil
			}
		}
	}
	return "", apperrors.NewValidation("dia",
		"El día %q no está permitido para grado %d. Días permitidos: %s", dia, grado, strings.Join(permitidos, ", "))
}

// ParseHora segundos desde medianoche de HH:MM o HH:MM:SS
func ParseHora(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("formato de hora inválido: %q", s)
	}
	limits := []int{23, 59, 59}
	total := 0
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("formato de hora inválido: %q", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("formato de hora inválido: %q", s)
		}
		total = total*60 + n
	}
	if len(parts) == 2 {
		total *= 60
	}
	return total, nil
}

// FormatHora HH:MM a partir de segundos desde medianoche
func FormatHora(segundos int) string {
	return fmt.Sprintf("%02d:%02d", segundos/3600, segundos%3600/60)
}

// ValidateFranja comprueba formato, límites 06:00-18:00 e inicio < fin.
// Devuelve ambas horas como HH:MM.
func ValidateFranja(horaInicio, horaFin string) (string, string, error) {
	inicio, err := ParseHora(horaInicio)
	if err != nil {
		return "", "", apperrors.NewValidation("hora_inicio", "Hora de inicio inválida: %q (use HH:MM)", horaInicio)
	}
	fin, err := ParseHora(horaFin)
	if err != nil {
		return "", "", apperrors.NewValidation("hora_fin", "Hora de fin inválida: %q (use HH:MM)", horaFin)
	}

	if inicio < horaMinima || inicio > horaMaxima {
		return "", "", apperrors.NewValidation("hora_inicio",
			"La hora de inicio %s está fuera del horario permitido (06:00 a 18:00)", horaInicio)
	}
	if fin < horaMinima || fin > horaMaxima {
		return "", "", apperrors.NewValidation("hora_fin",
			"La hora de fin %s está fuera del horario permitido (06:00 a 18:00)", horaFin)
	}

	// se compara ya truncado a minutos, que es como se guarda
	ini, end := FormatHora(inicio), FormatHora(fin)
	if inicio/60 >= fin/60 {
		return "", "", apperrors.NewValidation("hora_fin", "La hora de inicio debe ser anterior a la hora de fin")
	}
	return ini, end, nil
}
