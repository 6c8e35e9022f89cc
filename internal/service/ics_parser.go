package service

import (
	"fmt"
	"io"
	"strings"
	"time"
	_ "time/tzdata" // America/Bogota aunque el sistema no traiga zoneinfo

	ics "github.com/arran4/golang-ical"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// ── Calendario iCalendar de horarios ────────────────────────
//
// Exportación: cada horario es un VEVENT semanal (RRULE FREQ=WEEKLY;BYDAY=..)
// anclado en la semana actual.
// Importación: DTSTART/DTEND dan día y franja; un RRULE con BYDAY de varios
// días produce un horario por día. Los eventos repetidos se unen.
// ─────────────────────────────────────────────────────────────

const (
	icsMaxFileSize = 1024 * 1024 // 1MB
	zonaHoraria    = "America/Bogota"
	icsProductID   = "-//GlobalEnglish//Horarios//ES"
	icsHoraLocal   = "20060102T150405"
)

// horarioEvento evento ya interpretado, pendiente de validar
type horarioEvento struct {
	Resumen    string
	Dia        string // forma canónica
	HoraInicio string // HH:MM
	HoraFin    string
}

var (
	diaPorWeekday = map[time.Weekday]string{
		time.Monday:    model.DiaLunes,
		time.Tuesday:   model.DiaMartes,
		time.Wednesday: model.DiaMiercoles,
		time.Thursday:  model.DiaJueves,
		time.Friday:    model.DiaViernes,
		time.Saturday:  model.DiaSabado,
		time.Sunday:    model.DiaDomingo,
	}
	diaPorByDay = map[string]string{
		"MO": model.DiaLunes,
		"TU": model.DiaMartes,
		"WE": model.DiaMiercoles,
		"TH": model.DiaJueves,
		"FR": model.DiaViernes,
		"SA": model.DiaSabado,
		"SU": model.DiaDomingo,
	}
	byDayPorDia = map[string]string{
		model.DiaLunes:     "MO",
		model.DiaMartes:    "TU",
		model.DiaMiercoles: "WE",
		model.DiaJueves:    "TH",
		model.DiaViernes:   "FR",
		model.DiaSabado:    "SA",
		model.DiaDomingo:   "SU",
	}
)

func zonaLocal() *time.Location {
	loc, err := time.LoadLocation(zonaHoraria)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ════════════════════════ exportación ════════════════════════

// BuildHorariosICS calendario con los horarios del aula. now fija la semana de anclaje.
func BuildHorariosICS(aula *model.Aula, horarios []model.Horario, now time.Time) (string, error) {
	loc := zonaLocal()
	lunes := inicioSemana(now.In(loc))

	// hora local con TZID; SetStartAt escribiría UTC
	tzid := &ics.KeyValues{Key: string(ics.ParameterTzid), Value: []string{loc.String()}}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(fmt.Sprintf("Horario %s", aula.NombreAula))

	for _, h := range horarios {
		offset := diaOffset(h.Dia)
		if offset < 0 {
			return "", fmt.Errorf("día desconocido en horario %d: %q", h.IDHorario, h.Dia)
		}
		ini, err := ParseHora(h.HoraInicio)
		if err != nil {
			return "", fmt.Errorf("horario %d: %w", h.IDHorario, err)
		}
		fin, err := ParseHora(h.HoraFin)
		if err != nil {
			return "", fmt.Errorf("horario %d: %w", h.IDHorario, err)
		}

		dia := lunes.AddDate(0, 0, offset)
		evt := cal.AddEvent(fmt.Sprintf("horario-%d@globalenglish", h.IDHorario))
		evt.SetDtStampTime(now)
		evt.SetProperty(ics.ComponentPropertyDtStart, dia.Add(time.Duration(ini)*time.Second).Format(icsHoraLocal), tzid)
		evt.SetProperty(ics.ComponentPropertyDtEnd, dia.Add(time.Duration(fin)*time.Second).Format(icsHoraLocal), tzid)
		evt.SetSummary(fmt.Sprintf("%s (grado %d)", aula.NombreAula, aula.Grado))
		evt.SetProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;BYDAY="+byDayPorDia[h.Dia])
	}

	return cal.Serialize(), nil
}

// inicioSemana lunes 00:00 de la semana de t
func inicioSemana(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDate(0, 0, 1-wd)
}

// diaOffset 0 para lunes ... 6 para domingo; -1 si no es un día canónico
func diaOffset(dia string) int {
	for i, d := range model.DiasSemana {
		if d == dia {
			return i
		}
	}
	return -1
}

// ════════════════════════ importación ════════════════════════

// ParseHorariosICS interpreta el calendario y devuelve un evento por (día, franja).
// Los eventos sin resumen o sin fechas legibles se ignoran.
func ParseHorariosICS(reader io.Reader) ([]horarioEvento, error) {
	cal, err := ics.ParseCalendar(io.LimitReader(reader, icsMaxFileSize))
	if err != nil {
		return nil, fmt.Errorf("calendario ICS inválido: %w", err)
	}

	loc := zonaLocal()
	var events []horarioEvento
	for _, comp := range cal.Events() {
		events = append(events, parseVEvent(comp, loc)...)
	}
	return mergeEvents(events), nil
}

// parseVEvent un VEVENT; varios resultados cuando BYDAY lista varios días
func parseVEvent(evt *ics.VEvent, loc *time.Location) []horarioEvento {
	resumen := ""
	if summary := evt.GetProperty(ics.ComponentPropertySummary); summary != nil {
		resumen = strings.TrimSpace(summary.Value)
	}

	dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return nil
	}
	dtEnd, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd, loc)
	if err != nil {
		return nil
	}

	base := horarioEvento{
		Resumen:    resumen,
		HoraInicio: dtStart.Format(model.FormatoHora),
		HoraFin:    dtEnd.Format(model.FormatoHora),
	}

	dias := []string{diaPorWeekday[dtStart.Weekday()]}
	if rrule := evt.GetProperty(ics.ComponentPropertyRrule); rrule != nil {
		if byDay := parseByDay(rrule.Value); len(byDay) > 0 {
			dias = byDay
		}
	}

	out := make([]horarioEvento, 0, len(dias))
	for _, d := range dias {
		e := base
		e.Dia = d
		out = append(out, e)
	}
	return out
}

// parseByDay días de BYDAY en un RRULE (FREQ=WEEKLY;BYDAY=MO,WE)
func parseByDay(value string) []string {
	var dias []string
	for _, part := range strings.Split(value, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || strings.ToUpper(kv[0]) != "BYDAY" {
			continue
		}
		for _, code := range strings.Split(kv[1], ",") {
			code = strings.ToUpper(strings.TrimSpace(code))
			// admite prefijos ordinales (1MO, -1FR)
			if len(code) > 2 {
				code = code[len(code)-2:]
			}
			if d, ok := diaPorByDay[code]; ok {
				dias = append(dias, d)
			}
		}
	}
	return dias
}

// mergeEvents quita los eventos repetidos con el mismo día y franja
func mergeEvents(events []horarioEvento) []horarioEvento {
	type key struct {
		Dia        string
		HoraInicio string
		HoraFin    string
	}
	seen := make(map[key]bool)
	result := make([]horarioEvento, 0, len(events))
	for _, e := range events {
		k := key{Dia: e.Dia, HoraInicio: e.HoraInicio, HoraFin: e.HoraFin}
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, e)
	}
	return result
}

// parseICSDateTime fecha-hora de una propiedad, en loc
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty, loc *time.Location) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("falta la propiedad %s", propName)
	}
	val := prop.Value

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}

	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	for _, layout := range formats {
		t, err := time.Parse(layout, val)
		if err != nil {
			continue
		}
		if strings.HasSuffix(layout, "Z") {
			return t.In(loc), nil
		}
		if tzid != "" {
			if tzLoc, err := time.LoadLocation(tzid); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, tzLoc).In(loc), nil
			}
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	}

	return time.Time{}, fmt.Errorf("fecha ICS no reconocida: %s", val)
}
