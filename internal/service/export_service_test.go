package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

func setupTestReporteService() (*reporteService, *mockRepos) {
	repo, mocks := newMockRepository()
	svc := NewReporteService(repo, testLogger()).(*reporteService)
	svc.now = func() time.Time { return time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC) } // miércoles
	return svc, mocks
}

// icsCalendar arma un VCALENDAR con los VEVENT dados
func icsCalendar(events ...string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//Test//Test//ES\r\n")
	for _, e := range events {
		b.WriteString(e)
	}
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func icsEvent(uid, start, end, rrule string) string {
	e := "BEGIN:VEVENT\r\nUID:" + uid + "\r\nSUMMARY:Clase\r\n" +
		"DTSTART;TZID=America/Bogota:" + start + "\r\n" +
		"DTEND;TZID=America/Bogota:" + end + "\r\n"
	if rrule != "" {
		e += "RRULE:" + rrule + "\r\n"
	}
	return e + "END:VEVENT\r\n"
}

// ── calendario ──

func TestBuildParseHorariosICS_RoundTrip(t *testing.T) {
	aula := &model.Aula{IDAula: 3, NombreAula: "Aula 9A", Grado: 9}
	horarios := []model.Horario{
		{IDHorario: 1, Dia: model.DiaLunes, HoraInicio: "08:00", HoraFin: "09:00", IDAula: 3},
		{IDHorario: 2, Dia: model.DiaSabado, HoraInicio: "10:30", HoraFin: "11:30", IDAula: 3},
	}

	content, err := BuildHorariosICS(aula, horarios, time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildHorariosICS: %v", err)
	}
	if !strings.Contains(content, "BYDAY=MO") || !strings.Contains(content, "BYDAY=SA") {
		t.Errorf("faltan las reglas semanales:\n%s", content)
	}

	events, err := ParseHorariosICS(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseHorariosICS: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("eventos = %d, se esperaban 2", len(events))
	}
	want := map[string][2]string{
		model.DiaLunes:  {"08:00", "09:00"},
		model.DiaSabado: {"10:30", "11:30"},
	}
	for _, e := range events {
		w, ok := want[e.Dia]
		if !ok {
			t.Errorf("día inesperado %q", e.Dia)
			continue
		}
		if e.HoraInicio != w[0] || e.HoraFin != w[1] {
			t.Errorf("%s: franja %s-%s, se esperaba %s-%s", e.Dia, e.HoraInicio, e.HoraFin, w[0], w[1])
		}
	}
}

func TestBuildHorariosICS_DiaDesconocido(t *testing.T) {
	aula := &model.Aula{IDAula: 1, NombreAula: "X", Grado: 4}
	_, err := BuildHorariosICS(aula, []model.Horario{{IDHorario: 1, Dia: "Funday", HoraInicio: "08:00", HoraFin: "09:00"}}, time.Now())
	if err == nil {
		t.Error("un día no canónico debe fallar")
	}
}

func TestParseHorariosICS_ByDayVariosDias(t *testing.T) {
	cal := icsCalendar(
		icsEvent("a@test", "20240304T070000", "20240304T080000", "FREQ=WEEKLY;BYDAY=MO,WE,1FR"),
		// repetido: se une con el lunes anterior
		icsEvent("b@test", "20240311T070000", "20240311T080000", ""),
	)

	events, err := ParseHorariosICS(strings.NewReader(cal))
	if err != nil {
		t.Fatalf("ParseHorariosICS: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("eventos = %d, se esperaban 3: %+v", len(events), events)
	}
	dias := []string{events[0].Dia, events[1].Dia, events[2].Dia}
	if dias[0] != model.DiaLunes || dias[1] != model.DiaMiercoles || dias[2] != model.DiaViernes {
		t.Errorf("días = %v", dias)
	}
	for _, e := range events {
		if e.HoraInicio != "07:00" || e.HoraFin != "08:00" {
			t.Errorf("franja = %s-%s", e.HoraInicio, e.HoraFin)
		}
	}
}

func TestParseHorariosICS_Invalido(t *testing.T) {
	if _, err := ParseHorariosICS(strings.NewReader("esto no es un calendario")); err == nil {
		t.Error("se esperaba error con contenido que no es ICS")
	}
}

func TestExportHorariosICS(t *testing.T) {
	svc, mocks := setupTestReporteService()
	aula := seedAula(mocks, 9)
	_ = mocks.horario.Create(context.Background(), &model.Horario{
		Dia: model.DiaMartes, HoraInicio: "14:00", HoraFin: "15:00", IDAula: aula.IDAula,
		IDSede: aula.IDSede, IDInstitucion: aula.IDInstitucion,
	})

	data, filename, err := svc.ExportHorariosICS(context.Background(), aula.IDAula)
	if err != nil {
		t.Fatalf("ExportHorariosICS: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("filename = %q", filename)
	}
	if !strings.Contains(string(data), "BEGIN:VEVENT") {
		t.Error("el calendario debe traer el evento")
	}
	// martes de la semana del 6 de marzo, hora de Bogotá
	for _, line := range []string{
		"DTSTART;TZID=America/Bogota:20240305T140000",
		"DTEND;TZID=America/Bogota:20240305T150000",
	} {
		if !strings.Contains(string(data), line) {
			t.Errorf("falta %q en:\n%s", line, data)
		}
	}

	if _, _, err := svc.ExportHorariosICS(context.Background(), 404); !errors.Is(err, ErrAulaNotFound) {
		t.Errorf("se esperaba ErrAulaNotFound, se obtuvo %v", err)
	}
}

func TestImportHorariosICS(t *testing.T) {
	svc, mocks := setupTestReporteService()
	aula := seedAula(mocks, 9)

	cal := icsCalendar(icsEvent("a@test", "20240304T070000", "20240304T080000", "FREQ=WEEKLY;BYDAY=MO,TH"))
	resp, err := svc.ImportHorariosICS(context.Background(), aula.IDAula, strings.NewReader(cal))
	if err != nil {
		t.Fatalf("ImportHorariosICS: %v", err)
	}
	if resp.Total != 2 || len(resp.Creados) != 2 {
		t.Fatalf("creados = %d", resp.Total)
	}
	if len(mocks.horario.items) != 2 {
		t.Errorf("horarios guardados = %d", len(mocks.horario.items))
	}
}

func TestImportHorariosICS_EventoRechazado(t *testing.T) {
	svc, mocks := setupTestReporteService()
	aula := seedAula(mocks, 4)

	// sábado no es válido para grado 4
	cal := icsCalendar(icsEvent("a@test", "20240309T070000", "20240309T080000", ""))
	_, err := svc.ImportHorariosICS(context.Background(), aula.IDAula, strings.NewReader(cal))
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("se esperaba error de validación, se obtuvo %v", err)
	}
	if !strings.HasPrefix(ve.Message, "Evento 1 (Sábado 07:00-08:00)") {
		t.Errorf("mensaje = %q", ve.Message)
	}
	if len(mocks.horario.items) != 0 {
		t.Error("no debe guardarse ningún horario")
	}
}

func TestImportHorariosICS_SinEventos(t *testing.T) {
	svc, mocks := setupTestReporteService()
	aula := seedAula(mocks, 9)

	_, err := svc.ImportHorariosICS(context.Background(), aula.IDAula, strings.NewReader(icsCalendar()))
	if !errors.Is(err, ErrICSSinEventos) {
		t.Errorf("se esperaba ErrICSSinEventos, se obtuvo %v", err)
	}
}

// ── planilla de notas ──

func TestNotaFinal(t *testing.T) {
	componentes := []model.Componente{
		{IDComponente: 1, Porcentaje: 60},
		{IDComponente: 2, Porcentaje: 40},
	}
	if got := NotaFinal(componentes, map[int64]float64{1: 4.0, 2: 3.5}); got != 3.8 {
		t.Errorf("NotaFinal = %v, se esperaba 3.8", got)
	}
	// componente sin nota no suma
	if got := NotaFinal(componentes, map[int64]float64{1: 5}); got != 3 {
		t.Errorf("NotaFinal = %v, se esperaba 3", got)
	}
	if got := NotaFinal(componentes, nil); got != 0 {
		t.Errorf("NotaFinal sin notas = %v", got)
	}
}

func TestExportNotas(t *testing.T) {
	svc, mocks := setupTestReporteService()
	ctx := context.Background()
	aula := seedAula(mocks, 5)
	mocks.aula.items[aula.IDAula].IDPrograma = ptr(int64(1))

	oral := &model.Componente{Nombre: "Oral", Porcentaje: 60, IDPrograma: 1}
	escrito := &model.Componente{Nombre: "Escrito", Porcentaje: 40, IDPrograma: 1}
	_ = mocks.componente.Create(ctx, oral)
	_ = mocks.componente.Create(ctx, escrito)

	_ = mocks.estudiante.Create(ctx, &model.Estudiante{IDEstudiante: 1001, Nombre: "Luis", Grado: 5,
		IDAula: aula.IDAula, IDSede: aula.IDSede, IDInstitucion: aula.IDInstitucion})
	_ = mocks.estudiante.Create(ctx, &model.Estudiante{IDEstudiante: 1002, Nombre: "Sara", Grado: 5,
		IDAula: aula.IDAula, IDSede: aula.IDSede, IDInstitucion: aula.IDInstitucion})

	_ = mocks.nota.Create(ctx, &model.Nota{IDEstudiante: 1001, IDComponente: oral.IDComponente, Calificacion: 3})
	// la más reciente reemplaza a la anterior
	_ = mocks.nota.Create(ctx, &model.Nota{IDEstudiante: 1001, IDComponente: oral.IDComponente, Calificacion: 4})
	_ = mocks.nota.Create(ctx, &model.Nota{IDEstudiante: 1001, IDComponente: escrito.IDComponente, Calificacion: 3.5})

	buf, filename, err := svc.ExportNotas(ctx, aula.IDAula)
	if err != nil {
		t.Fatalf("ExportNotas: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("abrir planilla: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Notas")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("filas = %d, se esperaban 4 (título, encabezado, 2 estudiantes)", len(rows))
	}
	header := rows[1]
	if header[0] != "Documento" || header[2] != "Oral (60%)" || header[4] != "Final" {
		t.Errorf("encabezado = %v", header)
	}
	if rows[2][0] != "1001" || rows[2][2] != "4" || rows[2][4] != "3.8" {
		t.Errorf("fila Luis = %v", rows[2])
	}
	if rows[3][2] != "-" || rows[3][4] != "0" {
		t.Errorf("fila Sara = %v", rows[3])
	}
}

func TestExportNotas_AulaSinPrograma(t *testing.T) {
	svc, mocks := setupTestReporteService()
	aula := seedAula(mocks, 5)

	if _, _, err := svc.ExportNotas(context.Background(), aula.IDAula); !errors.Is(err, ErrAulaSinPrograma) {
		t.Errorf("se esperaba ErrAulaSinPrograma, se obtuvo %v", err)
	}
}
