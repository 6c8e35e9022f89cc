package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// ── errores de reportes ──

var (
	ErrAulaSinPrograma    = apperrors.NewValidation("id_programa", "El aula no tiene programa asignado")
	ErrExportGenerateFail = errors.New("no se pudo generar el archivo")
	ErrICSSinEventos      = apperrors.NewValidation("archivo", "El calendario no contiene eventos válidos")
)

const (
	// límites de lectura para armar la planilla de un aula
	limitExportEstudiantes = 1000
	limitExportNotas       = 20000
)

// ReporteService planilla de notas (.xlsx) y calendario de horarios (.ics)
type ReporteService interface {
	// ExportNotas planilla del aula: una fila por estudiante, una columna por componente y la nota final ponderada
	ExportNotas(ctx context.Context, aulaID int64) (*bytes.Buffer, string, error)
	// ExportHorariosICS calendario semanal del aula
	ExportHorariosICS(ctx context.Context, aulaID int64) ([]byte, string, error)
	// ImportHorariosICS crea los horarios del calendario; si uno falla no se crea ninguno
	ImportHorariosICS(ctx context.Context, aulaID int64, r io.Reader) (*dto.ImportHorariosResponse, error)
}

type reporteService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewReporteService crea ReporteService
func NewReporteService(repo *repository.Repository, logger *zap.Logger) ReporteService {
	return &reporteService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportNotas
// ═══════════════════════════════════════════════════════════
//
//   | Documento | Estudiante | <componente> (p%) ... | Final |
//
// La final suma calificación × porcentaje / 100 de cada componente con nota.

func (s *reporteService) ExportNotas(ctx context.Context, aulaID int64) (*bytes.Buffer, string, error) {
	// 1. aula y programa
	aula, err := s.repo.Aula.GetByID(ctx, aulaID)
	if err != nil {
		return nil, "", notFoundOr(s.logger, err, ErrAulaNotFound, "consultar aula falló", zap.Int64("id", aulaID))
	}
	if aula.IDPrograma == nil {
		return nil, "", ErrAulaSinPrograma
	}

	// 2. componentes, estudiantes y notas
	componentes, err := s.repo.Componente.List(ctx, aula.IDPrograma, LimitCatalogo)
	if err != nil {
		return nil, "", dbError(s.logger, "listar componentes falló", err)
	}
	estudiantes, err := s.repo.Estudiante.List(ctx, &aulaID, limitExportEstudiantes)
	if err != nil {
		return nil, "", dbError(s.logger, "listar estudiantes falló", err)
	}

	// nota[id_estudiante][id_componente]; con varias notas gana la más reciente
	notas := make(map[int64]map[int64]float64, len(estudiantes))
	if len(estudiantes) > 0 && len(componentes) > 0 {
		ids := make([]int64, 0, len(estudiantes))
		for _, e := range estudiantes {
			ids = append(ids, e.IDEstudiante)
		}
		list, err := s.repo.Nota.List(ctx, repository.NotaFilter{IDEstudiantes: ids, Limit: limitExportNotas})
		if err != nil {
			return nil, "", dbError(s.logger, "listar notas falló", err)
		}
		for _, n := range list {
			if notas[n.IDEstudiante] == nil {
				notas[n.IDEstudiante] = make(map[int64]float64)
			}
			notas[n.IDEstudiante][n.IDComponente] = n.Calificacion
		}
	}

	// 3. libro
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Notas"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 32)
	lastCol := 3 + len(componentes)
	f.SetColWidth(sheet, colName(3), colName(lastCol), 16)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// título
	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s (grado %d) - Notas", aula.NombreAula, aula.Grado))
	f.MergeCell(sheet, "A1", cell(colName(lastCol), 1))
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	// encabezados
	row := 2
	f.SetCellValue(sheet, cell("A", row), "Documento")
	f.SetCellValue(sheet, cell("B", row), "Estudiante")
	for i, c := range componentes {
		f.SetCellValue(sheet, cell(colName(3+i), row), fmt.Sprintf("%s (%.0f%%)", c.Nombre, c.Porcentaje))
	}
	f.SetCellValue(sheet, cell(colName(lastCol), row), "Final")
	f.SetCellStyle(sheet, cell("A", row), cell(colName(lastCol), row), headerStyle)

	// filas
	row = 3
	for _, e := range estudiantes {
		f.SetCellValue(sheet, cell("A", row), e.IDEstudiante)
		f.SetCellValue(sheet, cell("B", row), e.Nombre)
		for i, c := range componentes {
			if v, ok := notas[e.IDEstudiante][c.IDComponente]; ok {
				f.SetCellValue(sheet, cell(colName(3+i), row), v)
			} else {
				f.SetCellValue(sheet, cell(colName(3+i), row), "-")
			}
		}
		f.SetCellValue(sheet, cell(colName(lastCol), row), NotaFinal(componentes, notas[e.IDEstudiante]))
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("escribir planilla falló", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("notas_aula_%d.xlsx", aula.IDAula)
	return buf, filename, nil
}

// NotaFinal promedio ponderado, redondeado a dos decimales
func NotaFinal(componentes []model.Componente, notas map[int64]float64) float64 {
	total := 0.0
	for _, c := range componentes {
		if v, ok := notas[c.IDComponente]; ok {
			total += v * c.Porcentaje / 100
		}
	}
	return math.Round(total*100) / 100
}

// ═══════════════════════════════════════════════════════════
// Calendario
// ═══════════════════════════════════════════════════════════

func (s *reporteService) ExportHorariosICS(ctx context.Context, aulaID int64) ([]byte, string, error) {
	aula, err := s.repo.Aula.GetByID(ctx, aulaID)
	if err != nil {
		return nil, "", notFoundOr(s.logger, err, ErrAulaNotFound, "consultar aula falló", zap.Int64("id", aulaID))
	}
	horarios, err := s.repo.Horario.List(ctx, &aulaID, LimitHorarios)
	if err != nil {
		return nil, "", dbError(s.logger, "listar horarios falló", err, zap.Int64("id_aula", aulaID))
	}

	content, err := BuildHorariosICS(aula, horarios, s.now())
	if err != nil {
		s.logger.Error("generar calendario falló", zap.Int64("id_aula", aulaID), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return []byte(content), fmt.Sprintf("horario_aula_%d.ics", aula.IDAula), nil
}

func (s *reporteService) ImportHorariosICS(ctx context.Context, aulaID int64, r io.Reader) (*dto.ImportHorariosResponse, error) {
	eventos, err := ParseHorariosICS(r)
	if err != nil {
		return nil, apperrors.NewValidation("archivo", "%s", err.Error())
	}
	if len(eventos) == 0 {
		return nil, ErrICSSinEventos
	}

	creados := make([]dto.HorarioResponse, 0, len(eventos))
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		for i, e := range eventos {
			h, err := createHorario(ctx, txRepo, s.logger, aulaID, e.Dia, e.HoraInicio, e.HoraFin)
			if err != nil {
				var ve *apperrors.ValidationError
				if errors.As(err, &ve) {
					return apperrors.NewValidation(ve.Field, "Evento %d (%s %s-%s): %s",
						i+1, e.Dia, e.HoraInicio, e.HoraFin, ve.Message)
				}
				return err
			}
			creados = append(creados, *toHorarioResponse(h))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("horarios importados", zap.Int64("id_aula", aulaID), zap.Int("total", len(creados)))
	return &dto.ImportHorariosResponse{Creados: creados, Total: len(creados)}, nil
}

// ── helpers ──

// colName 1 -> "A"
func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
