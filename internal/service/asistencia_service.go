package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

var (
	ErrMotivoNotFound     = apperrors.Wrap(apperrors.ErrNotFound, "Motivo no encontrado")
	ErrAsistenciaNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Asistencia no encontrada")
	ErrRegistroNotFound   = apperrors.Wrap(apperrors.ErrNotFound, "Registro no encontrado")
)

// ═══════════════════════════════════════════════════════════
// Motivo
// ═══════════════════════════════════════════════════════════

// MotivoService catálogo de motivos de inasistencia
type MotivoService interface {
	Create(ctx context.Context, req *dto.CreateMotivoRequest) (*dto.MotivoResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MotivoResponse, error)
	List(ctx context.Context, limit int) ([]dto.MotivoResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMotivoRequest) (*dto.MotivoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type motivoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMotivoService crea MotivoService
func NewMotivoService(repo *repository.Repository, logger *zap.Logger) MotivoService {
	return &motivoService{repo: repo, logger: logger}
}

func (s *motivoService) Create(ctx context.Context, req *dto.CreateMotivoRequest) (*dto.MotivoResponse, error) {
	m := &model.Motivo{Descripcion: req.Descripcion}
	if err := s.repo.Motivo.Create(ctx, m); err != nil {
		return nil, dbError(s.logger, "crear motivo falló", err)
	}
	return &dto.MotivoResponse{IDMotivo: m.IDMotivo, Descripcion: m.Descripcion}, nil
}

func (s *motivoService) GetByID(ctx context.Context, id int64) (*dto.MotivoResponse, error) {
	m, err := s.repo.Motivo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrMotivoNotFound, "consultar motivo falló", zap.Int64("id", id))
	}
	return &dto.MotivoResponse{IDMotivo: m.IDMotivo, Descripcion: m.Descripcion}, nil
}

func (s *motivoService) List(ctx context.Context, limit int) ([]dto.MotivoResponse, error) {
	if limit <= 0 {
		limit = LimitCatalogo
	}
	list, err := s.repo.Motivo.List(ctx, limit)
	if err != nil {
		return nil, dbError(s.logger, "listar motivos falló", err)
	}
	result := make([]dto.MotivoResponse, 0, len(list))
	for _, m := range list {
		result = append(result, dto.MotivoResponse{IDMotivo: m.IDMotivo, Descripcion: m.Descripcion})
	}
	return result, nil
}

func (s *motivoService) Update(ctx context.Context, id int64, req *dto.UpdateMotivoRequest) (*dto.MotivoResponse, error) {
	set := repository.NewMotivoUpdate()
	repository.SetIfPresent(set, "descripcion", req.Descripcion)
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}
	if err := s.repo.Motivo.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrMotivoNotFound, "actualizar motivo falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

func (s *motivoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Motivo.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrMotivoNotFound, "eliminar motivo falló", zap.Int64("id", id))
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Asistencias de tutores y estudiantes
// ═══════════════════════════════════════════════════════════

// AsistenciaService registro de asistencia; las filas no se editan, se borran y se vuelven a crear
type AsistenciaService interface {
	CreateTutor(ctx context.Context, req *dto.CreateAsistenciaTutorRequest) (*dto.AsistenciaTutorResponse, error)
	ListTutor(ctx context.Context, q *dto.AsistenciaListQuery) ([]dto.AsistenciaTutorResponse, error)
	DeleteTutor(ctx context.Context, id int64) error

	CreateEstudiante(ctx context.Context, req *dto.CreateAsistenciaEstudianteRequest) (*dto.AsistenciaEstudianteResponse, error)
	ListEstudiante(ctx context.Context, q *dto.AsistenciaListQuery) ([]dto.AsistenciaEstudianteResponse, error)
	DeleteEstudiante(ctx context.Context, id int64) error
}

type asistenciaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAsistenciaService crea AsistenciaService
func NewAsistenciaService(repo *repository.Repository, logger *zap.Logger) AsistenciaService {
	return &asistenciaService{repo: repo, logger: logger}
}

// ────────────────────── Tutores ──────────────────────

func (s *asistenciaService) CreateTutor(ctx context.Context, req *dto.CreateAsistenciaTutorRequest) (*dto.AsistenciaTutorResponse, error) {
	fecha, entrada, salida, err := parseJornada(req.Fecha, req.HoraEntrada, req.HoraSalida)
	if err != nil {
		return nil, err
	}

	a := &model.AsistenciaTutor{
		IDTutor:     req.IDTutor,
		IDAula:      req.IDAula,
		Fecha:       fecha,
		HoraEntrada: entrada,
		HoraSalida:  salida,
		Dictada:     req.Dictada == nil || *req.Dictada,
		IDMotivo:    req.IDMotivo,
	}
	if err := s.repo.Asistencia.CreateTutor(ctx, a); err != nil {
		return nil, dbError(s.logger, "registrar asistencia de tutor falló", err,
			zap.Int64("id_tutor", req.IDTutor), zap.Int64("id_aula", req.IDAula))
	}
	return toAsistenciaTutorResponse(a), nil
}

func (s *asistenciaService) ListTutor(ctx context.Context, q *dto.AsistenciaListQuery) ([]dto.AsistenciaTutorResponse, error) {
	filter, err := asistenciaFilter(q)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.Asistencia.ListTutor(ctx, filter)
	if err != nil {
		return nil, dbError(s.logger, "listar asistencias de tutores falló", err)
	}
	result := make([]dto.AsistenciaTutorResponse, 0, len(list))
	for i := range list {
		result = append(result, *toAsistenciaTutorResponse(&list[i]))
	}
	return result, nil
}

func (s *asistenciaService) DeleteTutor(ctx context.Context, id int64) error {
	if err := s.repo.Asistencia.DeleteTutor(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrAsistenciaNotFound, "eliminar asistencia de tutor falló", zap.Int64("id", id))
	}
	return nil
}

// ────────────────────── Estudiantes ──────────────────────

func (s *asistenciaService) CreateEstudiante(ctx context.Context, req *dto.CreateAsistenciaEstudianteRequest) (*dto.AsistenciaEstudianteResponse, error) {
	fecha, entrada, salida, err := parseJornada(req.Fecha, req.HoraEntrada, req.HoraSalida)
	if err != nil {
		return nil, err
	}

	a := &model.AsistenciaEstudiante{
		IDEstudiante: req.IDEstudiante,
		IDAula:       req.IDAula,
		Fecha:        fecha,
		HoraEntrada:  entrada,
		HoraSalida:   salida,
		Asistio:      req.Asistio == nil || *req.Asistio,
		IDMotivo:     req.IDMotivo,
	}
	if err := s.repo.Asistencia.CreateEstudiante(ctx, a); err != nil {
		return nil, dbError(s.logger, "registrar asistencia de estudiante falló", err,
			zap.Int64("id_estudiante", req.IDEstudiante), zap.Int64("id_aula", req.IDAula))
	}
	return toAsistenciaEstudianteResponse(a), nil
}

func (s *asistenciaService) ListEstudiante(ctx context.Context, q *dto.AsistenciaListQuery) ([]dto.AsistenciaEstudianteResponse, error) {
	filter, err := asistenciaFilter(q)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.Asistencia.ListEstudiante(ctx, filter)
	if err != nil {
		return nil, dbError(s.logger, "listar asistencias de estudiantes falló", err)
	}
	result := make([]dto.AsistenciaEstudianteResponse, 0, len(list))
	for i := range list {
		result = append(result, *toAsistenciaEstudianteResponse(&list[i]))
	}
	return result, nil
}

func (s *asistenciaService) DeleteEstudiante(ctx context.Context, id int64) error {
	if err := s.repo.Asistencia.DeleteEstudiante(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrAsistenciaNotFound, "eliminar asistencia de estudiante falló", zap.Int64("id", id))
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Registro de cambios
// ═══════════════════════════════════════════════════════════

// RegistroService bitácora de cambios; solo alta y consulta
type RegistroService interface {
	Create(ctx context.Context, req *dto.CreateRegistroRequest) (*dto.RegistroResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.RegistroResponse, error)
	List(ctx context.Context, q *dto.RegistroListQuery) ([]dto.RegistroResponse, error)
}

type registroService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRegistroService crea RegistroService
func NewRegistroService(repo *repository.Repository, logger *zap.Logger) RegistroService {
	return &registroService{repo: repo, logger: logger}
}

func (s *registroService) Create(ctx context.Context, req *dto.CreateRegistroRequest) (*dto.RegistroResponse, error) {
	fecha, err := model.ParseFecha(req.Fecha)
	if err != nil {
		return nil, apperrors.NewValidation("fecha", "Fecha inválida: %q (use YYYY-MM-DD)", req.Fecha)
	}
	hora, err := normalizeHora("hora", &req.Hora)
	if err != nil {
		return nil, err
	}

	reg := &model.RegistroCambio{
		Fecha:     fecha,
		Hora:      *hora,
		Motivo:    req.Motivo,
		IDPersona: req.IDPersona,
		IDTutor:   req.IDTutor,
	}
	if err := s.repo.Registro.Create(ctx, reg); err != nil {
		return nil, dbError(s.logger, "crear registro falló", err)
	}
	return toRegistroResponse(reg), nil
}

func (s *registroService) GetByID(ctx context.Context, id int64) (*dto.RegistroResponse, error) {
	reg, err := s.repo.Registro.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrRegistroNotFound, "consultar registro falló", zap.Int64("id", id))
	}
	return toRegistroResponse(reg), nil
}

func (s *registroService) List(ctx context.Context, q *dto.RegistroListQuery) ([]dto.RegistroResponse, error) {
	list, err := s.repo.Registro.List(ctx, q.IDTutor, q.GetLimit(LimitRegistros))
	if err != nil {
		return nil, dbError(s.logger, "listar registros falló", err)
	}
	result := make([]dto.RegistroResponse, 0, len(list))
	for i := range list {
		result = append(result, *toRegistroResponse(&list[i]))
	}
	return result, nil
}

// ── helpers ──

// parseJornada fecha y horas de entrada/salida; la salida, si hay ambas, debe ser posterior
func parseJornada(fechaStr string, entradaStr, salidaStr *string) (time.Time, *string, *string, error) {
	fecha, err := model.ParseFecha(fechaStr)
	if err != nil {
		return time.Time{}, nil, nil, apperrors.NewValidation("fecha", "Fecha inválida: %q (use YYYY-MM-DD)", fechaStr)
	}
	entrada, err := normalizeHora("hora_entrada", entradaStr)
	if err != nil {
		return time.Time{}, nil, nil, err
	}
	salida, err := normalizeHora("hora_salida", salidaStr)
	if err != nil {
		return time.Time{}, nil, nil, err
	}
	if entrada != nil && salida != nil && *salida <= *entrada {
		return time.Time{}, nil, nil, apperrors.NewValidation("hora_salida",
			"La hora de salida debe ser posterior a la hora de entrada")
	}
	return fecha, entrada, salida, nil
}

// normalizeHora HH:MM(:SS) a HH:MM; nil se devuelve como nil
func normalizeHora(field string, s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	seg, err := ParseHora(*s)
	if err != nil {
		return nil, apperrors.NewValidation(field, "Hora inválida: %q (use HH:MM)", *s)
	}
	h := FormatHora(seg)
	return &h, nil
}

func asistenciaFilter(q *dto.AsistenciaListQuery) (repository.AsistenciaFilter, error) {
	filter := repository.AsistenciaFilter{IDAula: q.IDAula, Limit: q.GetLimit(LimitAsistencias)}
	if q.Fecha != "" {
		fecha, err := model.ParseFecha(q.Fecha)
		if err != nil {
			return filter, apperrors.NewValidation("fecha", "Fecha inválida: %q (use YYYY-MM-DD)", q.Fecha)
		}
		filter.Fecha = &fecha
	}
	return filter, nil
}

func toAsistenciaTutorResponse(a *model.AsistenciaTutor) *dto.AsistenciaTutorResponse {
	return &dto.AsistenciaTutorResponse{
		IDAsistencia: a.IDAsistencia,
		IDTutor:      a.IDTutor,
		IDAula:       a.IDAula,
		Fecha:        model.FormatFecha(a.Fecha),
		HoraEntrada:  a.HoraEntrada,
		HoraSalida:   a.HoraSalida,
		Dictada:      a.Dictada,
		IDMotivo:     a.IDMotivo,
	}
}

func toAsistenciaEstudianteResponse(a *model.AsistenciaEstudiante) *dto.AsistenciaEstudianteResponse {
	return &dto.AsistenciaEstudianteResponse{
		IDAsistencia: a.IDAsistencia,
		IDEstudiante: a.IDEstudiante,
		IDAula:       a.IDAula,
		Fecha:        model.FormatFecha(a.Fecha),
		HoraEntrada:  a.HoraEntrada,
		HoraSalida:   a.HoraSalida,
		Asistio:      a.Asistio,
		IDMotivo:     a.IDMotivo,
	}
}

func toRegistroResponse(reg *model.RegistroCambio) *dto.RegistroResponse {
	return &dto.RegistroResponse{
		IDRegistro: reg.IDRegistro,
		Fecha:      model.FormatFecha(reg.Fecha),
		Hora:       reg.Hora,
		Motivo:     reg.Motivo,
		IDPersona:  reg.IDPersona,
		IDTutor:    reg.IDTutor,
	}
}
