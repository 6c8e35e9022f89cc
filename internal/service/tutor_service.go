package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// ── errores del módulo tutor ──

var (
	ErrTutorNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Tutor no encontrado")
)

// TutorService operaciones sobre tutores
type TutorService interface {
	Create(ctx context.Context, req *dto.CreateTutorRequest) (*dto.TutorResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TutorResponse, error)
	List(ctx context.Context, limit int) ([]dto.TutorResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTutorRequest) (*dto.TutorResponse, error)
	// Delete sin force falla con conflicto si algo apunta al tutor
	Delete(ctx context.Context, id int64, force bool) error

	Asignar(ctx context.Context, req *dto.AsignarTutorAulaRequest) (*dto.AsignacionResponse, error)
	ListAulas(ctx context.Context, id int64) ([]dto.AulaResponse, error)
}

type tutorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTutorService crea TutorService
func NewTutorService(repo *repository.Repository, logger *zap.Logger) TutorService {
	return &tutorService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *tutorService) Create(ctx context.Context, req *dto.CreateTutorRequest) (*dto.TutorResponse, error) {
	if req.IDPersona != nil {
		if err := s.checkPersona(ctx, *req.IDPersona); err != nil {
			return nil, err
		}
	}
	fecha, err := parseFechaOpcional("fecha_contrato", req.FechaContrato)
	if err != nil {
		return nil, err
	}

	t := &model.Tutor{IDPersona: req.IDPersona, FechaContrato: fecha}
	if err := s.repo.Tutor.Create(ctx, t); err != nil {
		return nil, dbError(s.logger, "crear tutor falló", err)
	}
	return s.GetByID(ctx, t.IDTutor)
}

// ────────────────────── GetByID ──────────────────────

func (s *tutorService) GetByID(ctx context.Context, id int64) (*dto.TutorResponse, error) {
	t, err := s.repo.Tutor.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrTutorNotFound, "consultar tutor falló", zap.Int64("id", id))
	}
	return toTutorResponse(t), nil
}

// ────────────────────── List ──────────────────────

func (s *tutorService) List(ctx context.Context, limit int) ([]dto.TutorResponse, error) {
	if limit <= 0 {
		limit = LimitTutores
	}
	list, err := s.repo.Tutor.List(ctx, limit)
	if err != nil {
		return nil, dbError(s.logger, "listar tutores falló", err)
	}
	result := make([]dto.TutorResponse, 0, len(list))
	for i := range list {
		result = append(result, *toTutorResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *tutorService) Update(ctx context.Context, id int64, req *dto.UpdateTutorRequest) (*dto.TutorResponse, error) {
	set := repository.NewTutorUpdate()
	if req.IDPersona != nil {
		if err := s.checkPersona(ctx, *req.IDPersona); err != nil {
			return nil, err
		}
		set.Set("id_persona", *req.IDPersona)
	}
	if req.FechaContrato != nil {
		fecha, err := parseFechaOpcional("fecha_contrato", req.FechaContrato)
		if err != nil {
			return nil, err
		}
		set.Set("fecha_contrato", *fecha)
	}
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}

	if err := s.repo.Tutor.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrTutorNotFound, "actualizar tutor falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *tutorService) Delete(ctx context.Context, id int64, force bool) error {
	if _, err := s.repo.Tutor.GetByID(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrTutorNotFound, "consultar tutor falló", zap.Int64("id", id))
	}

	if !force {
		refs, err := s.repo.Tutor.CountReferencias(ctx, id)
		if err != nil {
			return dbError(s.logger, "contar referencias del tutor falló", err, zap.Int64("id", id))
		}
		if refs.Total() > 0 {
			return apperrors.Wrap(apperrors.ErrConflict, fmt.Sprintf(
				"No se puede eliminar el tutor: tiene %d aula(s), %d asistencia(s), %d asignación(es) y %d registro(s). Use force=true para eliminarlo junto con sus dependencias.",
				refs.Aulas, refs.Asistencias, refs.Asignaciones, refs.Registros))
		}
		if err := s.repo.Tutor.Delete(ctx, id); err != nil {
			return notFoundOr(s.logger, err, ErrTutorNotFound, "eliminar tutor falló", zap.Int64("id", id))
		}
		return nil
	}

	// force: dependencias y tutor en una sola transacción
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if _, err := txRepo.Asistencia.DeleteTutorByTutor(ctx, id); err != nil {
			return dbError(s.logger, "eliminar asistencias del tutor falló", err, zap.Int64("id", id))
		}
		if _, err := txRepo.Tutor.DeleteAsignacionesByTutor(ctx, id); err != nil {
			return dbError(s.logger, "eliminar asignaciones del tutor falló", err, zap.Int64("id", id))
		}
		if _, err := txRepo.Registro.DeleteByTutor(ctx, id); err != nil {
			return dbError(s.logger, "eliminar registros del tutor falló", err, zap.Int64("id", id))
		}
		liberadas, err := txRepo.Aula.ClearTutor(ctx, id)
		if err != nil {
			return dbError(s.logger, "liberar aulas del tutor falló", err, zap.Int64("id", id))
		}
		if err := txRepo.Tutor.Delete(ctx, id); err != nil {
			return notFoundOr(s.logger, err, ErrTutorNotFound, "eliminar tutor falló", zap.Int64("id", id))
		}
		s.logger.Info("tutor eliminado con dependencias", zap.Int64("id", id), zap.Int64("aulas_liberadas", liberadas))
		return nil
	})
	return err
}

// ────────────────────── Asignar ──────────────────────

// Asignar registra la asignación en el histórico y deja al tutor como tutor actual del aula
func (s *tutorService) Asignar(ctx context.Context, req *dto.AsignarTutorAulaRequest) (*dto.AsignacionResponse, error) {
	inicio, err := parseFechaOpcional("fecha_inicio", req.FechaInicio)
	if err != nil {
		return nil, err
	}
	fin, err := parseFechaOpcional("fecha_fin", req.FechaFin)
	if err != nil {
		return nil, err
	}
	if inicio != nil && fin != nil && fin.Before(*inicio) {
		return nil, apperrors.NewValidation("fecha_fin", "La fecha de fin no puede ser anterior a la fecha de inicio")
	}

	a := &model.AsignacionTutorAula{
		IDTutor:     req.IDTutor,
		IDAula:      req.IDAula,
		FechaInicio: inicio,
		FechaFin:    fin,
	}
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := checkTutorWith(ctx, txRepo, s.logger, req.IDTutor); err != nil {
			return err
		}
		if _, err := txRepo.Aula.GetByID(ctx, req.IDAula); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewValidation("id_aula", "El aula %d no existe", req.IDAula)
			}
			return dbError(s.logger, "consultar aula falló", err)
		}

		if err := txRepo.Tutor.CreateAsignacion(ctx, a); err != nil {
			return dbError(s.logger, "crear asignación falló", err)
		}
		set := repository.NewAulaUpdate().Set("id_tutor", req.IDTutor)
		if err := txRepo.Aula.Update(ctx, req.IDAula, set); err != nil {
			return notFoundOr(s.logger, err, ErrAulaNotFound, "asignar tutor al aula falló", zap.Int64("id_aula", req.IDAula))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.AsignacionResponse{
		IDAsignacion: a.IDAsignacion,
		IDTutor:      a.IDTutor,
		IDAula:       a.IDAula,
		FechaInicio:  model.FormatFechaPtr(a.FechaInicio),
		FechaFin:     model.FormatFechaPtr(a.FechaFin),
	}, nil
}

// ────────────────────── ListAulas ──────────────────────

func (s *tutorService) ListAulas(ctx context.Context, id int64) ([]dto.AulaResponse, error) {
	if _, err := s.repo.Tutor.GetByID(ctx, id); err != nil {
		return nil, notFoundOr(s.logger, err, ErrTutorNotFound, "consultar tutor falló", zap.Int64("id", id))
	}
	list, err := s.repo.Aula.List(ctx, repository.AulaFilter{IDTutor: &id, Limit: LimitAulas})
	if err != nil {
		return nil, dbError(s.logger, "listar aulas del tutor falló", err, zap.Int64("id", id))
	}
	return toAulaResponses(list), nil
}

// ── helpers ──

func (s *tutorService) checkPersona(ctx context.Context, id int64) error {
	if _, err := s.repo.Persona.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidation("id_persona", "La persona %d no existe", id)
		}
		return dbError(s.logger, "consultar persona falló", err)
	}
	return nil
}

// parseFechaOpcional YYYY-MM-DD; nil se devuelve como nil
func parseFechaOpcional(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := model.ParseFecha(*s)
	if err != nil {
		return nil, apperrors.NewValidation(field, "Fecha inválida: %q (use YYYY-MM-DD)", *s)
	}
	return &t, nil
}

func toTutorResponse(t *model.Tutor) *dto.TutorResponse {
	resp := &dto.TutorResponse{
		IDTutor:       t.IDTutor,
		IDPersona:     t.IDPersona,
		FechaContrato: model.FormatFechaPtr(t.FechaContrato),
	}
	if t.Persona != nil {
		resp.Nombre = &t.Persona.Nombre
		resp.Correo = t.Persona.Correo
	}
	return resp
}
