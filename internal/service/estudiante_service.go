package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

var (
	ErrEstudianteNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Estudiante no encontrado")
)

// EstudianteService operaciones sobre estudiantes
type EstudianteService interface {
	Create(ctx context.Context, req *dto.CreateEstudianteRequest) (*dto.EstudianteResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.EstudianteResponse, error)
	List(ctx context.Context, q *dto.EstudianteListQuery) ([]dto.EstudianteResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEstudianteRequest) (*dto.EstudianteResponse, error)
	Delete(ctx context.Context, id int64, force bool) error
}

type estudianteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEstudianteService crea EstudianteService
func NewEstudianteService(repo *repository.Repository, logger *zap.Logger) EstudianteService {
	return &estudianteService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *estudianteService) Create(ctx context.Context, req *dto.CreateEstudianteRequest) (*dto.EstudianteResponse, error) {
	aula, err := s.aulaDestino(ctx, req.IDAula)
	if err != nil {
		return nil, err
	}
	if aula.IDSede != req.IDSede || aula.IDInstitucion != req.IDInstitucion {
		return nil, apperrors.NewValidation("id_aula",
			"El aula %d no pertenece a la sede %d de la institución %d", req.IDAula, req.IDSede, req.IDInstitucion)
	}

	e := &model.Estudiante{
		IDEstudiante:  req.IDEstudiante,
		TipoDocumento: req.TipoDocumento,
		Nombre:        req.Nombre,
		Grado:         req.Grado,
		ScoreInicial:  req.ScoreInicial,
		ScoreFinal:    req.ScoreFinal,
		IDAula:        req.IDAula,
		IDSede:        req.IDSede,
		IDInstitucion: req.IDInstitucion,
	}
	if err := s.repo.Estudiante.Create(ctx, e); err != nil {
		return nil, dbError(s.logger, "crear estudiante falló", err, zap.Int64("id_estudiante", req.IDEstudiante))
	}
	return toEstudianteResponse(e), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *estudianteService) GetByID(ctx context.Context, id int64) (*dto.EstudianteResponse, error) {
	e, err := s.repo.Estudiante.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrEstudianteNotFound, "consultar estudiante falló", zap.Int64("id", id))
	}
	return toEstudianteResponse(e), nil
}

// ────────────────────── List ──────────────────────

func (s *estudianteService) List(ctx context.Context, q *dto.EstudianteListQuery) ([]dto.EstudianteResponse, error) {
	list, err := s.repo.Estudiante.List(ctx, q.IDAula, q.GetLimit(LimitEstudiantes))
	if err != nil {
		return nil, dbError(s.logger, "listar estudiantes falló", err)
	}
	result := make([]dto.EstudianteResponse, 0, len(list))
	for i := range list {
		result = append(result, *toEstudianteResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *estudianteService) Update(ctx context.Context, id int64, req *dto.UpdateEstudianteRequest) (*dto.EstudianteResponse, error) {
	set := repository.NewEstudianteUpdate()
	repository.SetIfPresent(set, "tipo_documento", req.TipoDocumento)
	repository.SetIfPresent(set, "nombre", req.Nombre)
	repository.SetIfPresent(set, "grado", req.Grado)
	repository.SetIfPresent(set, "score_inicial", req.ScoreInicial)
	repository.SetIfPresent(set, "score_final", req.ScoreFinal)

	// al cambiar de aula, sede e institución se toman de la nueva aula
	if req.IDAula != nil {
		aula, err := s.aulaDestino(ctx, *req.IDAula)
		if err != nil {
			return nil, err
		}
		set.Set("id_aula", aula.IDAula).
			Set("id_sede", aula.IDSede).
			Set("id_institucion", aula.IDInstitucion)
	}
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}

	if err := s.repo.Estudiante.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrEstudianteNotFound, "actualizar estudiante falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *estudianteService) Delete(ctx context.Context, id int64, force bool) error {
	if _, err := s.repo.Estudiante.GetByID(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrEstudianteNotFound, "consultar estudiante falló", zap.Int64("id", id))
	}

	if !force {
		refs, err := s.repo.Estudiante.CountReferencias(ctx, id)
		if err != nil {
			return dbError(s.logger, "contar referencias del estudiante falló", err, zap.Int64("id", id))
		}
		if refs.Total() > 0 {
			return apperrors.Wrap(apperrors.ErrConflict, fmt.Sprintf(
				"No se puede eliminar el estudiante: tiene %d nota(s) y %d asistencia(s). Use force=true para eliminarlo junto con sus dependencias.",
				refs.Notas, refs.Asistencias))
		}
		if err := s.repo.Estudiante.Delete(ctx, id); err != nil {
			return notFoundOr(s.logger, err, ErrEstudianteNotFound, "eliminar estudiante falló", zap.Int64("id", id))
		}
		return nil
	}

	return s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if _, err := txRepo.Nota.DeleteByEstudiante(ctx, id); err != nil {
			return dbError(s.logger, "eliminar notas del estudiante falló", err, zap.Int64("id", id))
		}
		if _, err := txRepo.Asistencia.DeleteEstudianteByEstudiante(ctx, id); err != nil {
			return dbError(s.logger, "eliminar asistencias del estudiante falló", err, zap.Int64("id", id))
		}
		if err := txRepo.Estudiante.Delete(ctx, id); err != nil {
			return notFoundOr(s.logger, err, ErrEstudianteNotFound, "eliminar estudiante falló", zap.Int64("id", id))
		}
		return nil
	})
}

// ── helpers ──

func (s *estudianteService) aulaDestino(ctx context.Context, idAula int64) (*model.Aula, error) {
	aula, err := s.repo.Aula.GetByID(ctx, idAula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidation("id_aula", "El aula %d no existe", idAula)
		}
		return nil, dbError(s.logger, "consultar aula falló", err)
	}
	return aula, nil
}

func toEstudianteResponse(e *model.Estudiante) *dto.EstudianteResponse {
	return &dto.EstudianteResponse{
		IDEstudiante:  e.IDEstudiante,
		TipoDocumento: e.TipoDocumento,
		Nombre:        e.Nombre,
		Grado:         e.Grado,
		ScoreInicial:  e.ScoreInicial,
		ScoreFinal:    e.ScoreFinal,
		IDAula:        e.IDAula,
		IDSede:        e.IDSede,
		IDInstitucion: e.IDInstitucion,
	}
}
