package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/config"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// ── errores de personas y usuarios ──

var (
	ErrPersonaNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Persona no encontrada")
	ErrUsuarioNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Usuario no encontrado")
	ErrUsuarioExiste   = apperrors.Wrap(apperrors.ErrIntegrity, "La persona ya tiene usuario")
)

// PersonaService operaciones sobre personas
type PersonaService interface {
	Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PersonaResponse, error)
	List(ctx context.Context, limit int) ([]dto.PersonaResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePersonaRequest) (*dto.PersonaResponse, error)
	Delete(ctx context.Context, id int64) error
}

type personaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPersonaService crea PersonaService
func NewPersonaService(repo *repository.Repository, logger *zap.Logger) PersonaService {
	return &personaService{repo: repo, logger: logger}
}

func (s *personaService) Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error) {
	p := &model.Persona{
		Nombre:          req.Nombre,
		TipoDocumento:   req.TipoDocumento,
		NumeroDocumento: req.NumeroDocumento,
		Correo:          normalizeCorreo(req.Correo),
		Rol:             req.Rol,
	}
	if err := s.repo.Persona.Create(ctx, p); err != nil {
		return nil, dbError(s.logger, "crear persona falló", err)
	}
	return toPersonaResponse(p), nil
}

func (s *personaService) GetByID(ctx context.Context, id int64) (*dto.PersonaResponse, error) {
	p, err := s.repo.Persona.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrPersonaNotFound, "consultar persona falló", zap.Int64("id", id))
	}
	return toPersonaResponse(p), nil
}

func (s *personaService) List(ctx context.Context, limit int) ([]dto.PersonaResponse, error) {
	if limit <= 0 {
		limit = LimitPersonas
	}
	list, err := s.repo.Persona.List(ctx, limit)
	if err != nil {
		return nil, dbError(s.logger, "listar personas falló", err)
	}
	result := make([]dto.PersonaResponse, 0, len(list))
	for i := range list {
		result = append(result, *toPersonaResponse(&list[i]))
	}
	return result, nil
}

func (s *personaService) Update(ctx context.Context, id int64, req *dto.UpdatePersonaRequest) (*dto.PersonaResponse, error) {
	set := repository.NewPersonaUpdate()
	repository.SetIfPresent(set, "nombre", req.Nombre)
	repository.SetIfPresent(set, "tipo_documento", req.TipoDocumento)
	repository.SetIfPresent(set, "numero_documento", req.NumeroDocumento)
	repository.SetIfPresent(set, "correo", normalizeCorreo(req.Correo))
	repository.SetIfPresent(set, "rol", req.Rol)
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}

	if err := s.repo.Persona.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrPersonaNotFound, "actualizar persona falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

func (s *personaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Persona.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrPersonaNotFound, "eliminar persona falló", zap.Int64("id", id))
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Usuarios
// ═══════════════════════════════════════════════════════════

// UsuarioService credenciales de acceso
type UsuarioService interface {
	Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error)
	GetByID(ctx context.Context, idPersona int64) (*dto.UsuarioResponse, error)
	UpdateContrasena(ctx context.Context, idPersona int64, req *dto.UpdateUsuarioRequest) error
	Delete(ctx context.Context, idPersona int64) error
}

type usuarioService struct {
	repo   *repository.Repository
	cfg    *config.AuthConfig
	logger *zap.Logger
}

// NewUsuarioService crea UsuarioService
func NewUsuarioService(repo *repository.Repository, cfg *config.AuthConfig, logger *zap.Logger) UsuarioService {
	return &usuarioService{repo: repo, cfg: cfg, logger: logger}
}

func (s *usuarioService) Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	persona, err := s.repo.Persona.GetByID(ctx, req.IDPersona)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidation("id_persona", "La persona %d no existe", req.IDPersona)
		}
		return nil, dbError(s.logger, "consultar persona falló", err)
	}

	if _, err := s.repo.Usuario.GetByID(ctx, req.IDPersona); err == nil {
		return nil, ErrUsuarioExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dbError(s.logger, "consultar usuario falló", err)
	}

	stored, err := hashPassword(req.Contrasena, s.cfg.HashPasswords)
	if err != nil {
		s.logger.Error("hash de contraseña falló", zap.Error(err))
		return nil, err
	}

	u := &model.Usuario{IDPersona: req.IDPersona, Contrasena: stored}
	if err := s.repo.Usuario.Create(ctx, u); err != nil {
		return nil, dbError(s.logger, "crear usuario falló", err, zap.Int64("id_persona", req.IDPersona))
	}

	s.logger.Info("usuario creado", zap.Int64("id_persona", req.IDPersona), zap.Bool("bcrypt", s.cfg.HashPasswords))
	u.Persona = persona
	return toUsuarioResponse(u), nil
}

func (s *usuarioService) GetByID(ctx context.Context, idPersona int64) (*dto.UsuarioResponse, error) {
	u, err := s.repo.Usuario.GetByID(ctx, idPersona)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrUsuarioNotFound, "consultar usuario falló", zap.Int64("id", idPersona))
	}
	return toUsuarioResponse(u), nil
}

func (s *usuarioService) UpdateContrasena(ctx context.Context, idPersona int64, req *dto.UpdateUsuarioRequest) error {
	stored, err := hashPassword(req.Contrasena, s.cfg.HashPasswords)
	if err != nil {
		s.logger.Error("hash de contraseña falló", zap.Error(err))
		return err
	}
	if err := s.repo.Usuario.UpdateContrasena(ctx, idPersona, stored); err != nil {
		return notFoundOr(s.logger, err, ErrUsuarioNotFound, "actualizar contraseña falló", zap.Int64("id", idPersona))
	}
	return nil
}

func (s *usuarioService) Delete(ctx context.Context, idPersona int64) error {
	if err := s.repo.Usuario.Delete(ctx, idPersona); err != nil {
		return notFoundOr(s.logger, err, ErrUsuarioNotFound, "eliminar usuario falló", zap.Int64("id", idPersona))
	}
	return nil
}

// ── helpers ──

// normalizeCorreo recorta espacios; el login compara sin distinguir mayúsculas
func normalizeCorreo(correo *string) *string {
	if correo == nil {
		return nil
	}
	c := strings.TrimSpace(*correo)
	return &c
}

func toPersonaResponse(p *model.Persona) *dto.PersonaResponse {
	return &dto.PersonaResponse{
		IDPersona:       p.IDPersona,
		Nombre:          p.Nombre,
		TipoDocumento:   p.TipoDocumento,
		NumeroDocumento: p.NumeroDocumento,
		Correo:          p.Correo,
		Rol:             p.Rol,
	}
}

func toUsuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	resp := &dto.UsuarioResponse{IDPersona: u.IDPersona}
	if u.Persona != nil {
		resp.Nombre = u.Persona.Nombre
		resp.Correo = u.Persona.Correo
		resp.Rol = u.Persona.Rol
	}
	return resp
}
