package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/jwt"
)

var (
	ErrInvalidCredentials = apperrors.Wrap(apperrors.ErrUnauthorized, "Usuario o contraseña incorrectos")
)

// TokenBlacklist destino de los tokens revocados (pkg/redis.Client lo implementa)
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService login, logout y sesión actual
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revoca el token hasta su expiración; sin blacklist no hace nada
	Logout(ctx context.Context, jti string, exp time.Time) error
	Me(ctx context.Context, personaID int64) (*dto.PersonaResponse, error)
}

type authService struct {
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService crea AuthService. blacklist puede ser nil cuando Redis no está configurado.
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. persona + usuario por correo
	cred, err := s.repo.Persona.GetCredencial(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, dbError(s.logger, "consultar credenciales falló", err)
	}

	// 2. contraseña: bcrypt o texto plano según lo guardado
	if !checkPassword(cred.Contrasena, req.Password) {
		s.logger.Info("login rechazado", zap.Int64("id_persona", cred.IDPersona))
		return nil, ErrInvalidCredentials
	}

	// 3. token
	token, err := s.jwtMgr.GenerateToken(cred.IDPersona, cred.Nombre)
	if err != nil {
		s.logger.Error("generar token falló", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwtMgr.TTL().Seconds()),
		Nombre:      cred.Nombre,
		Correo:      cred.Correo,
		Rol:         cred.Rol,
		IDPersona:   cred.IDPersona,
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, exp time.Time) error {
	if s.blacklist == nil || jti == "" {
		return nil
	}
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.BlacklistToken(ctx, jti, ttl); err != nil {
		s.logger.Warn("revocar token falló", zap.String("jti", jti), zap.Error(err))
		return apperrors.Wrap(apperrors.ErrUnavailable, "No se pudo cerrar la sesión")
	}
	return nil
}

func (s *authService) Me(ctx context.Context, personaID int64) (*dto.PersonaResponse, error) {
	p, err := s.repo.Persona.GetByID(ctx, personaID)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrPersonaNotFound, "consultar persona falló", zap.Int64("id", personaID))
	}
	return toPersonaResponse(p), nil
}
