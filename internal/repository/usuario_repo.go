package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// UsuarioRepository credenciales de acceso, 1:1 con persona
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	GetByID(ctx context.Context, idPersona int64) (*model.Usuario, error)
	UpdateContrasena(ctx context.Context, idPersona int64, contrasena string) error
	Delete(ctx context.Context, idPersona int64) error
}

type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo crea la implementación gorm
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Omit("Persona").Create(u).Error
}

func (r *usuarioRepo) GetByID(ctx context.Context, idPersona int64) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Persona").
		Where("id_persona = ?", idPersona).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) UpdateContrasena(ctx context.Context, idPersona int64, contrasena string) error {
	set := NewUpdateSet("contrasena").Set("contrasena", contrasena)
	return updateByID(ctx, r.db, &model.Usuario{}, "id_persona", idPersona, set)
}

func (r *usuarioRepo) Delete(ctx context.Context, idPersona int64) error {
	return deleteByID(ctx, r.db, &model.Usuario{}, "id_persona", idPersona)
}
