package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// PersonaRepository acceso a datos de personas
type PersonaRepository interface {
	Create(ctx context.Context, p *model.Persona) error
	GetByID(ctx context.Context, id int64) (*model.Persona, error)
	List(ctx context.Context, limit int) ([]model.Persona, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
	// GetCredencial persona + usuario por correo, sin distinguir mayúsculas
	GetCredencial(ctx context.Context, correo string) (*model.Credencial, error)
}

// NewPersonaUpdate columnas actualizables de persona
func NewPersonaUpdate() *UpdateSet {
	return NewUpdateSet("nombre", "tipo_documento", "numero_documento", "correo", "rol")
}

type personaRepo struct {
	db *gorm.DB
}

// NewPersonaRepo crea la implementación gorm
func NewPersonaRepo(db *gorm.DB) PersonaRepository {
	return &personaRepo{db: db}
}

func (r *personaRepo) Create(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personaRepo) GetByID(ctx context.Context, id int64) (*model.Persona, error) {
	var p model.Persona
	if err := r.db.WithContext(ctx).Where("id_persona = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personaRepo) List(ctx context.Context, limit int) ([]model.Persona, error) {
	var list []model.Persona
	err := r.db.WithContext(ctx).Order("id_persona DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *personaRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Persona{}, "id_persona", id, set)
}

func (r *personaRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Persona{}, "id_persona", id)
}

func (r *personaRepo) GetCredencial(ctx context.Context, correo string) (*model.Credencial, error) {
	var cred model.Credencial
	res := r.db.WithContext(ctx).
		Table("persona AS p").
		Select("p.id_persona, p.nombre, p.correo, p.rol, u.contrasena").
		Joins("JOIN usuario u ON u.id_persona = p.id_persona").
		Where("LOWER(p.correo) = LOWER(?)", correo).
		Limit(1).
		Scan(&cred)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &cred, nil
}
