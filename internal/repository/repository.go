package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository punto de entrada que agrupa todos los repositorios
type Repository struct {
	db *gorm.DB

	Institucion InstitucionRepository
	Sede        SedeRepository
	Programa    ProgramaRepository
	Aula        AulaRepository
	Persona     PersonaRepository
	Usuario     UsuarioRepository
	Tutor       TutorRepository
	Estudiante  EstudianteRepository
	Horario     HorarioRepository
	Periodo     PeriodoRepository
	Componente  ComponenteRepository
	Nota        NotaRepository
	Motivo      MotivoRepository
	Asistencia  AsistenciaRepository
	Registro    RegistroRepository
}

// NewRepository crea el agregado sobre db (conexión del pool o transacción)
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		Institucion: NewInstitucionRepo(db),
		Sede:        NewSedeRepo(db),
		Programa:    NewProgramaRepo(db),
		Aula:        NewAulaRepo(db),
		Persona:     NewPersonaRepo(db),
		Usuario:     NewUsuarioRepo(db),
		Tutor:       NewTutorRepo(db),
		Estudiante:  NewEstudianteRepo(db),
		Horario:     NewHorarioRepo(db),
		Periodo:     NewPeriodoRepo(db),
		Componente:  NewComponenteRepo(db),
		Nota:        NewNotaRepo(db),
		Motivo:      NewMotivoRepo(db),
		Asistencia:  NewAsistenciaRepo(db),
		Registro:    NewRegistroRepo(db),
	}
}

// BeginTx abre una transacción. El llamador hace Commit o Rollback.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx agregado cuyos repositorios operan sobre tx
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction ejecuta fn dentro de una transacción; cualquier error la revierte.
// Sin conexión (agregados armados a mano en tests) fn recibe el mismo agregado.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// ── helpers comunes ──

// updateByID aplica set sobre la fila pk = id; sin filas afectadas devuelve gorm.ErrRecordNotFound
func updateByID(ctx context.Context, db *gorm.DB, table interface{}, pk string, id int64, set *UpdateSet) error {
	values, err := set.Values()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Model(table).Where(pk+" = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteByID borra la fila pk = id; sin filas afectadas devuelve gorm.ErrRecordNotFound
func deleteByID(ctx context.Context, db *gorm.DB, table interface{}, pk string, id int64) error {
	res := db.WithContext(ctx).Where(pk+" = ?", id).Delete(table)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func countWhere(ctx context.Context, db *gorm.DB, table interface{}, query string, args ...interface{}) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(table).Where(query, args...).Count(&n).Error
	return n, err
}
