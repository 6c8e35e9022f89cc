package repository

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyUpdate no hay columnas que actualizar
var ErrEmptyUpdate = errors.New("no hay campos para actualizar")

// UpdateSet conjunto disperso de columnas a actualizar.
// Solo acepta columnas de la lista blanca fijada al construirlo; los nombres
// de columna nunca provienen de la petición, solo los valores.
type UpdateSet struct {
	allowed map[string]struct{}
	values  map[string]interface{}
	err     error
}

// NewUpdateSet crea un conjunto vacío que admite las columnas indicadas
func NewUpdateSet(columns ...string) *UpdateSet {
	allowed := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		allowed[c] = struct{}{}
	}
	return &UpdateSet{
		allowed: allowed,
		values:  make(map[string]interface{}),
	}
}

// Set fija column = value. Una columna fuera de la lista blanca deja el conjunto en error.
func (u *UpdateSet) Set(column string, value interface{}) *UpdateSet {
	if _, ok := u.allowed[column]; !ok {
		if u.err == nil {
			u.err = fmt.Errorf("columna %q no actualizable", column)
		}
		return u
	}
	u.values[column] = value
	return u
}

// SetIfPresent fija column = *v cuando v no es nil
func SetIfPresent[T any](u *UpdateSet, column string, v *T) *UpdateSet {
	if v == nil {
		return u
	}
	return u.Set(column, *v)
}

// Has indica si column está en el conjunto
func (u *UpdateSet) Has(column string) bool {
	_, ok := u.values[column]
	return ok
}

// Get valor asignado a column
func (u *UpdateSet) Get(column string) (interface{}, bool) {
	v, ok := u.values[column]
	return v, ok
}

// Empty true si no se asignó ninguna columna
func (u *UpdateSet) Empty() bool {
	return len(u.values) == 0
}

// Columns columnas asignadas, ordenadas
func (u *UpdateSet) Columns() []string {
	cols := make([]string, 0, len(u.values))
	for c := range u.values {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Values copia del mapa columna -> valor listo para gorm Updates
func (u *UpdateSet) Values() (map[string]interface{}, error) {
	if u.err != nil {
		return nil, u.err
	}
	if len(u.values) == 0 {
		return nil, ErrEmptyUpdate
	}
	out := make(map[string]interface{}, len(u.values))
	for k, v := range u.values {
		out[k] = v
	}
	return out, nil
}
