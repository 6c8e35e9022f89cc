package dto

// ── parámetros comunes ──

// LimitQuery ?limit= de los listados; 0 usa el valor por defecto de cada recurso
type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// GetLimit límite efectivo
func (q *LimitQuery) GetLimit(def int) int {
	if q.Limit <= 0 {
		return def
	}
	return q.Limit
}

// DeleteQuery ?force=true en los borrados que lo admiten
type DeleteQuery struct {
	Force bool `form:"force"`
}
