package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/api/handler"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/response"
)

// RateChecker ventana deslizante compartida (Redis)
type RateChecker interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit limita las peticiones por IP y ruta: limit peticiones por window.
// Usa Redis cuando está disponible; si rdb es nil o Redis falla, aplica un
// token bucket en memoria con la misma tasa.
func RateLimit(rdb RateChecker, limit int, window time.Duration) gin.HandlerFunc {
	local := newLocalLimiter(limit, window)

	return func(c *gin.Context) {
		if limit <= 0 || window <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())

		allowed := false
		checked := false
		if rdb != nil {
			ok, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
			if err == nil {
				allowed, checked = ok, true
			}
		}
		if !checked {
			allowed = local.allow(key)
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, handler.CodeTooMany,
				"Demasiadas solicitudes, intente de nuevo más tarde")
			c.Abort()
			return
		}

		c.Next()
	}
}

// localLimiter un rate.Limiter por clave. Las claves sin uso durante una
// ventana completa se descartan: su bucket ya estaría lleno de nuevo.
type localLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type limiterEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLocalLimiter(limit int, window time.Duration) *localLimiter {
	l := &localLimiter{
		limiters: make(map[string]*limiterEntry),
		burst:    limit,
		idle:     window,
		now:      time.Now,
	}
	if limit > 0 && window > 0 {
		l.every = rate.Every(window / time.Duration(limit))
	}
	l.lastSweep = l.now()
	return l
}

func (l *localLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	e, ok := l.limiters[key]
	if !ok {
		e = &limiterEntry{lim: rate.NewLimiter(l.every, l.burst)}
		l.limiters[key] = e
	}
	e.seen = now
	l.mu.Unlock()

	return e.lim.AllowN(now, 1)
}

// sweep descarta las claves inactivas; requiere l.mu
func (l *localLimiter) sweep(now time.Time) {
	for k, e := range l.limiters {
		if now.Sub(e.seen) >= l.idle {
			delete(l.limiters, k)
		}
	}
	l.lastSweep = now
}
