// Package notification mantiene en caché el contador de notificaciones sin leer.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPollInterval intervalo de refresco si no se configura otro.
const DefaultPollInterval = 30 * time.Second

// UnreadSource devuelve el número actual de notificaciones sin leer.
type UnreadSource interface {
	UnreadCount(ctx context.Context) (int64, error)
}

// UnreadCounter consulta la fuente periódicamente y guarda el último valor leído.
// Ciclo de vida: Start → (Value/LastError) → Stop. Un error de consulta conserva el valor anterior.
type UnreadCounter struct {
	src      UnreadSource
	interval time.Duration
	log      zerolog.Logger
	onChange func(int64)

	mu        sync.RWMutex
	value     int64
	lastErr   error
	updatedAt time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewUnreadCounter construye el contador. interval <= 0 usa DefaultPollInterval.
func NewUnreadCounter(src UnreadSource, interval time.Duration, log zerolog.Logger) *UnreadCounter {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &UnreadCounter{src: src, interval: interval, log: log}
}

// OnChange registra un callback invocado cuando el valor cambia. Llamar antes de Start.
func (c *UnreadCounter) OnChange(fn func(int64)) {
	c.onChange = fn
}

// Start hace una primera consulta y lanza el sondeo en segundo plano. Llamadas repetidas no hacen nada.
func (c *UnreadCounter) Start(ctx context.Context) {
	c.mu.Lock()
	if c.done != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	c.refresh(ctx)
	go func() {
		defer close(done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.refresh(ctx)
			}
		}
	}()
}

// Stop detiene el sondeo y espera a que termine. Es seguro llamarlo varias veces o sin Start.
func (c *UnreadCounter) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Value último contador leído (0 hasta la primera consulta exitosa).
func (c *UnreadCounter) Value() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// LastError error de la última consulta, nil si fue exitosa.
func (c *UnreadCounter) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// UpdatedAt momento de la última consulta exitosa.
func (c *UnreadCounter) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

func (c *UnreadCounter) refresh(ctx context.Context) {
	n, err := c.src.UnreadCount(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		c.log.Warn().Err(err).Msg("no se pudo actualizar el contador de notificaciones")
		return
	}
	c.mu.Lock()
	changed := n != c.value || c.updatedAt.IsZero()
	c.value = n
	c.lastErr = nil
	c.updatedAt = time.Now()
	c.mu.Unlock()
	if changed && c.onChange != nil {
		c.onChange(n)
	}
}
