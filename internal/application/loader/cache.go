package loader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache memoriza el último Snapshot indexado por el fingerprint de la fuente.
// Mismo fingerprint (y TTL vigente) → mismo *Snapshot, sin releer archivos.
// Las cargas concurrentes con el mismo fingerprint se colapsan en una sola.
type Cache struct {
	loader *Loader
	ttl    time.Duration // 0 = sin expiración
	now    func() time.Time

	mu      sync.RWMutex
	current *Snapshot
	expires time.Time
	gen     uint64 // se incrementa en cada Invalidate

	group singleflight.Group
}

// NewCache envuelve el loader. ttl <= 0 desactiva la expiración por tiempo.
func NewCache(l *Loader, ttl time.Duration) *Cache {
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{loader: l, ttl: ttl, now: time.Now}
}

// Snapshot devuelve el snapshot vigente, recargando si el fingerprint cambió,
// expiró el TTL o se invalidó.
func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	fp, err := c.loader.src.Fingerprint(ctx)
	if err != nil {
		return nil, fmt.Errorf("fingerprint de la fuente: %w", err)
	}

	if snap := c.lookup(fp); snap != nil {
		c.loader.metrics.CacheResult(true)
		c.loader.log.Debug().Str("snapshot_id", snap.ID.String()).Msg("cache hit")
		return snap, nil
	}
	c.loader.metrics.CacheResult(false)

	// Una cancelación del primer solicitante no debe abortar la carga compartida.
	// La clave incluye la generación: tras Invalidate no se reutiliza una carga en curso.
	loadCtx := context.WithoutCancel(ctx)
	gen := c.generation()
	v, err, _ := c.group.Do(fmt.Sprintf("%s#%d", fp, gen), func() (interface{}, error) {
		if snap := c.lookup(fp); snap != nil {
			return snap, nil
		}
		snap, err := c.loader.Load(loadCtx, fp)
		if err != nil {
			return nil, err
		}
		c.store(snap, gen)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Invalidate descarta el snapshot vigente; la próxima llamada recarga.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.current = nil
	c.expires = time.Time{}
	c.gen++
	c.mu.Unlock()
	c.loader.log.Info().Msg("caché invalidada")
}

// Current devuelve el snapshot en memoria sin recargar (nil si no hay).
func (c *Cache) Current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Cache) lookup(fp string) *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil || c.current.Fingerprint != fp {
		return nil
	}
	if c.ttl > 0 && !c.now().Before(c.expires) {
		return nil
	}
	return c.current
}

func (c *Cache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// store guarda el snapshot salvo que se haya invalidado la caché durante la carga.
func (c *Cache) store(snap *Snapshot, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.current = snap
	if c.ttl > 0 {
		c.expires = c.now().Add(c.ttl)
	}
}
