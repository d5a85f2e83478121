package loader

import "time"

// SetClock reemplaza el reloj de la caché en tests.
func SetClock(c *Cache, now func() time.Time) { c.now = now }
