package report

import "time"

// SetClock fija la hora usada en los nombres de archivo.
func SetClock(uc *ExportUseCase, now func() time.Time) { uc.now = now }
