// Package filter reduce las tablas armadas según las facetas elegidas por el usuario.
package filter

import (
	"time"
)

// Selection estado de una faceta categórica: sin restricción (All) o un subconjunto
// explícito (Only), que puede estar vacío y entonces no coincide con ninguna fila.
// El valor cero equivale a All.
type Selection struct {
	restricted bool
	values     map[string]struct{}
}

// All faceta sin restricción.
func All() Selection { return Selection{} }

// Only restringe la faceta a los valores dados. Only() sin valores no deja pasar nada.
func Only(values ...string) Selection {
	s := Selection{restricted: true, values: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.values[v] = struct{}{}
	}
	return s
}

// IsAll indica que la faceta no restringe.
func (s Selection) IsAll() bool { return !s.restricted }

// Matches indica si el valor pasa la faceta.
func (s Selection) Matches(v string) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.values[v]
	return ok
}

// Values devuelve los valores elegidos ordenados (nil para All).
func (s Selection) Values() []string {
	if !s.restricted {
		return nil
	}
	out := make([]string, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	sortOptions(out)
	return out
}

// DateRange rango [Start, End] inclusivo por día calendario; cualquiera de los extremos puede
// quedar abierto (nil).
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Active indica si hay al menos un extremo definido.
func (r DateRange) Active() bool { return r.Start != nil || r.End != nil }

// Contains evalúa la fecha contra el rango. Con el rango activo, una fecha nula nunca coincide.
// Start posterior a End simplemente no coincide con nada.
func (r DateRange) Contains(t *time.Time) bool {
	if !r.Active() {
		return true
	}
	if t == nil {
		return false
	}
	d := dayOf(*t)
	if r.Start != nil && d.Before(dayOf(*r.Start)) {
		return false
	}
	if r.End != nil && d.After(dayOf(*r.End)) {
		return false
	}
	return true
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
