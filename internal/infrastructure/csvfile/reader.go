// Package csvfile implementa repository.RecordSource sobre archivos delimitados
// (por defecto ';', como los exportes FCD_*.csv).
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/estoque-dashboard/internal/domain"
)

// Encodings soportados para los archivos de origen.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// Options configuración de lectura.
type Options struct {
	Delimiter rune   // ';' por defecto
	Encoding  string // utf-8 | latin1 | windows-1252
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ';'
	}
	if o.Encoding == "" {
		o.Encoding = EncodingUTF8
	}
	return o
}

// table contenido de un archivo con las columnas ya resueltas a nombres canónicos.
type table struct {
	path string
	cols map[string]int // nombre canónico → índice en el registro
	rows [][]string
}

// has indica si la columna canónica está presente en el encabezado.
func (t *table) has(col string) bool {
	_, ok := t.cols[col]
	return ok
}

// value devuelve el valor recortado de la columna canónica; "" si no existe o la fila es corta.
func (t *table) value(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// require falla con ErrSchema si falta alguna de las columnas obligatorias.
func (t *table) require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s sin columnas %s", domain.ErrSchema, t.path, strings.Join(missing, ", "))
	}
	return nil
}

// readTable lee el archivo completo y resuelve el encabezado contra los alias de columnas.
func readTable(path string, opt Options, aliases map[string][]string) (*table, error) {
	opt = opt.withDefaults()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s no existe", domain.ErrSourceUnavailable, path)
		}
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	r, err := decodingReader(f, opt.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = opt.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %s está vacío", domain.ErrSchema, path)
		}
		return nil, fmt.Errorf("leer encabezado de %s: %w", path, err)
	}

	t := &table{path: path, cols: resolveHeader(header, aliases)}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", path, err)
		}
		if isBlank(rec) {
			continue
		}
		t.rows = append(t.rows, rec)
	}
	return t, nil
}

func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(encoding, "_", "-")) {
	case "", EncodingUTF8, "utf8":
		return r, nil
	case EncodingLatin1, "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case EncodingWindows1252, "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: encoding %q no soportado", domain.ErrInvalidInput, encoding)
	}
}

// resolveHeader mapea cada columna del archivo a su nombre canónico.
// Si una columna canónica aparece dos veces, gana la primera.
func resolveHeader(header []string, aliases map[string][]string) map[string]int {
	lookup := make(map[string]string)
	for canonical, names := range aliases {
		lookup[canonical] = canonical
		for _, n := range names {
			lookup[normalizeHeader(n)] = canonical
		}
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		canonical, ok := lookup[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, dup := cols[canonical]; !dup {
			cols[canonical] = i
		}
	}
	return cols
}

// normalizeHeader: minúsculas, sin acentos, espacios y guiones → '_'.
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err == nil {
		s = folded
	}
	return strings.NewReplacer(" ", "_", "-", "_", ".", "_").Replace(s)
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
