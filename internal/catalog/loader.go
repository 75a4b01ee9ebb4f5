package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Column names the reference CSV must carry.
const (
	ColName            = "CENTRO_EDUCATIVO"
	ColProvince        = "PROVINCIA"
	ColCanton          = "CANTON"
	ColDistrict        = "DISTRITO"
	ColAddress         = "DIRECCION"
	ColSaberCode       = "CODSABER"
	ColInstitutionType = "TIPO_INSTITUCION"
)

var ErrUnknownEncoding = errors.New("could not determine the CSV file's encoding")

// fallbackEncodings is tried in order after plain UTF-8; the data files
// come from Windows exports so cp1252 usually wins. ISO 8859-15 stands in
// for the latin family variants.
var fallbackEncodings = []encoding.Encoding{
	charmap.Windows1252,
	charmap.ISO8859_1,
	charmap.ISO8859_15,
}

// Load reads the reference CSV into an immutable in-memory catalog,
// auto-detecting the encoding (UTF-8 first, then the Latin-family
// fallbacks; first success wins).
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decode(raw)
	if err != nil {
		return nil, err
	}
	records, err := parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return New(records), nil
}

func decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	for _, enc := range fallbackEncodings {
		out, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		return string(out), nil
	}
	return "", ErrUnknownEncoding
}

func parse(text string) ([]Record, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("CSV file is empty")
	}
	idx := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range []string{ColName, ColProvince, ColInstitutionType} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %s", col)
		}
	}
	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			Name:            cell(row, ColName),
			Province:        cell(row, ColProvince),
			Canton:          cell(row, ColCanton),
			District:        cell(row, ColDistrict),
			Address:         cell(row, ColAddress),
			SaberCode:       cell(row, ColSaberCode),
			InstitutionType: cell(row, ColInstitutionType),
		}
		if rec.Name == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
