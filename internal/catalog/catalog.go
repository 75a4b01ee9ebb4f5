package catalog

import (
	"sort"
	"strings"

	"github.com/cagb07/gestor-centros-app/internal/formengine"
)

// Record is one facility row of the reference dataset. The natural key is
// the facility name; nothing here is ever persisted by the application.
type Record struct {
	Name            string `json:"centro_educativo"`
	Province        string `json:"provincia"`
	Canton          string `json:"canton"`
	District        string `json:"distrito"`
	Address         string `json:"direccion"`
	SaberCode       string `json:"codsaber"`
	InstitutionType string `json:"tipo_institucion"`
}

// Catalog is loaded once at process start and read-only afterwards, so it
// is safe for concurrent readers.
type Catalog struct {
	records   []Record
	byName    map[string]Record
	provinces []string
	types     []string
}

func New(records []Record) *Catalog {
	c := &Catalog{
		records: records,
		byName:  make(map[string]Record, len(records)),
	}
	provSet := map[string]struct{}{}
	typeSet := map[string]struct{}{}
	for _, r := range records {
		if _, ok := c.byName[r.Name]; !ok {
			c.byName[r.Name] = r
		}
		if r.Province != "" {
			provSet[r.Province] = struct{}{}
		}
		if r.InstitutionType != "" {
			typeSet[r.InstitutionType] = struct{}{}
		}
	}
	c.provinces = sortedKeys(provSet)
	c.types = sortedKeys(typeSet)
	return c
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Len() int { return len(c.records) }

func (c *Catalog) Provinces() []string        { return c.provinces }
func (c *Catalog) InstitutionTypes() []string { return c.types }

func (c *Catalog) Get(name string) (Record, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Query filters the catalog: Search matches the facility name
// case-insensitively as a substring, Province and Type match exactly.
// Empty predicates match everything.
type Query struct {
	Search   string
	Province string
	Type     string
}

func (c *Catalog) Filter(q Query) []Record {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]Record, 0)
	for _, r := range c.records {
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		if q.Province != "" && r.Province != q.Province {
			continue
		}
		if q.Type != "" && r.InstitutionType != q.Type {
			continue
		}
		out = append(out, r)
	}
	return out
}

// prefillLabels maps CSV columns to the form labels templates
// conventionally use for them.
var prefillLabels = map[string]func(Record) string{
	"Nombre del Centro": func(r Record) string { return r.Name },
	"Provincia":         func(r Record) string { return r.Province },
	"Cantón":            func(r Record) string { return r.Canton },
	"Distrito":          func(r Record) string { return r.District },
	"Dirección":         func(r Record) string { return r.Address },
	"Código Saber":      func(r Record) string { return r.SaberCode },
}

// Prefill converts a record into form-engine values keyed by the labels
// the form engine recognizes, for pre-filling a rendered capture.
func Prefill(r Record) map[string]formengine.Value {
	out := make(map[string]formengine.Value, len(prefillLabels))
	for label, pick := range prefillLabels {
		if v := pick(r); v != "" {
			out[label] = formengine.Text(v)
		}
	}
	return out
}
