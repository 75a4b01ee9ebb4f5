package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cagb07/gestor-centros-app/internal/formengine"
)

func testRecords() []Record {
	return []Record{
		{Name: "Escuela Central", Province: "San José", Canton: "Central", District: "Carmen", Address: "Av 2", SaberCode: "1001", InstitutionType: "Escuela"},
		{Name: "Liceo de Heredia", Province: "Heredia", Canton: "Central", InstitutionType: "Liceo"},
		{Name: "Escuela La Uruca", Province: "San José", Canton: "Central", District: "Uruca", InstitutionType: "Escuela"},
	}
}

func TestCatalog_Facets(t *testing.T) {
	c := New(testRecords())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"Heredia", "San José"}, c.Provinces())
	assert.Equal(t, []string{"Escuela", "Liceo"}, c.InstitutionTypes())
}

func TestCatalog_Get(t *testing.T) {
	c := New(testRecords())
	r, ok := c.Get("Liceo de Heredia")
	require.True(t, ok)
	assert.Equal(t, "Heredia", r.Province)

	_, ok = c.Get("No existe")
	assert.False(t, ok)
}

func TestCatalog_Filter(t *testing.T) {
	c := New(testRecords())

	got := c.Filter(Query{Search: "escuela"})
	require.Len(t, got, 2)

	got = c.Filter(Query{Search: "URUCA"})
	require.Len(t, got, 1)
	assert.Equal(t, "Escuela La Uruca", got[0].Name)

	got = c.Filter(Query{Province: "San José", Type: "Escuela"})
	assert.Len(t, got, 2)

	got = c.Filter(Query{Province: "Heredia", Type: "Escuela"})
	assert.Empty(t, got)

	got = c.Filter(Query{})
	assert.Len(t, got, 3)
}

func TestPrefill(t *testing.T) {
	r := testRecords()[0]
	values := Prefill(r)

	want := map[string]string{
		"Nombre del Centro": "Escuela Central",
		"Provincia":         "San José",
		"Cantón":            "Central",
		"Distrito":          "Carmen",
		"Dirección":         "Av 2",
		"Código Saber":      "1001",
	}
	require.Len(t, values, len(want))
	for label, text := range want {
		assert.True(t, values[label].Equal(formengine.Text(text)), "label %s", label)
	}
}

func TestPrefill_SkipsEmptyColumns(t *testing.T) {
	values := Prefill(Record{Name: "Liceo Solo Nombre"})
	require.Len(t, values, 1)
	_, present := values["Provincia"]
	assert.False(t, present)
}
