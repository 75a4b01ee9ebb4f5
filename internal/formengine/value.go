package formengine

import (
	"strings"
	"time"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindText
	KindDate
	KindTable
	KindGeo
	KindSignature
	KindImage
)

// Row is one row of a dynamic table: column name to cell content.
type Row = map[string]string

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Raster is a signature's pixel buffer: rows of pixels, each pixel a
// numeric channel slice, serialized as nested JSON arrays.
type Raster [][][]float64

// Value is the tagged variant for a single captured field. The zero Value
// is absent.
type Value struct {
	kind  Kind
	text  string
	date  time.Time
	table []Row
	geo   GeoPoint
	sig   Raster
	image string
}

func Absent() Value { return Value{} }

// Text returns a text value trimmed of surrounding whitespace.
func Text(s string) Value { return Value{kind: KindText, text: strings.TrimSpace(s)} }

// Date keeps only the calendar date, in UTC.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Table(rows []Row) Value {
	if rows == nil {
		rows = []Row{}
	}
	return Value{kind: KindTable, table: rows}
}

func Geolocation(lat, lng float64) Value {
	return Value{kind: KindGeo, geo: GeoPoint{Lat: lat, Lng: lng}}
}

func Signature(pixels Raster) Value { return Value{kind: KindSignature, sig: pixels} }

// ImageName records the original name of an uploaded file; the content
// itself is not part of the capture.
func ImageName(name string) Value { return Value{kind: KindImage, image: name} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

func (v Value) TextValue() (string, bool)  { return v.text, v.kind == KindText }
func (v Value) DateValue() (time.Time, bool) { return v.date, v.kind == KindDate }
func (v Value) TableRows() ([]Row, bool)   { return v.table, v.kind == KindTable }
func (v Value) GeoValue() (GeoPoint, bool) { return v.geo, v.kind == KindGeo }
func (v Value) SignatureValue() (Raster, bool) { return v.sig, v.kind == KindSignature }
func (v Value) ImageValue() (string, bool) { return v.image, v.kind == KindImage }

// blank reports whether a present value carries no usable content: empty
// text after trimming, or a table with no row that has a non-blank cell.
func (v Value) blank() bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindImage:
		return strings.TrimSpace(v.image) == ""
	case KindTable:
		for _, row := range v.table {
			for _, cell := range row {
				if strings.TrimSpace(cell) != "" {
					return false
				}
			}
		}
		return true
	}
	return false
}

// Equal compares two values structurally. Dates compare by calendar day.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindText:
		return v.text == o.text
	case KindImage:
		return v.image == o.image
	case KindDate:
		return v.date.Equal(o.date)
	case KindGeo:
		return v.geo == o.geo
	case KindTable:
		if len(v.table) != len(o.table) {
			return false
		}
		for i := range v.table {
			if len(v.table[i]) != len(o.table[i]) {
				return false
			}
			for k, c := range v.table[i] {
				oc, ok := o.table[i][k]
				if !ok || c != oc {
					return false
				}
			}
		}
		return true
	case KindSignature:
		if len(v.sig) != len(o.sig) {
			return false
		}
		for i := range v.sig {
			if len(v.sig[i]) != len(o.sig[i]) {
				return false
			}
			for j := range v.sig[i] {
				if len(v.sig[i][j]) != len(o.sig[i][j]) {
					return false
				}
				for k := range v.sig[i][j] {
					if v.sig[i][j][k] != o.sig[i][j][k] {
						return false
					}
				}
			}
		}
		return true
	}
	return false
}
