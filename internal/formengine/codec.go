package formengine

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Serialize encodes a capture as the JSON object stored in the
// form_submissions.data column. Dates become ISO date strings, signatures
// nested numeric arrays, absent values null.
func Serialize(captured Capture) ([]byte, error) {
	out := make(map[string]any, len(captured))
	for label, v := range captured {
		switch v.kind {
		case KindAbsent:
			out[label] = nil
		case KindText:
			out[label] = v.text
		case KindImage:
			out[label] = v.image
		case KindDate:
			out[label] = v.date.Format(dateLayout)
		case KindTable:
			out[label] = v.table
		case KindGeo:
			out[label] = v.geo
		case KindSignature:
			out[label] = v.sig
		default:
			return nil, fmt.Errorf("field %q: unknown value kind %d", label, v.kind)
		}
	}
	return json.Marshal(out)
}

// Deserialize decodes a stored data object back into a Capture. The field
// list supplies the type of each label; labels not declared by the
// template are ignored, and null or missing values come back absent.
func Deserialize(data []byte, fields []FieldSpec) (Capture, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(Capture, len(fields))
	for _, f := range fields {
		msg, ok := raw[f.Label]
		if !ok || string(msg) == "null" {
			out[f.Label] = Absent()
			continue
		}
		v, err := decodeValue(f.Type, msg)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Label, err)
		}
		out[f.Label] = v
	}
	return out, nil
}

func decodeValue(t FieldType, msg json.RawMessage) (Value, error) {
	switch t {
	case TypeText, TypeTextArea:
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return Value{}, err
		}
		return Text(s), nil
	case TypeImageUpload:
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return Value{}, err
		}
		return ImageName(s), nil
	case TypeDate:
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return Value{}, err
		}
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return Value{}, err
		}
		return Date(d), nil
	case TypeDynamicTable:
		var rows []Row
		if err := json.Unmarshal(msg, &rows); err != nil {
			return Value{}, err
		}
		return Table(rows), nil
	case TypeGeolocation:
		var g GeoPoint
		if err := json.Unmarshal(msg, &g); err != nil {
			return Value{}, err
		}
		return Geolocation(g.Lat, g.Lng), nil
	case TypeSignature:
		var px Raster
		if err := json.Unmarshal(msg, &px); err != nil {
			return Value{}, err
		}
		return Signature(px), nil
	}
	return Value{}, fmt.Errorf("unknown field type %q", t)
}
