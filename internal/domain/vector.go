package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Schema is the feature layout the trained model expects: an ordered list of
// names with a subset flagged categorical.
type Schema struct {
	FeatureNames []string
	Categorical  map[string]bool
}

// NewSchema builds a Schema from the artifact's declared names.
func NewSchema(names []string, categorical []string) *Schema {
	cat := make(map[string]bool, len(categorical))
	for _, name := range categorical {
		cat[name] = true
	}
	return &Schema{FeatureNames: names, Categorical: cat}
}

// FeatureVector is a computed feature set projected onto a Schema. Values is
// aligned with the schema order: categorical slots hold strings, all other
// slots hold finite float64s.
type FeatureVector struct {
	Schema *Schema
	Values []any
}

// NewFeatureVector projects computed features onto the schema. Names the
// schema declares but the computation did not produce are filled with
// "unknown" (categorical) or 0.0 (numeric); every slot is coerced to its
// declared kind. The result always has exactly the schema's names in the
// schema's order.
func NewFeatureVector(schema *Schema, features map[string]any) *FeatureVector {
	values := make([]any, len(schema.FeatureNames))
	for i, name := range schema.FeatureNames {
		raw, ok := features[name]
		if schema.Categorical[name] {
			if !ok {
				values[i] = "unknown"
				continue
			}
			values[i] = coerceText(raw)
			continue
		}
		if !ok {
			values[i] = 0.0
			continue
		}
		values[i] = coerceNumber(raw)
	}
	return &FeatureVector{Schema: schema, Values: values}
}

// Value returns the slot for a feature name, if the schema declares it.
func (v *FeatureVector) Value(name string) (any, bool) {
	for i, n := range v.Schema.FeatureNames {
		if n == name {
			return v.Values[i], true
		}
	}
	return nil, false
}

// Len returns the vector dimension.
func (v *FeatureVector) Len() int {
	return len(v.Values)
}

func coerceText(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}

func coerceNumber(raw any) float64 {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case bool:
		if v {
			f = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0.0
		}
		f = parsed
	default:
		return 0.0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.0
	}
	return f
}
