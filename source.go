package fieldec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over polymorphic input: anything that can produce a
// parsed tree value. JSON and YAML constructors are provided; callers with
// an already-parsed tree use Decode directly.
type Source interface {
	Value() (any, error)
}

// JSONReader wraps an io.Reader holding JSON as a Source. Numbers are kept
// as json.Number to avoid precision loss.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

// JSONBytes wraps a JSON byte slice as a Source.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

type jsonSource struct{ r io.Reader }

func (s jsonSource) Value() (any, error) {
	dec := j.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLReader wraps an io.Reader holding a YAML document as a Source. The
// decoded tree is normalized to the JSON shape: string keys, json.Number
// scalars.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

// YAMLBytes wraps a YAML byte slice as a Source.
func YAMLBytes(b []byte) Source { return yamlSource{r: bytes.NewReader(b)} }

type yamlSource struct{ r io.Reader }

func (s yamlSource) Value() (any, error) {
	dec := yaml.NewDecoder(s.r)
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// normalizeYAML rewrites a yaml.v3 tree into the JSON tree shape used by
// decoders: map keys coerced to strings, numeric scalars to json.Number.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = normalizeYAML(el)
		}
		return out
	case int:
		return json.Number(strconv.Itoa(t))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	default:
		return v
	}
}
