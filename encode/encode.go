// Package encode renders a value.Value tree back to JSON text, in either
// compact or indented form.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vellumjson/vellum/value"
)

var ErrEncoding = errors.New("encode error")

// Encode writes v to w as JSON.
func Encode(v *value.Value, w io.Writer, opts ...Option) error {
	es := &encState{indent: 2}
	for _, o := range opts {
		o(es)
	}
	return encode(v, w, es)
}

// String renders v to a JSON string using the same options as Encode.
func String(v *value.Value, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := Encode(v, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encode(v *value.Value, w io.Writer, es *encState) error {
	switch v.Kind() {
	case value.Null:
		return writeStr(w, es.colors.Color(value.Null, ValueColor, "null"))
	case value.Bool:
		b, _ := v.Bool()
		s := "false"
		if b {
			s = "true"
		}
		return writeStr(w, es.colors.Color(value.Bool, ValueColor, s))
	case value.Int:
		i, _ := value.GetInt[int64](v)
		return writeStr(w, es.colors.Color(value.Int, ValueColor, strconv.FormatInt(i, 10)))
	case value.Uint:
		u, _ := value.GetUint[uint64](v)
		return writeStr(w, es.colors.Color(value.Uint, ValueColor, strconv.FormatUint(u, 10)))
	case value.Float:
		f, _ := v.Float64()
		return writeStr(w, es.colors.Color(value.Float, ValueColor, formatFloat(f)))
	case value.String:
		s, _ := v.Str()
		return writeStr(w, es.colors.Color(value.String, ValueColor, quote(s)))
	case value.Array:
		return encodeArray(v, w, es)
	case value.Object:
		return encodeObject(v, w, es)
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrEncoding, v.Kind())
	}
}

func encodeArray(v *value.Value, w io.Writer, es *encState) error {
	if v.Len() == 0 {
		return writeStr(w, "[]")
	}
	if err := writeStr(w, "["); err != nil {
		return err
	}
	es.depth++
	i := 0
	for elt := range v.Values() {
		if i > 0 {
			if err := writeStr(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
		i++
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeStr(w, "]")
}

func encodeObject(v *value.Value, w io.Writer, es *encState) error {
	if v.Len() == 0 {
		return writeStr(w, "{}")
	}
	if err := writeStr(w, "{"); err != nil {
		return err
	}
	es.depth++
	i := 0
	for k, val := range v.Items() {
		if i > 0 {
			if err := writeStr(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeStr(w, es.colors.Color(value.Object, KeyColor, quote(k))); err != nil {
			return err
		}
		if err := writeStr(w, ":"); err != nil {
			return err
		}
		if es.pretty {
			if err := writeStr(w, " "); err != nil {
				return err
			}
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
		i++
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeStr(w, "}")
}

func writeNL(w io.Writer, es *encState) error {
	if !es.pretty {
		return nil
	}
	step := es.indent
	if step <= 0 {
		step = 2
	}
	return writeStr(w, "\n"+spaces(step*es.depth))
}

func writeStr(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
