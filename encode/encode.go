package encode

import (
	"io"
	"math"
	"strconv"

	"github.com/jot-format/go-jot/ir"
)

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeColored(w, es, ir.NullType, ValueColor, "null")
	case ir.BoolType:
		if node.Bool {
			return writeColored(w, es, ir.BoolType, ValueColor, "true")
		}
		return writeColored(w, es, ir.BoolType, ValueColor, "false")
	case ir.IntType:
		return writeColored(w, es, ir.IntType, ValueColor, strconv.FormatInt(node.Int64, 10))
	case ir.FloatType:
		// JSON has no NaN or infinity tokens
		if math.IsNaN(node.Float64) || math.IsInf(node.Float64, 0) {
			return writeColored(w, es, ir.FloatType, ValueColor, "null")
		}
		return writeColored(w, es, ir.FloatType, ValueColor, strconv.FormatFloat(node.Float64, 'g', -1, 64))
	case ir.StringType:
		return writeColored(w, es, ir.StringType, ValueColor, Quote(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	}
	return nil
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeColored(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, ir.ArrayType, SepColor, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeColored(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, Quote(f.String)); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, ":"); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, ir.ObjectType, SepColor, "}")
}

func writeColored(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// escapes maps bytes to their two-character escapes. '/' is escaped to
// keep output safe for embedding inside markup.
var escapes = map[byte]string{
	'"':  `\"`,
	'\\': `\\`,
	'/':  `\/`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

const hexDigits = "0123456789abcdef"

// Quote renders v as a JSON string literal. Bytes below U+0020 without
// a two-character escape become \u00XX; everything else passes through.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		if e, ok := escapes[c]; ok {
			d = append(d, e...)
			continue
		}
		if c < 0x20 {
			d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			continue
		}
		d = append(d, c)
	}
	d = append(d, '"')
	return string(d)
}
