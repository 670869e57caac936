package parse

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
)

// Parse parses d as exactly one JSON document.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, opts: pOpts}
	res, err := p.value()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed at offset %d: %v\n", p.pos, err)
		}
		return nil, err
	}
	p.ws()
	if p.pos != len(p.d) {
		if debug.Parse() {
			debug.Logf("parse left trailing content at offset %d\n", p.pos)
		}
		return nil, fmt.Errorf("%w: trailing content at offset %d", ErrRootNotSingular, p.pos)
	}
	return res, nil
}

func ParseString(s string, opts ...Option) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d     []byte
	pos   int
	depth int
	opts  *parseOpts
}

func (p *parser) ws() {
	for p.pos < len(p.d) {
		switch p.d[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) value() (*ir.Node, error) {
	p.ws()
	if p.pos == len(p.d) {
		return nil, fmt.Errorf("%w: offset %d", ErrExpectValue, p.pos)
	}
	switch p.d[p.pos] {
	case 'n':
		return p.literal("null", ir.Null())
	case 't':
		return p.literal("true", ir.FromBool(true))
	case 'f':
		return p.literal("false", ir.FromBool(false))
	case '"':
		s, err := p.str()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case '[':
		return p.array()
	case '{':
		return p.object()
	default:
		return p.number()
	}
}

func (p *parser) literal(lit string, node *ir.Node) (*ir.Node, error) {
	if len(p.d)-p.pos < len(lit) || string(p.d[p.pos:p.pos+len(lit)]) != lit {
		return nil, fmt.Errorf("%w: expected %q at offset %d", ErrInvalidValue, lit, p.pos)
	}
	p.pos += len(lit)
	return node, nil
}

func (p *parser) number() (*ir.Node, error) {
	d := p.d
	start := p.pos
	i := p.pos
	if i < len(d) && d[i] == '-' {
		i++
	}
	if i == len(d) {
		return nil, fmt.Errorf("%w: truncated number at offset %d", ErrInvalidValue, start)
	}
	switch {
	case d[i] == '0':
		// a leading zero is a complete integer part
		i++
	case asciiDigit(d[i]):
		i += asciiDigits(d[i:])
	default:
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidValue, d[i], i)
	}
	isFloat := false
	if i < len(d) && d[i] == '.' {
		// . must be followed by 1 or more digits, rfc 7159
		isFloat = true
		i++
		n := asciiDigits(d[i:])
		if n == 0 {
			return nil, fmt.Errorf("%w: expected digit after '.' at offset %d", ErrInvalidValue, i)
		}
		i += n
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		isFloat = true
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		n := asciiDigits(d[i:])
		if n == 0 {
			return nil, fmt.Errorf("%w: expected exponent digit at offset %d", ErrInvalidValue, i)
		}
		i += n
	}
	lex := string(d[start:i])
	if !isFloat {
		v, err := strconv.ParseInt(lex, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%w: %s", ErrNumberTooBig, lex)
			}
			return nil, fmt.Errorf("%w: bad number %q", ErrInvalidValue, lex)
		}
		p.pos = i
		return ir.FromInt(v), nil
	}
	f, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: %s", ErrNumberTooBig, lex)
		}
		return nil, fmt.Errorf("%w: bad number %q", ErrInvalidValue, lex)
	}
	p.pos = i
	return ir.FromFloat(f), nil
}

// unescapes maps escape characters to the byte they denote. \u is
// handled separately.
var unescapes = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

func (p *parser) str() (string, error) {
	p.ws()
	if p.pos == len(p.d) || p.d[p.pos] != '"' {
		return "", fmt.Errorf("%w: expected string at offset %d", ErrInvalidValue, p.pos)
	}
	p.pos++
	var out []byte
	for p.pos < len(p.d) && p.d[p.pos] != '"' {
		c := p.d[p.pos]
		if c != '\\' {
			out = append(out, c)
			p.pos++
			continue
		}
		p.pos++
		if p.pos == len(p.d) {
			return "", fmt.Errorf("%w: unterminated escape at offset %d", ErrInvalidValue, p.pos)
		}
		e := p.d[p.pos]
		if m, ok := unescapes[e]; ok {
			out = append(out, m)
			p.pos++
			continue
		}
		if e != 'u' {
			return "", fmt.Errorf("%w: unrecognized escape %q at offset %d", ErrInvalidValue, e, p.pos)
		}
		r, err := p.unicodeEscape()
		if err != nil {
			return "", err
		}
		out = utf8.AppendRune(out, r)
	}
	if p.pos == len(p.d) {
		return "", fmt.Errorf("%w: unterminated string at offset %d", ErrInvalidValue, p.pos)
	}
	p.pos++
	return string(out), nil
}

// unicodeEscape decodes a \uXXXX escape with the cursor on the 'u'. A
// high surrogate must be followed by an escaped low surrogate; the pair
// folds into the supplementary code point.
func (p *parser) unicodeEscape() (rune, error) {
	u, err := p.hex4()
	if err != nil {
		return 0, err
	}
	r := rune(u)
	if r < 0xD800 || r > 0xDFFF {
		return r, nil
	}
	if r > 0xDBFF {
		return 0, fmt.Errorf("%w: unpaired low surrogate at offset %d", ErrInvalidValue, p.pos)
	}
	if len(p.d)-p.pos < 2 || p.d[p.pos] != '\\' || p.d[p.pos+1] != 'u' {
		return 0, fmt.Errorf("%w: unpaired high surrogate at offset %d", ErrInvalidValue, p.pos)
	}
	p.pos++
	lo, err := p.hex4()
	if err != nil {
		return 0, err
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, fmt.Errorf("%w: invalid low surrogate at offset %d", ErrInvalidValue, p.pos)
	}
	return 0x10000 + (r-0xD800)<<10 + rune(lo-0xDC00), nil
}

// hex4 reads the 4 hex digits after the 'u' the cursor is on.
func (p *parser) hex4() (uint16, error) {
	if len(p.d)-p.pos < 5 {
		return 0, fmt.Errorf("%w: truncated unicode escape at offset %d", ErrInvalidValue, p.pos)
	}
	var u uint16
	for _, c := range p.d[p.pos+1 : p.pos+5] {
		v, ok := hexDigit(c)
		if !ok {
			return 0, fmt.Errorf("%w: bad hex digit %q at offset %d", ErrInvalidValue, c, p.pos)
		}
		u = u<<4 | uint16(v)
	}
	p.pos += 5
	return u, nil
}

func (p *parser) array() (*ir.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	start := p.pos
	p.pos++
	arr := &ir.Node{Type: ir.ArrayType}
	p.ws()
	for p.pos < len(p.d) && p.d[p.pos] != ']' {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Append(v)
		p.ws()
		if p.pos < len(p.d) && p.d[p.pos] == ',' {
			p.pos++
		}
		p.ws()
	}
	if p.pos == len(p.d) {
		return nil, fmt.Errorf("%w: unterminated array at offset %d", ErrInvalidValue, start)
	}
	p.pos++
	return arr, nil
}

func (p *parser) object() (*ir.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	start := p.pos
	p.pos++
	obj := &ir.Node{Type: ir.ObjectType}
	p.ws()
	for p.pos < len(p.d) && p.d[p.pos] != '}' {
		key, err := p.str()
		if err != nil {
			return nil, err
		}
		p.ws()
		if p.pos == len(p.d) || p.d[p.pos] != ':' {
			return nil, fmt.Errorf("%w: expected ':' at offset %d", ErrInvalidValue, p.pos)
		}
		p.pos++
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
		p.ws()
		if p.pos < len(p.d) && p.d[p.pos] == ',' {
			p.pos++
		}
		p.ws()
	}
	if p.pos == len(p.d) {
		return nil, fmt.Errorf("%w: unterminated object at offset %d", ErrInvalidValue, start)
	}
	p.pos++
	return obj, nil
}

func (p *parser) push() error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return fmt.Errorf("%w: %d at offset %d", ErrTooDeep, p.depth, p.pos)
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}
