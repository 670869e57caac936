package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `-7`},
		{in: `0`},
		{in: `1e14`},
		{in: `1.5`},
		{in: `-0.25e-2`},
		{in: `"hello"`},
		{in: `""`},
		{in: `"\"\\\/\b\f\n\r\t"`},
		{in: `"é"`},
		{in: `[]`},
		{in: `[1,2]`},
		{in: `[[]]`},
		{in: `["a",["b",["c"]]]`},
		{in: `[[["a"],"b"],"c"]`},
		{in: `{}`},
		{in: `{"a":1}`},
		{in: `{"a":{"b":{"c":null}}}`},
		{in: "  [ 1 , 2 ]\t\r\n"},
		{in: ` {"a" : [ true , false ] } `},
	}
	for _, pt := range pts {
		if _, err := ParseString(pt.in); err != nil {
			t.Errorf("ParseString(%q): %v", pt.in, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrExpectValue},
		{in: `   `, e: ErrExpectValue},
		{in: `nul`, e: ErrInvalidValue},
		{in: `truth`, e: ErrInvalidValue},
		{in: `fals`, e: ErrInvalidValue},
		{in: `null x`, e: ErrRootNotSingular},
		{in: `1 2`, e: ErrRootNotSingular},
		// a leading zero ends the integer part, leaving the rest as
		// trailing content
		{in: `0123`, e: ErrRootNotSingular},
		{in: `1e30009`, e: ErrNumberTooBig},
		{in: `-1e30009`, e: ErrNumberTooBig},
		{in: `100000000000000000000000000000000000000000000000`, e: ErrNumberTooBig},
		{in: `-100000000000000000000000000000000000000000000000`, e: ErrNumberTooBig},
		{in: `+1`, e: ErrInvalidValue},
		{in: `.5`, e: ErrInvalidValue},
		{in: `1.`, e: ErrInvalidValue},
		{in: `1e`, e: ErrInvalidValue},
		{in: `1e+`, e: ErrInvalidValue},
		{in: `-`, e: ErrInvalidValue},
		{in: `"abc`, e: ErrInvalidValue},
		{in: `"a\`, e: ErrInvalidValue},
		{in: `"a\x"`, e: ErrInvalidValue},
		{in: `"\u12g4"`, e: ErrInvalidValue},
		{in: `"\u12`, e: ErrInvalidValue},
		{in: `"\ud800"`, e: ErrInvalidValue},
		{in: `"\udc00"`, e: ErrInvalidValue},
		{in: `"\ud800A"`, e: ErrInvalidValue},
		{in: `[1,2`, e: ErrInvalidValue},
		{in: `[1,x]`, e: ErrInvalidValue},
		{in: `{"a":1`, e: ErrInvalidValue},
		{in: `{"a"}`, e: ErrInvalidValue},
		{in: `{"a":1,"b":2,:3}`, e: ErrInvalidValue},
		{in: `{"a":1,"b":2,"c" 3}`, e: ErrInvalidValue},
		{in: `{1:2}`, e: ErrInvalidValue},
	}
	for _, pt := range pts {
		_, err := ParseString(pt.in)
		if err == nil {
			t.Errorf("ParseString(%q): expected %v", pt.in, pt.e)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("ParseString(%q) = %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestContainerSeparatorTolerance(t *testing.T) {
	// Separators inside containers are tolerated when missing or
	// trailing; the closing bracket alone ends the container.
	tests := []struct {
		in  string
		out string
	}{
		{in: `[1 2]`, out: `[1,2]`},
		{in: `[1,]`, out: `[1]`},
		{in: `{"a":1 "b":2}`, out: `{"a":1,"b":2}`},
		{in: `{"a":1,}`, out: `{"a":1}`},
	}
	for _, tt := range tests {
		y, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("ParseString(%q): %v", tt.in, err)
			continue
		}
		if got := encode.MustString(y); got != tt.out {
			t.Errorf("ParseString(%q) = %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestNumberClassification(t *testing.T) {
	tests := []struct {
		in   string
		typ  ir.Type
		want *ir.Node
	}{
		{in: `123`, typ: ir.IntType, want: ir.FromInt(123)},
		{in: `-123`, typ: ir.IntType, want: ir.FromInt(-123)},
		{in: `123.0`, typ: ir.FloatType, want: ir.FromFloat(123)},
		{in: `1e2`, typ: ir.FloatType, want: ir.FromFloat(100)},
		{in: `-1.5e-1`, typ: ir.FloatType, want: ir.FromFloat(-0.15)},
	}
	for _, tt := range tests {
		y, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("ParseString(%q): %v", tt.in, err)
			continue
		}
		if y.Type != tt.typ {
			t.Errorf("ParseString(%q).Type = %s, want %s", tt.in, y.Type, tt.typ)
		}
		if !ir.Equal(y, tt.want) {
			t.Errorf("ParseString(%q) = %s, want %s", tt.in, encode.MustString(y), encode.MustString(tt.want))
		}
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `"abc"`, want: "abc"},
		{in: `"a\"b"`, want: `a"b`},
		{in: `"a\/b"`, want: "a/b"},
		{in: `"A"`, want: "A"},
		{in: `"é"`, want: "é"},
		{in: `"中"`, want: "中"},
		{in: `"😀"`, want: "😀"},
	}
	for _, tt := range tests {
		y, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("ParseString(%q): %v", tt.in, err)
			continue
		}
		if y.Type != ir.StringType || y.String != tt.want {
			t.Errorf("ParseString(%q) = %q, want %q", tt.in, y.String, tt.want)
		}
	}
}

func TestParseNested(t *testing.T) {
	y, err := ParseString(`[null,true,false,123,"abc",[1,2,3],{"a":1,"b":2,"c":3}]`)
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ArrayType || y.Len() != 7 {
		t.Fatalf("root = %s of len %d, want Array of 7", y.Type, y.Len())
	}
	sixth, err := y.At(5)
	if err != nil {
		t.Fatal(err)
	}
	if sixth.Type != ir.ArrayType || sixth.Len() != 3 {
		t.Errorf("element 5 = %s of len %d, want Array of 3", sixth.Type, sixth.Len())
	}
	seventh, err := y.At(6)
	if err != nil {
		t.Fatal(err)
	}
	if seventh.Type != ir.ObjectType || seventh.Len() != 3 {
		t.Errorf("element 6 = %s of len %d, want Object of 3", seventh.Type, seventh.Len())
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	y, err := ParseString(`{"a":1,"a":2}`)
	if err != nil {
		t.Fatal(err)
	}
	if y.Len() != 1 {
		t.Fatalf("len = %d, want 1", y.Len())
	}
	v, err := y.Field("a")
	if err != nil {
		t.Fatal(err)
	}
	if v.Int64 != 2 {
		t.Errorf("last write should win, got %d", v.Int64)
	}
}

func TestParseKeyOrder(t *testing.T) {
	y, err := ParseString(`{"b":2,"a":1}`)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(y); got != `{"a":1,"b":2}` {
		t.Errorf("re-encoded = %q, want key-sorted", got)
	}
}

func TestRoundTrip(t *testing.T) {
	trees := []*ir.Node{
		ir.Null(),
		ir.FromBool(true),
		ir.FromInt(-42),
		ir.FromString(`a"b`),
		ir.FromString("line\nbreak\ttab"),
		ir.FromString("\x01ctl"),
		ir.FromSlice(nil),
		ir.FromKeyVals(nil),
		ir.FromSlice([]*ir.Node{
			ir.Null(),
			ir.FromBool(false),
			ir.FromInt(123),
			ir.FromString("abc"),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "b", Val: ir.FromInt(2)},
				{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromString("deep")})},
			}),
		}),
	}
	for _, tree := range trees {
		text := encode.MustString(tree)
		back, err := ParseString(text)
		if err != nil {
			t.Errorf("ParseString(%q): %v", text, err)
			continue
		}
		if !ir.Equal(tree, back) {
			t.Errorf("round trip of %q lost structure", text)
		}
		if again := encode.MustString(back); again != text {
			t.Errorf("generation not idempotent: %q then %q", text, again)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 40) + strings.Repeat("]", 40)
	if _, err := ParseString(deep); err != nil {
		t.Errorf("depth 40 within default limit: %v", err)
	}
	_, err := ParseString(deep, WithMaxDepth(10))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
	huge := strings.Repeat("[", DefaultMaxDepth+1)
	if _, err := ParseString(huge); !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep on default limit, got %v", err)
	}
}
