package encode

import (
	"math"
	"testing"

	"github.com/jot-format/go-jot/ir"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		out  string
	}{
		{"null", ir.Null(), `null`},
		{"true", ir.FromBool(true), `true`},
		{"false", ir.FromBool(false), `false`},
		{"int", ir.FromInt(123), `123`},
		{"negative int", ir.FromInt(-7), `-7`},
		{"zero", ir.FromInt(0), `0`},
		{"float", ir.FromFloat(1.5), `1.5`},
		{"nan", ir.FromFloat(math.NaN()), `null`},
		{"+inf", ir.FromFloat(math.Inf(1)), `null`},
		{"-inf", ir.FromFloat(math.Inf(-1)), `null`},
		{"string", ir.FromString("abc"), `"abc"`},
		{"empty string", ir.FromString(""), `""`},
		{"empty array", ir.FromSlice(nil), `[]`},
		{"empty object", ir.FromKeyVals(nil), `{}`},
		{
			"array",
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)}),
			`[1,2,3]`,
		},
		{
			"nested",
			ir.FromSlice([]*ir.Node{
				ir.Null(),
				ir.FromSlice([]*ir.Node{ir.FromString("x")}),
				ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}}),
			}),
			`[null,["x"],{"a":1}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(tt.node); got != tt.out {
				t.Errorf("MustString() = %q, want %q", got, tt.out)
			}
		})
	}
}

func TestEncodeKeyOrder(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(2)},
		{Key: "a", Val: ir.FromInt(1)},
	})
	if got := MustString(obj); got != `{"a":1,"b":2}` {
		t.Errorf("MustString() = %q, want key-sorted output", got)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a/b", `"a\/b"`},
		{"a\nb", `"a\nb"`},
		{"\b\f\r\t", `"\b\f\r\t"`},
		{"\x01", `"\u0001"`},
		{"\x1f", `"\u001f"`},
		{"héllo", `"héllo"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.out {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}
