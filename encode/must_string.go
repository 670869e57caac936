package encode

import (
	"bytes"

	"github.com/jot-format/go-jot/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
