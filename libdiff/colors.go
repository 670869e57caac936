package libdiff

import "github.com/fatih/color"

type Colors struct {
	Insert func(string) string
	Delete func(string) string
}

func NoColors() *Colors {
	ident := func(s string) string { return s }
	return &Colors{Insert: ident, Delete: ident}
}

func NewColors() *Colors {
	return &Colors{
		Insert: func(s string) string { return color.GreenString("%s", s) },
		Delete: func(s string) string { return color.RedString("%s", s) },
	}
}
