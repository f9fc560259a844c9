package encode

import (
	"strings"

	"github.com/tplews98/snailfish/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	SepColor
	HotColor
	HighlightColor
	InsertColor
	DeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t}
		able.Attr = HotColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = HighlightColor
		colors.Map[able] = color.New(color.FgHiYellow, color.Bold).SprintfFunc()
		able.Attr = InsertColor
		colors.Map[able] = color.GreenString
		able.Attr = DeleteColor
		colors.Map[able] = color.New(color.FgRed, color.CrossedOut).SprintfFunc()
	}
	colors.Map[Colorable{Type: ir.LiteralType, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Type: ir.PairType, Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
