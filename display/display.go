package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"golang.org/x/term"
)

// Glyphs holds the line-drawing fragments used to connect tree nodes.
// All four fragments must occupy the same number of character positions.
type Glyphs struct {
	UpBranch   string // connects a node to its right child above
	DownBranch string // connects a node to its left child below
	Bar        string // continues a branch across intermediate lines
	Gap        string // fills non-branch positions
}

// DefaultGlyphs is the default set of line-drawing fragments.
var DefaultGlyphs = Glyphs{
	UpBranch:   "┌── ",
	DownBranch: "└── ",
	Bar:        "│   ",
	Gap:        "    ",
}

const glyphWidth = 4 // character positions per tree level

// Printer renders trees with a fixed glyph set and color palette.
type Printer struct {
	Glyphs    *Glyphs
	MaxWidth  int // maximum rendered line width in character positions
	values    *color.Color
	structure *color.Color
}

// NewPrinter creates a printer with the default glyphs and palette and a
// line width suited to the current terminal.
func NewPrinter() *Printer {
	return &Printer{
		Glyphs:    &DefaultGlyphs,
		MaxWidth:  WidthFromTerminal(),
		values:    color.New(color.FgBlue),
		structure: color.New(color.Faint),
	}
}

// Palette overrides the colors for node values and connecting glyphs.
// A nil entry keeps the current color.
func (p *Printer) Palette(values, structure *color.Color) *Printer {
	if values != nil {
		p.values = values
	}
	if structure != nil {
		p.structure = structure
	}
	return p
}

// Print renders tree to w, sideways: the right subtree is printed above its
// parent, the left subtree below. For the tree built from [8 4 6 16 -5 25]
// the output looks like
//
//	    ┌── 25
//	┌── 16
//	8
//	│   ┌── 6
//	└── 4
//	    └── -5
//
// An empty tree prints a single dot line.
func Print[T any](p *Printer, tree *bintree.Tree[T], w io.Writer) {
	if p == nil {
		p = NewPrinter()
	}
	root := tree.RootNode()
	if root == nil {
		fmt.Fprintln(w, "·")
		return
	}
	tracer().Debugf("display: printing tree with %d values", tree.Count())
	if right := root.Right(); right != nil {
		printNode(p, right, w, "", 0, false)
	}
	fmt.Fprintln(w, p.values.Sprint(p.clip(render(root.Value()), 0)))
	if left := root.Left(); left != nil {
		printNode(p, left, w, "", 0, true)
	}
}

// printNode renders node and its subtrees. prefix is the (possibly
// colorized) indentation in front of the node's branch glyph, used counts
// the character positions it occupies, isLeft tells which side of its
// parent the node hangs on.
func printNode[T any](p *Printer, node *bintree.Node[T], w io.Writer, prefix string, used int, isLeft bool) {
	if right := node.Right(); right != nil {
		printNode(p, right, w, prefix+p.continuation(isLeft, false), used+glyphWidth, false)
	}
	glyph := p.Glyphs.UpBranch
	if isLeft {
		glyph = p.Glyphs.DownBranch
	}
	value := p.clip(render(node.Value()), used+glyphWidth)
	fmt.Fprintln(w, prefix+p.structure.Sprint(glyph)+p.values.Sprint(value))
	if left := node.Left(); left != nil {
		printNode(p, left, w, prefix+p.continuation(isLeft, true), used+glyphWidth, true)
	}
}

// continuation yields the indentation fragment a child level adds: the bar
// where a parent branch crosses the child's lines, a gap elsewhere.
func (p *Printer) continuation(isLeft, childIsLeft bool) string {
	if isLeft != childIsLeft {
		return p.structure.Sprint(p.Glyphs.Bar)
	}
	return p.Glyphs.Gap
}

func render[T any](value T) string {
	return fmt.Sprintf("%v", value)
}

// clip shortens a value rendering so the line fits into MaxWidth.
func (p *Printer) clip(s string, used int) string {
	if p.MaxWidth <= 0 {
		return s
	}
	room := p.MaxWidth - used
	if room < 1 {
		room = 1
	}
	runes := []rune(s)
	if len(runes) <= room {
		return s
	}
	if room == 1 {
		return "…"
	}
	return string(runes[:room-1]) + "…"
}

// WidthFromTerminal probes stdout for a usable line width. If stdout is not
// interactive, a default of 65 character positions is used.
func WidthFromTerminal() int {
	width := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			if w > 65 {
				width = w - 10
			} else if w > 30 {
				width = w - 5
			} else if w > 10 {
				width = w
			} else {
				width = 10
			}
		}
	}
	tracer().P("format", "display").Infof("setting line width to %d en", width)
	return width
}
