package treeview

import (
	"cmp"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordset"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for console output of a tree.
type Config struct {
	LabelWidth int            // maximum width of node labels in ‘en’s
	Indent     int            // indentation per tree level in ‘en’s
	Context    *uax11.Context // context for measuring label widths
	Plain      *color.Color   // color for nodes without iterators
	Tracked    *color.Color   // color for nodes with iterators positioned on them
}

var setupGraphemes sync.Once

// normalized fills in defaults for unset fields. If config is nil, a
// heuristic will create a config from the current terminal's properties.
func (config *Config) normalized() *Config {
	if config == nil {
		config = ConfigFromTerminal()
	}
	c := *config
	if c.LabelWidth <= 0 {
		c.LabelWidth = 12
	}
	if c.Indent <= 0 {
		c.Indent = 4
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Plain == nil {
		c.Plain = color.New(color.FgBlue)
	}
	if c.Tracked == nil {
		c.Tracked = color.New(color.FgRed, color.Bold)
	}
	return &c
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdin is a terminal, and if so it reads the terminal's
// width and derives the label width from it.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: 4}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil || w < 40 {
			config.LabelWidth = 8
		} else {
			config.LabelWidth = w / 5
		}
	} else {
		config.LabelWidth = 12
	}
	tracer().Infof("tree view: setting label width to %d en", config.LabelWidth)
	return config
}

// Fprint outputs the shape of a set's tree to w, rotated by 90 degrees: the
// root is at the left margin, right subtrees are printed above their parents
// and left subtrees below. Nodes with iterators positioned on them are
// highlighted and followed by the number of iterators in brackets.
func Fprint[T cmp.Ordered](w io.Writer, s *ordset.Set[T], config *Config) error {
	config = config.normalized()
	t, err := collect(s)
	if err != nil {
		return err
	}
	if t == nil {
		_, err = io.WriteString(w, "(empty)\n")
		return err
	}
	return printNode(w, t, config)
}

func printNode[T cmp.Ordered](w io.Writer, n *viewNode[T], config *Config) error {
	if n.right != nil {
		if err := printNode(w, n.right, config); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, strings.Repeat(" ", n.info.Depth*config.Indent)); err != nil {
		return err
	}
	label := Truncate(fmt.Sprintf("%v", n.info.Value), config.LabelWidth, config.Context)
	var err error
	if n.info.Iterators > 0 {
		_, err = config.Tracked.Fprintf(w, "%s [%d]\n", label, n.info.Iterators)
	} else {
		_, err = config.Plain.Fprintln(w, label)
	}
	if err != nil {
		return err
	}
	if n.left != nil {
		return printNode(w, n.left, config)
	}
	return nil
}

// Truncate shortens label to at most width ‘en’s, cutting between grapheme
// clusters. Truncated labels end in an ellipsis.
func Truncate(label string, width int, context *uax11.Context) string {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(label)
	if uax11.StringWidth(gstr, context) <= width {
		return label
	}
	var b strings.Builder
	used := 1 // reserve room for the ellipsis
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), context)
		if used+gw > width {
			break
		}
		b.WriteString(g)
		used += gw
	}
	b.WriteString("…")
	return b.String()
}
