package ordset

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Set2Dot outputs the internal structure of a Set in Graphviz DOT format
// (for debugging purposes). Nodes with iterators positioned on them are
// highlighted.
func Set2Dot[T cmp.Ordered](s *Set[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	err := s.Walk(func(info NodeInfo[T]) error {
		label := dotEscaper.Replace(fmt.Sprintf("%v", info.Value))
		if info.Iterators > 0 {
			label = fmt.Sprintf("%s\\n[%d]", label, info.Iterators)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", info.ID, label,
			nodeDotStyles(info.Iterators > 0))
		if info.Parent > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%s];\n", info.Parent, info.ID, info.Side)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("set DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err = io.WriteString(w, "}\n")
	return err
}

// dotEscaper quotes a value for use inside a double-quoted DOT string.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func nodeDotStyles(highlight bool) string {
	s := ",style=filled,shape=circle"
	if highlight {
		s += ",fillcolor=\"#FFAA66\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
