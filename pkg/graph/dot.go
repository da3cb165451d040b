package graph

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DOT writes the description as a Graphviz digraph. The initial state is
// drawn as a diamond, hook shadow nodes as dashed plain nodes, hook edges
// dashed.
func DOT(d Description, w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", d.ID)

	for _, n := range d.Nodes {
		attrs := []string{fmt.Sprintf("label=%q", n.Label)}

		shape := n.Shape
		if shape == "" {
			switch {
			case n.Shadow:
				shape = "plain"
			case n.Initial:
				shape = "diamond"
			}
		}
		if shape != "" {
			attrs = append(attrs, "shape="+shape)
		}

		style := n.Style
		if style == "" && n.Shadow {
			style = "dashed"
		}
		if style != "" {
			attrs = append(attrs, "style="+style)
		}

		fmt.Fprintf(&sb, "    %s [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	for _, e := range d.Edges {
		attrs := []string{fmt.Sprintf("label=%q", e.Label)}
		if e.Dashed {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&sb, "    %s -> %s [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteDOT renders the description to the named file, creating it. The
// filesystem error is reported verbatim; it is not part of the engine's
// error taxonomy.
func WriteDOT(d Description, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := DOT(d, f); err != nil {
		return err
	}
	return f.Close()
}
