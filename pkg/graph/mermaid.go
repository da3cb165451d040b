package graph

import (
	"fmt"
	"strings"
)

// Mermaid renders the description as a Mermaid flowchart (graph TD).
// Semantic shapes: the initial state is a ((circle)), hook shadow nodes are
// {{hexagons}} wired with dotted edges, everything else a [rectangle].
func Mermaid(d Description) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, n := range d.Nodes {
		opener, closer := "[", "]"
		switch {
		case n.Shadow:
			opener, closer = "{{", "}}"
		case n.Initial:
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", n.ID, opener, mermaidLabel(n.Label), closer)
	}

	for _, e := range d.Edges {
		arrow := "-->"
		label := mermaidLabel(e.Label)
		if e.Dashed {
			arrow = "-.->"
			if label != "" {
				arrow = fmt.Sprintf("-. \"%s\" .->", label)
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", e.From, arrow, e.To)
			continue
		}
		if label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", label)
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", e.From, arrow, e.To)
	}

	return sb.String()
}

// mermaidLabel flattens multi-line DOT labels and escapes double quotes for
// Mermaid edge/node text.
func mermaidLabel(label string) string {
	s := strings.ReplaceAll(label, "\n", " ")
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.TrimSpace(s)
}
