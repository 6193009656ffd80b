// Package report renders mapping trees as indented text for debugging. The output lists every
// node with the attributes that hold a value; explicitly specified values are marked with "!".
package report

import (
	"fmt"
	"io"
	"strings"

	"automapper/internal/model"
)

// TextFormatter writes mapping trees as indented text.
type TextFormatter struct {
	writer io.Writer
	indent string
}

// NewTextFormatter creates a formatter writing to w with two-space indentation.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w, indent: "  "}
}

// Format writes each root followed by its descendants, roots separated by a blank line.
func (f *TextFormatter) Format(roots ...*model.ClassMapping) error {
	for i, root := range roots {
		if i > 0 {
			if _, err := fmt.Fprintln(f.writer); err != nil {
				return err
			}
		}

		if err := f.formatNode(root, 0); err != nil {
			return err
		}
	}

	return nil
}

func (f *TextFormatter) formatNode(n model.Node, depth int) error {
	if _, err := fmt.Fprintf(f.writer, "%s%s\n", strings.Repeat(f.indent, depth), Line(n)); err != nil {
		return err
	}

	for _, c := range n.Children() {
		if err := f.formatNode(c, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Line renders one node: its kind, the Go member or type it maps and its attributes.
func Line(n model.Node) string {
	var b strings.Builder

	b.WriteString(n.Kind().String())

	if label := label(n); label != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}

	for _, k := range n.Attributes().Keys() {
		v, _ := n.Get(k)
		if _, isNode := v.(model.Node); isNode {
			continue
		}

		fmt.Fprintf(&b, " %s=%v", k, v)

		if n.IsSpecified(k) {
			b.WriteString("!")
		}
	}

	return b.String()
}

func label(n model.Node) string {
	switch n := n.(type) {
	case *model.ClassMapping:
		return n.Type.String()
	case *model.CompositeElementMapping:
		return n.Type.String()
	case *model.ComponentMapping:
		return n.Member
	case *model.IdentityMapping:
		return n.Member
	case *model.VersionMapping:
		return n.Member
	case *model.PropertyMapping:
		return n.Member
	case *model.ManyToOneMapping:
		return n.Member
	case *model.CollectionMapping:
		return n.Member + " " + n.Shape.String()
	default:
		return ""
	}
}
