package avl

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// to control the print routine
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

var (
	innerColor = color.New(color.FgCyan)
	leafColor  = color.New(color.FgGreen)
)

// Fprint writes an ASCII rendering of the tree to w, right subtree
// first (on top), and returns the maximum depth. With useColor set,
// leaves and inner nodes are tinted differently. For debugging.
func (t *Tree[K, V]) Fprint(w io.Writer, useColor bool) int {
	if t == nil {
		return 0
	}
	return fprintSubtree(w, t.root, "", atRoot, useColor)
}

func fprintSubtree[K, V any](w io.Writer, p *Node[K, V], prefix string, br branch, useColor bool) int {
	if p == nil {
		return 0
	}
	rd, ld := 0, 0
	if p.right != nil {
		t := "       "
		if br == atLeft {
			t = "|      "
		}
		rd = fprintSubtree(w, p.right, prefix+t, atRight, useColor)
	}
	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	label := fmt.Sprintf("%v h=%d", p.key, p.height)
	if useColor {
		c := innerColor
		if p.left == nil && p.right == nil {
			c = leafColor
		}
		label = c.Sprint(label)
	}
	fmt.Fprintln(w, label)
	if p.left != nil {
		t := "       "
		if br == atRight {
			t = "|      "
		}
		ld = fprintSubtree(w, p.left, prefix+t, atLeft, useColor)
	}
	return 1 + max(rd, ld)
}
