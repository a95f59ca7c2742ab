package treemap

import (
	"fmt"
	"io"

	"github.com/npillmayer/treemap/avl"
)

type nodeids[K, V any] struct {
	idTable map[*avl.Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*avl.Node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *avl.Node[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *avl.Node[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Map2Dot outputs the internal structure of a Map in Graphviz DOT format
// (for debugging purposes).
func Map2Dot[K, V any](m *Map[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	for node := m.tree.First(); node != nil; node = node.Next() {
		ID := ids.alloc(node)
		isleaf := node.Left() == nil && node.Right() == nil
		label := fmt.Sprintf("%v\\nh=%d", node.Key(), node.Height())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(isleaf))
		for _, child := range []*avl.Node[K, V]{node.Left(), node.Right()} {
			if child == nil {
				continue
			}
			cid := ids.alloc(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, cid)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
