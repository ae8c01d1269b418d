package tree

import (
	"fmt"
	"io"

	"github.com/ms-henglu/valkit/internal/value"
)

type Node struct {
	Name     string
	Children []*Node
}

// FromValue builds a tree for v labeled name. Primitives become leaves named
// "name: <json>", containers become branches whose children are the members
// in order; sequence members are labeled by index.
func FromValue(name string, v value.Value) *Node {
	switch v.Kind() {
	case value.Sequence:
		node := &Node{Name: fmt.Sprintf("%s (%d)", name, v.Len())}
		for i, item := range v.Items() {
			node.Children = append(node.Children, FromValue(fmt.Sprintf("[%d]", i), item))
		}
		return node
	case value.Mapping:
		node := &Node{Name: name}
		for _, k := range v.Keys() {
			item, _ := v.Get(k)
			node.Children = append(node.Children, FromValue(k, item))
		}
		return node
	default:
		return &Node{Name: name + ": " + v.String()}
	}
}

// Fprint draws node and its descendants with box-drawing connectors.
func Fprint(w io.Writer, node *Node) {
	_, _ = fmt.Fprintln(w, node.Name)
	printChildren(w, node, "")
}

func printChildren(w io.Writer, node *Node, prefix string) {
	for i, child := range node.Children {
		isLast := i == len(node.Children)-1
		printNode(w, child, prefix, isLast)
	}
}

func printNode(w io.Writer, node *Node, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}

	_, _ = fmt.Fprintf(w, "%s%s%s\n", prefix, connector, node.Name)

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}

	printChildren(w, node, childPrefix)
}
