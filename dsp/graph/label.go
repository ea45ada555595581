package graph

import (
	"fmt"
	"strings"
)

// SplitLabel splits "node.port" at its last ".". Node names may contain dots.
func SplitLabel(label string) (node, port string, err error) {
	i := strings.LastIndexByte(label, '.')
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q has no '.'", ErrLabelFormat, label)
	}
	return label[:i], label[i+1:], nil
}

// Label joins a node name and a port name.
func Label(node, port string) string {
	return node + "." + port
}

func portIndex(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
