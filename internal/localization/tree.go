package localization

import (
	"fmt"
	"strings"
)

// Node is one level of a translation dictionary: either Text or a Branch
type Node interface {
	node()
}

// Text is a translated string
type Text string

// Branch maps a key segment to a nested node
type Branch map[string]Node

func (Text) node()   {}
func (Branch) node() {}

// KeySeparator splits a lookup key into path segments
const KeySeparator = "."

// Lookup walks root one segment of key at a time. It reports false when a
// step reaches a non-branch node, a segment is missing, or the final node is
// not text.
func Lookup(root Node, key string) (string, bool) {
	current := root
	for _, segment := range strings.Split(key, KeySeparator) {
		branch, ok := current.(Branch)
		if !ok {
			return "", false
		}
		next, ok := branch[segment]
		if !ok {
			return "", false
		}
		current = next
	}

	text, ok := current.(Text)
	if !ok {
		return "", false
	}
	return string(text), true
}

// buildTree converts a decoded YAML document into a Branch. Scalars other
// than strings and sequences have no node type and are left out, so lookups
// that end on them miss.
func buildTree(raw map[string]any) Branch {
	branch := make(Branch, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			branch[key] = Text(v)
		case map[string]any:
			branch[key] = buildTree(v)
		case map[any]any:
			branch[key] = buildTree(stringKeys(v))
		}
	}
	return branch
}

func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = v
	}
	return out
}
