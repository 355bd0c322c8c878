package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/jpp/java/tree"
)

// TreeJSONEncoder writes a tree as nested JSON objects.
type TreeJSONEncoder struct {
	w io.Writer
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(n tree.Node) error {
	text, err := e.MarshalText(n)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *TreeJSONEncoder) MarshalText(n tree.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(n), "", "  ")
}

type treeJSONNode struct {
	Kind     string          `json:"kind"`
	Label    string          `json:"label,omitempty"`
	Doc      string          `json:"doc,omitempty"`
	Children []*treeJSONNode `json:"children,omitempty"`
}

func nodeToJSON(root tree.Node) *treeJSONNode {
	var top *treeJSONNode
	// Only leaf kinds are value types, so every parent is a distinct
	// pointer and can key the map.
	built := map[tree.Node]*treeJSONNode{}
	tree.Inspect(root, func(n, parent tree.Node) bool {
		jn := &treeJSONNode{Kind: n.Kind().String(), Label: tree.Label(n)}
		if d, ok := n.(tree.Documented); ok {
			jn.Doc = d.DocComment()
		}
		if parent == nil {
			top = jn
		} else if p, ok := built[parent]; ok {
			p.Children = append(p.Children, jn)
		}
		built[n] = jn
		return true
	})
	return top
}
