package format

import (
	"io"

	"github.com/dhamidi/jpp/java/tree"
)

// JavaEncoder writes the source text of a tree.
type JavaEncoder struct {
	w io.Writer
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(n tree.Node) error {
	text, err := e.MarshalText(n)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText(n tree.Node) ([]byte, error) {
	return []byte(n.Code() + "\n"), nil
}

// TreeTextEncoder writes one line per node, indented by depth.
type TreeTextEncoder struct {
	w io.Writer
}

func NewTreeTextEncoder(w io.Writer) *TreeTextEncoder {
	return &TreeTextEncoder{w: w}
}

func (e *TreeTextEncoder) Encode(n tree.Node) error {
	_, err := io.WriteString(e.w, tree.Dump(n))
	return err
}
