package format

import (
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/jpp/java/tree"
)

// Encoder writes a tree to an output stream.
type Encoder interface {
	Encode(n tree.Node) error
}

var encoders = map[string]func(io.Writer) Encoder{
	"java": func(w io.Writer) Encoder { return NewJavaEncoder(w) },
	"json": func(w io.Writer) Encoder { return NewTreeJSONEncoder(w) },
	"tree": func(w io.Writer) Encoder { return NewTreeTextEncoder(w) },
}

// EncoderNames lists the names accepted by NewEncoder.
func EncoderNames() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	newEncoder, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (known: %v)", name, EncoderNames())
	}
	return newEncoder(w), nil
}
