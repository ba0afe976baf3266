package figma

import (
	"encoding/json"
	"io"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/errors"
)

// selectionEnvelope is the object form of a selection export. The plugin
// sends {"selection": [...]}; a bare top-level array is accepted too so
// hand-written fixtures stay short.
type selectionEnvelope struct {
	Selection []*Node `json:"selection"`
}

// DecodeSelection decodes a selection export into its top-level nodes.
// The returned slice preserves the plugin's selection order.
func DecodeSelection(data []byte) ([]*Node, error) {
	trimmed := firstByte(data)
	switch trimmed {
	case '[':
		var nodes []*Node
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSelection, err, "decode selection array")
		}
		return nodes, nil
	case '{':
		var env selectionEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSelection, err, "decode selection object")
		}
		return env.Selection, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSelection, "selection export must be a JSON array or object")
	}
}

// ReadSelection decodes a selection export from r.
func ReadSelection(r io.Reader) ([]*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSelection, err, "read selection")
	}
	return DecodeSelection(data)
}

// firstByte returns the first non-whitespace byte of data, or 0.
func firstByte(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
