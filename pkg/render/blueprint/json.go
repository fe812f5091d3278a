package blueprint

import (
	"encoding/json"

	"github.com/matzehuels/sash/pkg/layout"
)

type jsonOutput struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Boxes  []jsonBox `json:"boxes"`
}

type jsonBox struct {
	ID        string `json:"id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Depth     int    `json:"depth"`
	Container bool   `json:"container,omitempty"`
}

// RenderJSON exports the flattened tree as a pretty-printed JSON document.
// The box order matches [Flatten], so output is deterministic for a given
// tree and diffs cleanly across runs.
func RenderJSON(root layout.Control) ([]byte, error) {
	frame := root.Bounds()
	out := jsonOutput{
		Width:  frame.W,
		Height: frame.H,
		Boxes:  buildJSONBoxes(root),
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONBoxes(root layout.Control) []jsonBox {
	flat := Flatten(root)
	boxes := make([]jsonBox, 0, len(flat))
	for _, b := range flat {
		boxes = append(boxes, jsonBox{
			ID:        b.ID,
			X:         b.Bounds.X,
			Y:         b.Bounds.Y,
			Width:     b.Bounds.W,
			Height:    b.Bounds.H,
			Depth:     b.Depth,
			Container: b.Container,
		})
	}
	return boxes
}
