package blueprint

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(nestedTree(t))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Width != 200 || out.Height != 100 {
		t.Errorf("frame = %dx%d, want 200x100", out.Width, out.Height)
	}
	if len(out.Boxes) != 4 {
		t.Fatalf("boxes count = %d, want 4", len(out.Boxes))
	}

	root := out.Boxes[0]
	if root.ID != "shell" || root.Depth != 0 || !root.Container {
		t.Errorf("boxes[0] = %+v, want the shell at depth 0", root)
	}
	inner := out.Boxes[2]
	if inner.ID != "inner" || inner.X != 10 || inner.Y != 5 || inner.Width != 180 || inner.Height != 45 {
		t.Errorf("boxes[2] = %+v, want inner at (10, 5, 180, 45)", inner)
	}
	if inner.Depth != 2 || inner.Container {
		t.Errorf("inner depth/container = %d/%v, want 2/false", inner.Depth, inner.Container)
	}
}

func TestRenderJSONDeterministic(t *testing.T) {
	tree := nestedTree(t)

	first, err := RenderJSON(tree)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	second, err := RenderJSON(tree)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("RenderJSON() output differs between runs")
	}
}
