package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFormScene = `
[shell]
width = 200
height = 100

[shell.layout]
kind = "fill"

[[control]]
name = "panel"
kind = "composite"

[control.layout]
kind = "form"

[[control]]
name = "ok"
parent = "panel"
width = 60
height = 25

[control.form.right]
percent = 100
`

func TestRunGraphDOT(t *testing.T) {
	scenePath := writeScene(t, testFormScene)
	out := filepath.Join(filepath.Dir(scenePath), "graph.dot")

	opts := graphOpts{output: out, format: "dot"}
	if err := runGraph(context.Background(), scenePath, &opts); err != nil {
		t.Fatalf("runGraph() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	dot := string(data)
	if !strings.Contains(dot, "digraph attachments {") {
		t.Errorf("DOT output missing header:\n%s", dot)
	}
	if !strings.Contains(dot, `"ok" -> "panel"`) {
		t.Errorf("DOT output missing attachment edge:\n%s", dot)
	}
}

func TestRunGraphToleratesCycle(t *testing.T) {
	scenePath := writeScene(t, testCyclicScene)
	out := filepath.Join(filepath.Dir(scenePath), "graph.dot")

	opts := graphOpts{output: out, format: "dot"}
	if err := runGraph(context.Background(), scenePath, &opts); err != nil {
		t.Fatalf("runGraph() error = %v, want cycle tolerated", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "color=red") {
		t.Errorf("cycle edges not painted red:\n%s", data)
	}
}

func TestRunGraphExplicitTarget(t *testing.T) {
	scenePath := writeScene(t, testFormScene)
	out := filepath.Join(filepath.Dir(scenePath), "graph.dot")

	opts := graphOpts{output: out, format: "dot", target: "shell"}
	if err := runGraph(context.Background(), scenePath, &opts); err != nil {
		t.Fatalf("runGraph() error = %v", err)
	}
}

func TestRunGraphUnknownTarget(t *testing.T) {
	scenePath := writeScene(t, testFormScene)

	opts := graphOpts{format: "dot", target: "ghost"}
	if err := runGraph(context.Background(), scenePath, &opts); err == nil {
		t.Error("runGraph() error = nil, want unknown target failure")
	}
}

func TestRunGraphInvalidFormat(t *testing.T) {
	scenePath := writeScene(t, testFormScene)

	opts := graphOpts{format: "pdf"}
	if err := runGraph(context.Background(), scenePath, &opts); err == nil {
		t.Error("runGraph() error = nil, want invalid format failure")
	}
}

func TestRunGraphMissingFile(t *testing.T) {
	opts := graphOpts{format: "dot"}
	if err := runGraph(context.Background(), "does-not-exist.toml", &opts); err == nil {
		t.Error("runGraph() error = nil, want load failure")
	}
}
