package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeSliderFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderFilesKeepsArgumentOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := []string{
		writeSliderFile(t, dir, "one.toml", "arcColor = '#111'\n"),
		writeSliderFile(t, dir, "pair.json", `{"sliders": [{"arcColor": "#222"}, {"arcColor": "#333"}]}`),
	}

	docs, err := renderFiles(context.Background(), paths, svgOptions{})
	if err != nil {
		t.Fatalf("renderFiles() error = %v", err)
	}

	var names []string
	for _, d := range docs {
		names = append(names, d.name)
	}
	if diff := cmp.Diff([]string{"one.svg", "pair-1.svg", "pair-2.svg"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	for i, colour := range []string{"#111", "#222", "#333"} {
		if !bytes.Contains(docs[i].body, []byte(colour)) {
			t.Errorf("%s missing %s", docs[i].name, colour)
		}
	}
}

func TestRenderFilesFailsOnBadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := []string{
		writeSliderFile(t, dir, "good.toml", ""),
		writeSliderFile(t, dir, "bad.json", "{"),
	}

	_, err := renderFiles(context.Background(), paths, svgOptions{})
	if err == nil || !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("renderFiles() error = %v, want one naming bad.json", err)
	}
}

func TestApplyValuesAddsHandle2(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeSliderFile(t, dir, "s.toml", "")
	docs, err := renderFiles(context.Background(), []string{path}, svgOptions{value1: 10, set1: true, value2: 90, set2: true})
	if err != nil {
		t.Fatal(err)
	}
	// track, two progress arcs and two knobs
	if got := bytes.Count(docs[0].body, []byte("<path")); got != 5 {
		t.Errorf("got %d paths, want 5", got)
	}
}

func TestWriteDocs(t *testing.T) {
	t.Parallel()

	docs := []svgDoc{{name: "a.svg", body: []byte("<svg a/>")}, {name: "b.svg", body: []byte("<svg b/>")}}

	var stdout bytes.Buffer
	if err := writeDocs(&stdout, "", docs); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "<svg a/><svg b/>" {
		t.Errorf("stdout = %q", stdout.String())
	}

	dir := filepath.Join(t.TempDir(), "out")
	if err := writeDocs(&stdout, dir, docs); err != nil {
		t.Fatal(err)
	}
	for _, d := range docs {
		b, err := os.ReadFile(filepath.Join(dir, d.name))
		if err != nil || !bytes.Equal(b, d.body) {
			t.Errorf("%s = %q, %v", d.name, b, err)
		}
	}

	single := filepath.Join(t.TempDir(), "only.svg")
	if err := writeDocs(&stdout, single, docs[:1]); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(single); err != nil {
		t.Errorf("single output not written: %v", err)
	}
}
