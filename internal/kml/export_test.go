package kml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleDoc(t *testing.T) (*Store, string) {
	t.Helper()
	s := NewStore()
	s.Add(45.5, -73.5, "/photos/trip/img.jpg", "trip")
	s.Add(48.85, 2.35, "/photos/paris/tower.jpg", "paris")
	s.Reorder()
	s.Filter(0)
	return s, "Sample"
}

func TestRenderPrettyOutput(t *testing.T) {
	s, name := sampleDoc(t)
	doc, _, err := Build(s, name, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	out := Render(doc)
	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("output missing XML declaration: %q", out[:min(40, len(out))])
	}
	if !strings.Contains(out, `<kml xmlns="`+Namespace+`"`) {
		t.Fatal("output missing namespaced kml root")
	}
	if !strings.Contains(out, "\n  <Document>") {
		t.Fatal("output not indented")
	}
}

func TestRenderDoesNotMutateDocument(t *testing.T) {
	s, name := sampleDoc(t)
	doc, _, err := Build(s, name, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	before, _ := doc.WriteToString()
	Render(doc)
	after, _ := doc.WriteToString()
	if before != after {
		t.Fatal("Render must pretty-print a copy, not the document itself")
	}
}

func TestCompactIsSmallerThanPretty(t *testing.T) {
	s, name := sampleDoc(t)
	doc, _, err := Build(s, name, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	pretty := Render(doc)
	compact := Compact(doc)
	if len(compact) >= len(pretty) {
		t.Fatalf("compact output (%d bytes) not smaller than pretty (%d bytes)",
			len(compact), len(pretty))
	}
	if !strings.Contains(compact, "<Document>") {
		t.Fatal("compact output lost the Document element")
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct{ in, want string }{
		{"map.kml", "map.kml"},
		{"map.KML", "map.KML"},
		{"map", "map.kml"},
		{"map.txt", "map.kml"},
		{"dir/out.xml", "dir/out.kml"},
		{"archive.tar.gz", "archive.tar.kml"},
	}
	for _, tt := range tests {
		if got := NormalizeExtension(tt.in); got != tt.want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.kml")
	if err := WriteFile(path, "<kml/>"); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<kml/>" {
		t.Fatalf("content = %q, want %q", data, "<kml/>")
	}
}

func TestWriteFileReportsFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.kml")
	if err := WriteFile(path, "<kml/>"); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
