package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pixelSrc = `#version 330 core
layout(std140) uniform TimeBuffer { float elapsedTime; };
out vec4 fragColor;
void main() {
	fragColor = vec4(sin(elapsedTime));
}
`

func TestParse(t *testing.T) {
	type spec struct {
		src    string
		expErr error
	}
	specs := []spec{
		spec{pixelSrc, nil},
		spec{"void main(void){}", nil},
		spec{"  void   main ( ) {}", nil},
		spec{"#version 330 core\nout vec4 c; void main(){ c = vec4(1.0); }\n", nil},
		spec{"float f(){ return 1.0; } void main() {}", nil},
		spec{"", ErrEmptySource},
		spec{" \n\t\n", ErrEmptySource},
		spec{"\x00\x00", ErrEmptySource},
		spec{"void mainImage(out vec4 c) {}", ErrNoEntryPoint},
		spec{"out vec4 c; voidmain() {}", ErrNoEntryPoint},
		spec{"// void main() {}\nvoid other() {}", ErrNoEntryPoint},
		spec{"/* void main() {} */ void other() {}", ErrNoEntryPoint},
	}

	for index, s := range specs {
		code, err := Parse([]byte(s.src))
		if err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
		if err != nil {
			continue
		}
		if !strings.HasSuffix(code, "\x00") || strings.Count(code, "\x00") != 1 {
			t.Fatalf("[spec %d] expected code to be NUL-terminated exactly once; got %q", index, code)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultPixelFile)
	if err := os.WriteFile(path, []byte(pixelSrc), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Load(path, Pixel)
	if err != nil {
		t.Fatal(err)
	}
	if src.Stage != Pixel || src.Path != path {
		t.Fatalf("expected pixel source for %s; got %s source for %s", path, src.Stage, src.Path)
	}
	if src.Code != pixelSrc+"\x00" {
		t.Fatalf("expected loaded code to match file contents")
	}

	_, err = Load(filepath.Join(dir, "missing.glsl"), Vertex)
	if err == nil || !strings.Contains(err.Error(), "could not read vertex shader") {
		t.Fatalf("expected read error for missing file; got %v", err)
	}

	empty := filepath.Join(dir, "empty.glsl")
	if err = os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(empty, Vertex)
	if err == nil || !strings.HasPrefix(err.Error(), ErrEmptySource.Error()) {
		t.Fatalf("expected empty source error; got %v", err)
	}
}

func TestStageString(t *testing.T) {
	if Vertex.String() != "vertex" || Pixel.String() != "pixel" {
		t.Fatalf("unexpected stage names %q, %q", Vertex, Pixel)
	}
	if got := Stage(9).String(); got != "stage(9)" {
		t.Fatalf("expected 'stage(9)'; got %q", got)
	}
}
