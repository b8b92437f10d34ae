// Package shader loads GLSL sources for the preview pipeline.
package shader

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/achilleasa/shaderlab/asset"
)

// Stage identifies the pipeline stage a shader source targets.
type Stage uint8

const (
	Vertex Stage = iota
	Pixel
)

// Default source files for each stage, resolved against the working directory.
// Sources may also be loaded from http/https URLs.
const (
	DefaultVertexFile = "VertexShader.glsl"
	DefaultPixelFile  = "PixelShader.glsl"
)

var (
	ErrEmptySource  = errors.New("shader: empty source")
	ErrNoEntryPoint = errors.New("shader: source does not define main()")
)

var entryPointRegex = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Pixel:
		return "pixel"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Source is a NUL-terminated GLSL source ready to be handed to the driver.
type Source struct {
	Path  string
	Stage Stage
	Code  string
}

// Load reads and validates the source for a shader stage. The returned code is
// NUL-terminated.
func Load(path string, stage Stage) (*Source, error) {
	data, err := asset.ReadAll(path)
	if err != nil {
		return nil, fmt.Errorf("shader: could not read %s shader '%s': %s", stage, path, err.Error())
	}

	code, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s (%s shader '%s')", err.Error(), stage, path)
	}

	return &Source{Path: path, Stage: stage, Code: code}, nil
}

// Parse validates raw GLSL source and returns it NUL-terminated.
func Parse(data []byte) (string, error) {
	data = bytes.TrimRight(data, "\x00")
	if len(bytes.TrimSpace(data)) == 0 {
		return "", ErrEmptySource
	}
	if !entryPointRegex.Match(stripComments(data)) {
		return "", ErrNoEntryPoint
	}

	return string(data) + "\x00", nil
}

var (
	lineCommentRegex  = regexp.MustCompile(`//[^\n]*`)
	blockCommentRegex = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

func stripComments(data []byte) []byte {
	data = blockCommentRegex.ReplaceAll(data, nil)
	return lineCommentRegex.ReplaceAll(data, nil)
}
