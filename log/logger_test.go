package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("test")

	SetLevel(Notice)
	logger.Debug("hidden debug")
	logger.Notice("visible notice")

	out := buf.String()
	if strings.Contains(out, "hidden debug") {
		t.Fatalf("expected debug message to be filtered at notice level; got %q", out)
	}
	if !strings.Contains(out, "[test] [NOTICE] visible notice") {
		t.Fatalf("expected notice message in output; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("frame %d", 42)
	if !strings.Contains(buf.String(), "[test] [DEBUG] frame 42") {
		t.Fatalf("expected debug message after raising verbosity; got %q", buf.String())
	}
}

func TestNonTerminalSinkIsPlain(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	New("test").Warning("no colors")
	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("expected no color escapes for a non-terminal sink; got %q", buf.String())
	}
}
