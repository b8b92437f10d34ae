package asset

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := Open(thisFile)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatalf("expected %s to be a local resource", thisFile)
	}
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := Open(fetchUrl)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if !res.IsRemote() || res.Path() != fetchUrl {
		t.Fatalf("expected remote resource with path %s; got %s", fetchUrl, res.Path())
	}

	fetchUrl = server.URL + "/file-not-found.foo"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = Open(fetchUrl)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestReadAll(t *testing.T) {
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/PixelShader.glsl" {
			w.Write([]byte("void main() {}"))
		} else {
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	data, err := ReadAll(server.URL + "/PixelShader.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "void main() {}" {
		t.Fatalf("expected remote shader contents; got %q", data)
	}

	localFile := filepath.Join(t.TempDir(), "VertexShader.glsl")
	if err = os.WriteFile(localFile, []byte("local"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err = ReadAll(localFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "local" {
		t.Fatalf("expected local shader contents; got %q", data)
	}
}

func TestReadAllSizeLimit(t *testing.T) {
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", maxResourceSize+1)))
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	_, err := ReadAll(server.URL + "/huge.glsl")
	if err == nil || !strings.Contains(err.Error(), "size limit") {
		t.Fatalf("expected size limit error; got %v", err)
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := Open("gopher://digging.go")
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestLocalResourceNamesAreNotUrls(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"shader#1.glsl",
		"what?.glsl",
		"my%20shader.glsl",
		"100%.glsl",
		"a b.glsl",
	}

	for index, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}

		data, err := ReadAll(path)
		if err != nil {
			t.Fatalf("[spec %d] unexpected error reading %q: %v", index, name, err)
		}
		if string(data) != name {
			t.Fatalf("[spec %d] expected contents %q; got %q", index, name, data)
		}
	}

	// Decoding the name would open a file that does exist.
	if err := os.WriteFile(filepath.Join(dir, "my shader.glsl"), []byte("decoded"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := ReadAll(filepath.Join(dir, "my%20shader.glsl"))
	if err != nil || string(data) != "my%20shader.glsl" {
		t.Fatalf("expected percent sequences to be kept verbatim; got %q, %v", data, err)
	}
}

func TestResourceScheme(t *testing.T) {
	type spec struct {
		in  string
		exp string
	}
	specs := []spec{
		spec{"PixelShader.glsl", ""},
		spec{"shaders/what?.glsl", ""},
		spec{`C:\shaders\pixel.glsl`, ""},
		spec{"C://shaders/pixel.glsl", ""},
		spec{"http://host/pixel.glsl", "http"},
		spec{"HTTPS://host/pixel.glsl", "https"},
		spec{"gopher://digging.go", "gopher"},
		spec{"dir with://colon.glsl", ""},
	}

	for index, s := range specs {
		if got := resourceScheme(s.in); got != s.exp {
			t.Fatalf("[spec %d] expected scheme %q for %q; got %q", index, s.exp, s.in, got)
		}
	}
}

func TestMissingLocalResource(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.glsl"))
	if err == nil || !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error; got %v", err)
	}
}
