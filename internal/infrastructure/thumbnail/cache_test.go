package thumbnail

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCache_FetchAndRender(t *testing.T) {
	data := pngBytes(t, 16, 9)
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if strings.Contains(r.URL.Path, "missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(data)
	}))
	defer server.Close()

	cache := New(t.TempDir(), 2, 5*time.Second)
	fetched, err := cache.Fetch(context.Background(), []Request{
		{ID: "a", URL: server.URL + "/a.jpg"},
		{ID: "b", URL: server.URL + "/b.jpg"},
		{ID: "a", URL: server.URL + "/a.jpg"},
		{ID: "c", URL: server.URL + "/missing.jpg"},
		{ID: "", URL: server.URL + "/x.jpg"},
	})
	if err == nil || !strings.Contains(err.Error(), "thumbnail c") {
		t.Fatalf("expected error for c, got %v", err)
	}
	if len(fetched) != 2 {
		t.Fatalf("fetched %v, want a and b", fetched)
	}
	if hits.Load() != 3 {
		t.Fatalf("hits = %d, want 3 (duplicates and empty ids skipped)", hits.Load())
	}
	if !cache.Has("a") || cache.Has("c") {
		t.Fatal("unexpected cache contents")
	}

	// Cached files are not downloaded again.
	if _, err := cache.Fetch(context.Background(), []Request{{ID: "a", URL: server.URL + "/a.jpg"}}); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 3 {
		t.Fatalf("cached thumbnail downloaded again")
	}

	out := cache.Render("a", 16, 10)
	if out == "" {
		t.Fatal("expected rendered thumbnail")
	}
	lines := strings.Split(out, "\n")
	if len(lines) > 10 {
		t.Fatalf("rendered %d lines, max 10", len(lines))
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > 16 {
			t.Fatalf("line width %d exceeds 16", w)
		}
	}
	if cache.Render("a", 16, 10) != out {
		t.Fatal("memoized render differs")
	}
	if cache.Render("c", 16, 10) != "" {
		t.Fatal("missing thumbnail should render nothing")
	}
	if cache.Render("a", 0, 10) != "" {
		t.Fatal("zero width should render nothing")
	}
}

func TestCache_PathSanitizesID(t *testing.T) {
	cache := New(t.TempDir(), 1, time.Second)
	p := cache.Path("../etc/passwd")
	if strings.Contains(p, "..") {
		t.Fatalf("path not sanitized: %s", p)
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		srcW, srcH, maxW, maxH int
		wantW, wantH           int
	}{
		{480, 360, 40, 20, 26, 20},
		{480, 360, 20, 40, 20, 15},
		{0, 10, 5, 5, 0, 0},
	}
	for _, tt := range tests {
		w, h := fitSize(tt.srcW, tt.srcH, tt.maxW, tt.maxH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fitSize(%d,%d,%d,%d) = %d,%d; want %d,%d", tt.srcW, tt.srcH, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestAtomicWriterAbort(t *testing.T) {
	dir := t.TempDir()
	w, err := newAtomicWriter(dir + "/x.jpg")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = w.Write([]byte("partial"))
	w.Abort()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("abort left files behind: %v", entries)
	}
}
