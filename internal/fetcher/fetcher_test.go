// ABOUTME: Tests for the URL fetcher and markup stripping
// ABOUTME: Uses httptest servers to simulate pages, errors, and timeouts

package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch_StripsMarkup(t *testing.T) {
	page := `<html><head><title>Help</title><style>body { color: red; }</style></head>
<body><script>alert("nope")</script>
<h1>Getting   started</h1>
<p>Play &amp; enjoy the game.</p>
<!-- internal note -->
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("User-Agent = %q, want browser identity", got)
		}
		w.Write([]byte(page))
	}))
	defer srv.Close()

	text, err := New(0).Fetch(srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	want := "Help Getting started Play & enjoy the game."
	if text != want {
		t.Errorf("Fetch() = %q, want %q", text, want)
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"redirect loop sentinel", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			if _, err := New(0).Fetch(srv.URL); err == nil {
				t.Errorf("Fetch() with status %d should fail", tt.status)
			}
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := New(20 * time.Millisecond)
	if _, err := f.Fetch(srv.URL); err == nil {
		t.Error("Fetch() should fail when the server is slower than the timeout")
	}
}

func TestFetch_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := New(0).Fetch(url); err == nil {
		t.Error("Fetch() should fail for a closed server")
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "already plain", "already plain"},
		{"collapses whitespace", "a \t b\n\n c", "a b c"},
		{"drops nested tags", "<div><span>nested</span> text</div>", "nested text"},
		{"drops multiline script", "<script>\nvar x = 1;\n</script>after", "after"},
		{"unescapes entities", "fish &amp; chips", "fish & chips"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.input); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
