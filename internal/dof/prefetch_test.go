package dof

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestPrefetchLatest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/index.php":
			w.Write([]byte(`<html><body>
<a href="/nota_detalle.php?codigo=1">DECRETO por el que se reforma la Ley de Amparo</a>
<a href="/nota_detalle.php?codigo=2">ACUERDO sobre disposiciones generales en materia fiscal</a>
<a href="/nota_detalle.php?codigo=3">NORMA Oficial Mexicana de emergencia sanitaria</a>
</body></html>`))
		case "/nota_detalle.php":
			codigo := r.URL.Query().Get("codigo")
			if codigo == "2" {
				// One broken document must not abort the prefetch.
				w.WriteHeader(http.StatusNotFound)
				return
			}
			fmt.Fprintf(w, `<html><body><div class="documento-contenido">Contenido del documento %s</div></body></html>`, codigo)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cache, err := NewCache(filepath.Join(t.TempDir(), "dof.db"))
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}
	defer cache.Close()

	client := NewClient(WithBaseURL(server.URL))
	stored, err := client.PrefetchLatest(context.Background(), cache, 10)
	if err != nil {
		t.Fatalf("PrefetchLatest failed: %v", err)
	}
	if stored != 2 {
		t.Errorf("expected 2 stored publications, got %d", stored)
	}

	pub, err := cache.GetByURL(server.URL + "/nota_detalle.php?codigo=1")
	if err != nil {
		t.Fatalf("GetByURL failed: %v", err)
	}
	if pub == nil || pub.Content != "Contenido del documento 1" {
		t.Errorf("prefetched content not cached: %+v", pub)
	}

	stats, err := cache.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.WithContent != 2 {
		t.Errorf("expected 2 publications with content, got %d", stats.WithContent)
	}
}
