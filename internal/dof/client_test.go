package dof

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"
)

const searchResultsPage = `<!DOCTYPE html>
<html><body>
<table>
<tr>
  <td>Decreto</td>
  <td>15/01/2024</td>
  <td><a href="/nota_detalle.php?codigo=123">DECRETO por el que se reforma la Ley de Amparo</a></td>
  <td>Reforma en materia de suspensión del acto reclamado</td>
</tr>
<tr>
  <td>Acuerdo</td>
  <td>16/01/2024</td>
  <td><a href="https://www.dof.gob.mx/nota_detalle.php?codigo=456">ACUERDO por el que se emiten reglas de carácter general</a></td>
  <td>Reglas generales en materia fiscal</td>
</tr>
<tr>
  <td><a href="/login.php">Login de usuario</a></td>
</tr>
</table>
</body></html>`

func TestSearchParsesResults(t *testing.T) {
	var gotForm atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/busqueda_detalle.php" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm.Store(r.PostForm.Encode())
		w.Write([]byte(searchResultsPage))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	results, err := client.Search(context.Background(), "ley de amparo", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	form, _ := gotForm.Load().(string)
	if !strings.Contains(form, "textobusqueda=ley+de+amparo") {
		t.Errorf("search query not posted: %s", form)
	}
	if !strings.Contains(form, "vienede=header") {
		t.Errorf("missing vienede parameter: %s", form)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(results), results)
	}
	first := results[0]
	if !strings.Contains(first.Title, "DECRETO") {
		t.Errorf("unexpected title: %s", first.Title)
	}
	if first.URL != server.URL+"/nota_detalle.php?codigo=123" {
		t.Errorf("relative URL not resolved: %s", first.URL)
	}
	if first.Date != "15/01/2024" {
		t.Errorf("unexpected date: %s", first.Date)
	}
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Title), "login") {
			t.Errorf("navigation row not skipped: %s", r.Title)
		}
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchResultsPage))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	results, err := client.Search(context.Background(), "reforma", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestSearchByTypeValidation(t *testing.T) {
	client := NewClient()
	if _, err := client.SearchByType(context.Background(), "circular", "", 5); err == nil {
		t.Error("expected error for unknown document type")
	}
}

func TestSearchByTypePrependsType(t *testing.T) {
	var gotQuery atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotQuery.Store(r.PostFormValue("textobusqueda"))
		w.Write([]byte(searchResultsPage))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	if _, err := client.SearchByType(context.Background(), "decreto", "salud", 5); err != nil {
		t.Fatalf("SearchByType failed: %v", err)
	}
	if q, _ := gotQuery.Load().(string); q != "decreto salud" {
		t.Errorf("expected query %q, got %q", "decreto salud", q)
	}
}

func TestDoRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(searchResultsPage))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithMaxRetries(5))
	if _, err := client.Search(context.Background(), "ley", 5); err != nil {
		t.Fatalf("Search failed after retries: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestDoDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithMaxRetries(5))
	if _, err := client.FetchDocument(context.Background(), server.URL+"/nota_detalle.php"); err == nil {
		t.Fatal("expected error for 404")
	}
	if calls.Load() != 1 {
		t.Errorf("404 must not be retried, got %d attempts", calls.Load())
	}
}

func TestDoHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(WithBaseURL(server.URL), WithMaxRetries(10))
	if _, err := client.Search(ctx, "ley", 5); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestFetchDocumentExtractsContent(t *testing.T) {
	page := `<html><body>
<div class="banner">Publicidad</div>
<div class="documento-contenido">
  <p>ARTÍCULO ÚNICO. Se reforma el artículo 107 de la Ley de Amparo.</p>
  <p>TRANSITORIOS</p>
</div>
</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	content, err := client.FetchDocument(context.Background(), server.URL+"/nota_detalle.php?codigo=123")
	if err != nil {
		t.Fatalf("FetchDocument failed: %v", err)
	}
	if !strings.Contains(content, "Se reforma el artículo 107") {
		t.Errorf("content not extracted: %s", content)
	}
	if strings.Contains(content, "Publicidad") {
		t.Errorf("content selector fell through to the whole page: %s", content)
	}
}

// Legacy pages are served as windows-1252; the client must decode them.
func TestFetchDocumentDecodesLegacyCharset(t *testing.T) {
	// "Constitución Política" in windows-1252 bytes inside a content div.
	body := append([]byte(`<html><body><div class="documento-contenido">Constituci`),
		0xF3, 'n', ' ', 'P', 'o', 'l', 0xED, 't', 'i', 'c', 'a')
	body = append(body, []byte(`</div></body></html>`)...)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	content, err := client.FetchDocument(context.Background(), server.URL+"/nota.php")
	if err != nil {
		t.Fatalf("FetchDocument failed: %v", err)
	}
	if !strings.Contains(content, "Constitución Política") {
		t.Errorf("legacy charset not decoded: %q", content)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	cases := []struct {
		text string
		max  int
		want string
	}{
		{"corto", 200, "corto"},
		{"abcdef", 4, "abcd"},
		// "ó" is two bytes; a cut inside it must back off to the boundary.
		{"promulgación", 10, "promulgaci"},
		{"promulgación", 11, "promulgaci"},
		{"promulgación", 12, "promulgació"},
	}
	for _, tc := range cases {
		got := truncate(tc.text, tc.max)
		if got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.text, tc.max, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tc.text, tc.max)
		}
	}
}
