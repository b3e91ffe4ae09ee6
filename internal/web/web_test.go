package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIndexServesPage(t *testing.T) {
	rec := httptest.NewRecorder()
	Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("expected html content type, got %q", rec.Header().Get("Content-Type"))
	}
	for _, id := range []string{`id="aluno-form"`, `id="curso-form"`, `/static/script.js`} {
		if !strings.Contains(rec.Body.String(), id) {
			t.Fatalf("expected page to contain %s", id)
		}
	}
}

func TestStaticServesScript(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/script.js", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "await carregarCursos();") || !strings.Contains(body, "await carregarAlunos();") {
		t.Fatalf("expected sequential course then student load in script")
	}
}
