package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/accountgen/internal/crypto"
	"github.com/vaultpass/accountgen/internal/export"
	"github.com/vaultpass/accountgen/internal/model"
	"github.com/vaultpass/accountgen/internal/service"
)

type memClipboard struct {
	content string
	err     error
}

func (c *memClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.content = text
	return nil
}

type testServer struct {
	router    chi.Router
	svc       *service.GeneratorService
	clipboard *memClipboard
	fs        afero.Fs
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	svc := service.NewGeneratorService(crypto.MathSource{}, nil, service.WithDelay(0))
	cb := &memClipboard{}
	fs := afero.NewMemMapFs()
	h := NewGeneratorHandler(svc, export.NewExporter(cb, &export.DirSaver{Fs: fs, Dir: "/out"}, nil))

	r := chi.NewRouter()
	r.Post("/api/v1/generate", h.HandleGenerate)
	r.Get("/api/v1/items", h.HandleListItems)
	r.Get("/api/v1/items/export.csv", h.HandleExportCSV)
	r.Get("/api/v1/items/export.txt", h.HandleExportText)
	r.Post("/api/v1/items/copy", h.HandleCopyAll)
	r.Post("/api/v1/items/download", h.HandleDownload)
	r.Post("/api/v1/items/{id}/copy", h.HandleCopyField)

	return &testServer{router: r, svc: svc, clipboard: cb, fs: fs}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) seed(t *testing.T) []model.GeneratedItem {
	t.Helper()
	items, err := s.svc.Generate(context.Background(), model.GenerationOptions{PasswordLength: 8, Quantity: 2})
	require.NoError(t, err)
	return items
}

func decodeBatch(t *testing.T, rec *httptest.ResponseRecorder) model.BatchResponse {
	t.Helper()
	var resp model.BatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantItems    int
		wantLength   int
		wantStrength string
	}{
		{name: "empty body uses defaults", wantStatus: http.StatusOK, wantItems: 5, wantLength: 12, wantStrength: "strong"},
		{name: "custom", body: `{"length":6,"quantity":20,"symbols":false}`, wantStatus: http.StatusOK, wantItems: 20, wantLength: 6, wantStrength: "weak"},
		{name: "medium", body: `{"length":10,"quantity":1}`, wantStatus: http.StatusOK, wantItems: 1, wantLength: 10, wantStrength: "medium"},
		{name: "length out of range", body: `{"length":30}`, wantStatus: http.StatusBadRequest},
		{name: "quantity out of range", body: `{"quantity":21}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"length":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := s.do(http.MethodPost, "/api/v1/generate", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			resp := decodeBatch(t, rec)
			assert.Len(t, resp.Items, tt.wantItems)
			assert.Equal(t, tt.wantStrength, resp.Strength)
			for _, item := range resp.Items {
				assert.Len(t, item.Password, tt.wantLength)
			}
		})
	}
}

func TestHandleGenerate_SymbolsDisabled(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodPost, "/api/v1/generate", `{"length":24,"quantity":20,"uppercase":false,"numbers":false,"symbols":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, item := range decodeBatch(t, rec).Items {
		for _, ch := range item.Password {
			assert.True(t, ch >= 'a' && ch <= 'z', "unexpected character %q", ch)
		}
	}
}

func TestHandleListItems(t *testing.T) {
	s := newTestServer(t)

	resp := decodeBatch(t, s.do(http.MethodGet, "/api/v1/items", ""))
	assert.Empty(t, resp.Items)
	assert.NotNil(t, resp.Items)
	assert.False(t, resp.Generating)

	items := s.seed(t)
	resp = decodeBatch(t, s.do(http.MethodGet, "/api/v1/items", ""))
	assert.Equal(t, items, resp.Items)
}

func TestHandleExportCSV(t *testing.T) {
	s := newTestServer(t)
	items := s.seed(t)

	rec := s.do(http.MethodGet, "/api/v1/items/export.csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=accounts.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, export.CSV(items), rec.Body.String())
}

func TestHandleExportText(t *testing.T) {
	s := newTestServer(t)
	items := s.seed(t)

	rec := s.do(http.MethodGet, "/api/v1/items/export.txt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ClipboardText(items), rec.Body.String())
}

func TestHandleCopyField(t *testing.T) {
	s := newTestServer(t)
	items := s.seed(t)

	rec := s.do(http.MethodPost, "/api/v1/items/"+items[1].ID+"/copy?field=password", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, items[1].Password, s.clipboard.content)

	rec = s.do(http.MethodPost, "/api/v1/items/"+items[0].ID+"/copy?field=username", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, items[0].Username, s.clipboard.content)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/v1/items/nope/copy?field=password", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/items/"+items[0].ID+"/copy?field=email", "").Code)

	s.clipboard.err = errors.New("no clipboard")
	assert.Equal(t, http.StatusInternalServerError, s.do(http.MethodPost, "/api/v1/items/"+items[0].ID+"/copy?field=username", "").Code)
}

func TestHandleCopyAll(t *testing.T) {
	s := newTestServer(t)
	items := s.seed(t)

	rec := s.do(http.MethodPost, "/api/v1/items/copy", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, export.ClipboardText(items), s.clipboard.content)
}

func TestHandleDownload(t *testing.T) {
	s := newTestServer(t)
	items := s.seed(t)

	rec := s.do(http.MethodPost, "/api/v1/items/download", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	data, err := afero.ReadFile(s.fs, resp["path"])
	require.NoError(t, err)
	assert.Equal(t, export.CSV(items), string(data))
}
