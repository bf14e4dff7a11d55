package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"contexta/internal/handlers"
)

type fakeDeleter struct {
	sourceType string
	deleted    int64
	err        error
}

func (f *fakeDeleter) DeleteSource(_ context.Context, sourceType string) (int64, error) {
	f.sourceType = sourceType
	return f.deleted, f.err
}

func newContextRouter(deleter *fakeDeleter) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodDelete, "/api/context/{sourceType}", handlers.NewContextHandler(deleter))
	return r
}

func TestContextHandlerDelete(t *testing.T) {
	deleter := &fakeDeleter{deleted: 12}
	router := newContextRouter(deleter)

	req := httptest.NewRequest(http.MethodDelete, "/api/context/document", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if deleter.sourceType != "document" {
		t.Errorf("expected document source type, got %q", deleter.sourceType)
	}

	var resp handlers.DeleteResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Deleted != 12 {
		t.Errorf("expected 12 deleted, got %d", resp.Deleted)
	}
}

func TestContextHandlerUnknownSourceType(t *testing.T) {
	deleter := &fakeDeleter{}
	router := newContextRouter(deleter)

	req := httptest.NewRequest(http.MethodDelete, "/api/context/everything", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if deleter.sourceType != "" {
		t.Error("expected no delete call for unknown source type")
	}
}

func TestContextHandlerDeleteFailure(t *testing.T) {
	deleter := &fakeDeleter{err: errors.New("index unavailable")}
	router := newContextRouter(deleter)

	req := httptest.NewRequest(http.MethodDelete, "/api/context/image", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
