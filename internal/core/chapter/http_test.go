// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/leio/internal/core/chapter"
	"github.com/taibuivan/leio/internal/platform/config"
	"github.com/taibuivan/leio/pkg/pagination"
)

// newTestRouter wires a real service over the seed corpus, no middleware.
func newTestRouter() http.Handler {
	return newTestRouterWithPageSize(pagination.DefaultLimit)
}

// newTestRouterWithPageSize is newTestRouter with a configured page size.
func newTestRouterWithPageSize(pageSize int) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := chapter.NewService(chapter.NewMemoryRepository(chapter.SeedCorpus()), logger)

	router := chi.NewRouter()
	router.Mount("/api/v1/chapters", chapter.NewHandler(service, pageSize).Routes())
	return router
}

type listEnvelope struct {
	Data []chapter.Chapter `json:"data"`
	Meta pagination.Meta   `json:"meta"`
}

type singleEnvelope struct {
	Data chapter.Chapter `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_ListChapters verifies pagination envelope and meta block.
*/
func TestHandler_ListChapters(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name        string
		path        string
		wantLen     int
		wantFirstID int
		wantHasMore bool
	}{
		{"default_first_page", "/api/v1/chapters", 5, 1, true},
		{"second_page", "/api/v1/chapters?page=2&limit=5", 5, 6, true},
		{"final_page", "/api/v1/chapters?page=3&limit=5", 2, 11, false},
		{"past_the_end", "/api/v1/chapters?page=9&limit=5", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, router, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, recorder.Code)

			var envelope listEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

			assert.Len(t, envelope.Data, tt.wantLen)
			assert.Equal(t, 12, envelope.Meta.Total)
			assert.Equal(t, tt.wantHasMore, envelope.Meta.HasMore)

			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirstID, envelope.Data[0].ID)
			}
		})
	}
}

/*
TestHandler_ListChapters_ConfiguredPageSize verifies the PAGE_SIZE knob
reaches the list endpoint: a handler built from the loaded configuration
serves that many chapters when the client sends no limit.
*/
func TestHandler_ListChapters_ConfiguredPageSize(t *testing.T) {
	t.Setenv("PAGE_SIZE", "2")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 2, cfg.PageSize)

	router := newTestRouterWithPageSize(cfg.PageSize)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/chapters", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, 2, envelope.Meta.Limit)
	assert.True(t, envelope.Meta.HasMore)

	// An explicit limit still overrides the configured default.
	recorder = doRequest(t, router, http.MethodGet, "/api/v1/chapters?limit=4", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 4)
}

/*
TestHandler_GetChapter covers single lookup and 404/400 paths.
*/
func TestHandler_GetChapter(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/chapters/7", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope singleEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 7, envelope.Data.ID)

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/chapters/999", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/chapters/zero", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHandler_ToggleRead verifies the read flag mutation returns the
authoritative record.
*/
func TestHandler_ToggleRead(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, http.MethodPut, "/api/v1/chapters/3/read", `{"read": true}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope singleEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 3, envelope.Data.ID)
	assert.True(t, envelope.Data.Read)

	// Unknown chapter
	recorder = doRequest(t, router, http.MethodPut, "/api/v1/chapters/999/read", `{"read": true}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Broken payload
	recorder = doRequest(t, router, http.MethodPut, "/api/v1/chapters/3/read", `{"read": "yes"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHandler_AddNote verifies note submission, including the empty-text rejection.
*/
func TestHandler_AddNote(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/chapters/5/notes", `{"text": "re-read the fsync section"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope singleEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, []string{"re-read the fsync section"}, envelope.Data.Notes)

	// Empty and whitespace-only notes are rejected with a validation error
	for _, body := range []string{`{"text": ""}`, `{"text": "   "}`} {
		recorder = doRequest(t, router, http.MethodPost, "/api/v1/chapters/5/notes", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var failure errorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &failure))
		assert.Equal(t, "VALIDATION_ERROR", failure.Code)
	}

	// Rejected notes must not have been stored
	recorder = doRequest(t, router, http.MethodGet, "/api/v1/chapters/5", "")
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, []string{"re-read the fsync section"}, envelope.Data.Notes)
}
