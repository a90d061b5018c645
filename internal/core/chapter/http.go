// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// The HTTP interface for the chapter corpus: paging through chapters,
// reading a single chapter, and recording progress (read flags, notes).
//
// Routing strategy:
//
//   - All endpoints are public (v1): this tracker has no user accounts.
//   - Mutations are scoped per chapter ID and return the full updated record,
//     which is the authoritative state the reader client reconciles against.
//
// The handler translates between the web/JSON layer and the internal domain
// [Service].

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/leio/internal/platform/request"
	"github.com/taibuivan/leio/internal/platform/respond"
	"github.com/taibuivan/leio/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapter tracking.
type Handler struct {
	service *Service

	// pageSize is the default list limit when the client sends none
	// (PAGE_SIZE in the server configuration).
	pageSize int
}

// NewHandler constructs a new chapter [Handler].
//
// pageSize becomes the default list limit; out-of-range values fall back
// to [pagination.DefaultLimit].
func NewHandler(service *Service, pageSize int) *Handler {
	return &Handler{service: service, pageSize: pageSize}
}

// Routes returns the chapter route group, mounted under /api/v1/chapters.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.ListChapters)
	router.Get("/{id}", handler.GetChapter)
	router.Put("/{id}/read", handler.ToggleRead)
	router.Post("/{id}/notes", handler.AddNote)

	return router
}

// # Chapter Retrieval

/*
GET /api/v1/chapters.

Description: Returns one page of the chapter corpus with pagination metadata.

Request:
  - page: int (1-indexed, default 1)
  - limit: int (default: configured page size)

Response:
  - 200: []Chapter: Paginated list with meta block (total, has_more)
*/
func (handler *Handler) ListChapters(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequestWithLimit(request, handler.pageSize)

	chapters, total, err := handler.service.ListChapters(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, chapters, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/chapters/{id}.

Description: Returns the full record for a single chapter.

Request:
  - id: int (Chapter ID)

Response:
  - 200: Chapter: Full record
  - 400: ErrInvalidID: ID is not a positive integer
  - 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) GetChapter(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.GetChapter(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// # Reading Progress

// toggleReadRequest defines the inbound JSON schema for read flag updates.
type toggleReadRequest struct {
	Read bool `json:"read"`
}

/*
PUT /api/v1/chapters/{id}/read.

Description: Sets the read flag on a chapter and returns the updated record.
The response body is the authoritative state for client-side reconciliation.

Request:
  - id: int (Chapter ID)
  - body: toggleReadRequest

Response:
  - 200: Chapter: Updated record
  - 400: ErrInvalidJSON: Invalid payload
  - 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) ToggleRead(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input toggleReadRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.ToggleRead(request.Context(), id, input.Read)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// addNoteRequest defines the inbound JSON schema for note submissions.
type addNoteRequest struct {
	Text string `json:"text"`
}

/*
POST /api/v1/chapters/{id}/notes.

Description: Appends a free-text note to a chapter and returns the updated
record with the note included.

Request:
  - id: int (Chapter ID)
  - body: addNoteRequest

Response:
  - 200: Chapter: Updated record
  - 400: ErrInvalidJSON/Validation: Invalid or empty text
  - 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) AddNote(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addNoteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.AddNote(request.Context(), id, input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}
