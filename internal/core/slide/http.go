// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/leio/internal/platform/request"
	"github.com/taibuivan/leio/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for slide decks.
type Handler struct {
	service *Service
}

// NewHandler constructs a new slide [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the slide route group, mounted under /api/v1/slides.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{deck}", handler.GetDeck)

	return router
}

/*
GET /api/v1/slides/{deck}.

Description: Returns the raw markdown text of a slide deck. This is the only
endpoint that responds outside the JSON envelope — the body IS the deck.

Request:
  - deck: string (Slug identifier)

Response:
  - 200: text/markdown: Raw deck text
  - 400: Validation: Identifier is not a valid slug
  - 404: ErrNotFound: Deck not found
*/
func (handler *Handler) GetDeck(writer http.ResponseWriter, request *http.Request) {
	deck := requestutil.Param(request, "deck")

	text, err := handler.service.GetDeck(request.Context(), deck)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Markdown(writer, text)
}
