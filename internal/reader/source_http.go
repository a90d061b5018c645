// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/taibuivan/leio/internal/core/chapter"
	"github.com/taibuivan/leio/pkg/pagination"
)

// # HTTP Source

// HTTPSource implements [Source] over the Leio REST API.
//
// Every call is bounded by the client timeout; a timed-out call surfaces as
// a plain error and is mapped to the fetch/mutation failure taxonomy by the
// [Session], which leaves its state retryable.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource constructs an API client rooted at baseURL
// (e.g. "http://localhost:8080").
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// # Wire Envelopes

// listResponse mirrors the API's paginated envelope.
type listResponse struct {
	Data []chapter.Chapter `json:"data"`
	Meta pagination.Meta   `json:"meta"`
}

// singleResponse mirrors the API's single-resource envelope.
type singleResponse struct {
	Data chapter.Chapter `json:"data"`
}

// errorResponse mirrors the API's error envelope.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// # Source Implementation

/*
ListPage fetches one page of chapters from GET /api/v1/chapters.
*/
func (source *HTTPSource) ListPage(context context.Context, page, size int) (Page, error) {
	url := fmt.Sprintf("%s/api/v1/chapters?page=%d&limit=%d", source.baseURL, page, size)

	var envelope listResponse
	if err := source.do(context, http.MethodGet, url, nil, &envelope); err != nil {
		return Page{}, err
	}

	return Page{Chapters: envelope.Data, Total: envelope.Meta.Total}, nil
}

/*
SetRead updates the read flag via PUT /api/v1/chapters/{id}/read.
*/
func (source *HTTPSource) SetRead(context context.Context, id int, read bool) (*chapter.Chapter, error) {
	url := fmt.Sprintf("%s/api/v1/chapters/%d/read", source.baseURL, id)

	var envelope singleResponse
	if err := source.do(context, http.MethodPut, url, map[string]bool{"read": read}, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

/*
AddNote appends a note via POST /api/v1/chapters/{id}/notes.
*/
func (source *HTTPSource) AddNote(context context.Context, id int, text string) (*chapter.Chapter, error) {
	url := fmt.Sprintf("%s/api/v1/chapters/%d/notes", source.baseURL, id)

	var envelope singleResponse
	if err := source.do(context, http.MethodPost, url, map[string]string{"text": text}, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

/*
GetSlides fetches a slide deck's raw markdown via GET /api/v1/slides/{deck}.

Slide decks bypass the JSON envelope; the body is the deck text. The deck
name is sent raw; the server normalizes it into an identifier.
*/
func (source *HTTPSource) GetSlides(context context.Context, deck string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v1/slides/%s", source.baseURL, url.PathEscape(deck))

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("api: build request: %w", err)
	}

	response, err := source.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("api: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", decodeAPIError(response)
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("api: read body: %w", err)
	}

	return string(raw), nil
}

// # Internal Helpers

// do issues one JSON request and decodes the success envelope into target.
func (source *HTTPSource) do(ctx context.Context, method, url string, payload, target any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api: encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := source.client.Do(request)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return decodeAPIError(response)
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}

	return nil
}

// decodeAPIError turns a non-2xx response into a descriptive error.
func decodeAPIError(response *http.Response) error {
	var envelope errorResponse
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		return fmt.Errorf("api: unexpected status %d", response.StatusCode)
	}
	return fmt.Errorf("api: %s (%s)", envelope.Error, envelope.Code)
}
