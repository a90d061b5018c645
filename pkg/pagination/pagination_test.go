// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/leio/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping of page/limit values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit", "?page=3&limit=10", 3, 10},
		{"zero_page", "?page=0", pagination.DefaultPage, pagination.DefaultLimit},
		{"negative_page", "?page=-2", pagination.DefaultPage, pagination.DefaultLimit},
		{"excessive_limit", "?limit=9999", pagination.DefaultPage, pagination.DefaultLimit},
		{"garbage_values", "?page=abc&limit=xyz", pagination.DefaultPage, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/chapters"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestFromRequestWithLimit verifies the configured default limit is used when
the client sends none, while explicit and clamped values behave as before.
*/
func TestFromRequestWithLimit(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		defaultLimit int
		wantLimit    int
	}{
		{"configured_default", "", 2, 2},
		{"explicit_overrides", "?limit=10", 2, 10},
		{"excessive_falls_back", "?limit=9999", 2, 2},
		{"bad_default_ignored", "", 0, pagination.DefaultLimit},
		{"oversized_default_ignored", "", 9999, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/chapters"+tt.query, nil)
			params := pagination.FromRequestWithLimit(request, tt.defaultLimit)

			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset checks the page-to-offset conversion.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 5}.Offset())
	assert.Equal(t, 5, pagination.Params{Page: 2, Limit: 5}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 3, Limit: 5}.Offset())
}

/*
TestNewMeta verifies total page calculation and the has_more flag.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int
		wantTotalPages int
		wantHasMore    bool
	}{
		{"first_of_three", 1, 5, 12, 3, true},
		{"middle_page", 2, 5, 12, 3, true},
		{"final_partial_page", 3, 5, 12, 3, false},
		{"exact_fit", 2, 5, 10, 2, false},
		{"empty_corpus", 1, 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
			assert.Equal(t, tt.wantHasMore, meta.HasMore)
		})
	}
}
