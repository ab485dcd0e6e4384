// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"strings"
	"testing"
)

type lookupRequest struct {
	Title  string `query:"title" validate:"required,notblank,max=20"`
	UserID int64  `query:"user_id" validate:"required"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Sort   string `validate:"omitempty,oneof=asc desc"`
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input lookupRequest
	}{
		{"all fields", lookupRequest{Title: "Toy Story", UserID: 1, Limit: 5, Sort: "asc"}},
		{"optional fields omitted", lookupRequest{Title: "Heat", UserID: 42}},
		{"boundary limit", lookupRequest{Title: "Heat", UserID: 42, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     lookupRequest
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing title",
			input:     lookupRequest{UserID: 1},
			wantField: "title",
			wantTag:   "required",
			wantMsg:   "title is required",
		},
		{
			name:      "blank title",
			input:     lookupRequest{Title: "   ", UserID: 1},
			wantField: "title",
			wantTag:   "notblank",
			wantMsg:   "title must not be blank",
		},
		{
			name:      "title too long",
			input:     lookupRequest{Title: strings.Repeat("a", 21), UserID: 1},
			wantField: "title",
			wantTag:   "max",
			wantMsg:   "title must be at most 20 characters",
		},
		{
			name:      "missing user",
			input:     lookupRequest{Title: "Heat"},
			wantField: "user_id",
			wantTag:   "required",
			wantMsg:   "user_id is required",
		},
		{
			name:      "limit too large",
			input:     lookupRequest{Title: "Heat", UserID: 1, Limit: 101},
			wantField: "limit",
			wantTag:   "max",
			wantMsg:   "limit must be at most 100",
		},
		{
			name:      "bad sort",
			input:     lookupRequest{Title: "Heat", UserID: 1, Sort: "up"},
			wantField: "Sort",
			wantTag:   "oneof",
			wantMsg:   "Sort must be one of: asc desc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&lookupRequest{UserID: 1}).ToAPIError()
	if single.Code != "VALIDATION_ERROR" || single.Message != "title is required" {
		t.Errorf("single ToAPIError() = %+v", single)
	}
	if single.Details["field"] != "title" {
		t.Errorf("single details = %v", single.Details)
	}

	multi := ValidateStruct(&lookupRequest{}).ToAPIError()
	if !strings.Contains(multi.Message, "title: title is required") || !strings.Contains(multi.Message, "user_id: user_id is required") {
		t.Errorf("multi ToAPIError().Message = %q", multi.Message)
	}
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("multi details = %v", multi.Details)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty ToAPIError().Message = %q", empty.Message)
	}
}
