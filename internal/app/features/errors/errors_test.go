package errors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/features/errors"
)

// The /forbidden and /unauthorized pages render through the shared
// RenderForbidden/RenderUnauthorized helpers; both must serve the page
// in place rather than redirect.

func TestForbidden_RendersInPlace(t *testing.T) {
	handler := uierrors.NewHandler()

	req := httptest.NewRequest("GET", "/forbidden", nil)
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests - that's expected
			}
		}()
		handler.Forbidden(rec, req)
	}()

	if rec.Code == http.StatusSeeOther || rec.Code == http.StatusFound {
		t.Errorf("forbidden page should not redirect, got %d", rec.Code)
	}
}

func TestUnauthorized_RendersInPlace(t *testing.T) {
	handler := uierrors.NewHandler()

	req := httptest.NewRequest("GET", "/unauthorized", nil)
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests - that's expected
			}
		}()
		handler.Unauthorized(rec, req)
	}()

	if rec.Code == http.StatusSeeOther || rec.Code == http.StatusFound {
		t.Errorf("unauthorized page should not redirect, got %d", rec.Code)
	}
}
