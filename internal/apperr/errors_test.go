package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrNotFound, http.StatusNotFound},
		{ErrForbidden, http.StatusForbidden},
		{ErrConfirmation, http.StatusForbidden},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrValidation, http.StatusUnprocessableEntity},
		{ErrConflict, http.StatusUnprocessableEntity},
		{errors.New("something else"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound},
		{ValidationErrors{"name": "name is required"}, http.StatusUnprocessableEntity},
	}

	for _, c := range cases {
		if got := HTTPStatusFromError(c.err); got != c.want {
			t.Errorf("HTTPStatusFromError(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestValidationErrors_FirstMessageWins(t *testing.T) {
	verrs := ValidationErrors{}
	verrs.Add("email", "email is required")
	verrs.Add("email", "email must be a valid address")

	if verrs["email"] != "email is required" {
		t.Errorf("Expected first message to win, got %q", verrs["email"])
	}
}

func TestValidationErrors_OrNil(t *testing.T) {
	empty := ValidationErrors{}
	if err := empty.OrNil(); err != nil {
		t.Errorf("Expected nil for empty collection, got %v", err)
	}

	verrs := ValidationErrors{"name": "name is required"}
	err := verrs.OrNil()
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationErrors must unwrap to ErrValidation")
	}

	var got ValidationErrors
	if !errors.As(err, &got) {
		t.Fatal("Expected errors.As to recover the field map")
	}
	if got["name"] != "name is required" {
		t.Errorf("Unexpected field message %q", got["name"])
	}
}
