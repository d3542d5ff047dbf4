package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no account exists for an email.
	ErrUserNotFound = errors.New("not found")
	// ErrWrongPassword is returned when the password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrPlaceNotFound is returned when a place lookup misses.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrNotOwner is returned when a caller mutates a place they do not own.
	ErrNotOwner = errors.New("caller is not the owner")
	// ErrUnauthenticated is returned when a protected operation has no valid token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnsupportedImageType is returned for links that are not jpg/jpeg/png.
	ErrUnsupportedImageType = errors.New("unsupported file type")
	// ErrImageDownload is returned when fetching the linked image fails.
	ErrImageDownload = errors.New("failed to download image")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MapErrorToHTTP maps domain errors to an HTTP status and response body. The
// handlers own a few endpoint-specific quirks on top of this table.
func MapErrorToHTTP(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "NOT_FOUND"}
	case errors.Is(err, ErrWrongPassword):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "WRONG_PASSWORD"}
	case errors.Is(err, ErrEmailTaken):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "EMAIL_TAKEN"}
	case errors.Is(err, ErrPlaceNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "PLACE_NOT_FOUND"}
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden, ErrorResponse{Error: err.Error(), Code: "FORBIDDEN"}
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Error: err.Error(), Code: "UNAUTHENTICATED"}
	case errors.Is(err, ErrUnsupportedImageType):
		return http.StatusBadRequest, ErrorResponse{Error: "Unsupported file type. Only JPEG, JPG, and PNG formats are supported.", Code: "UNSUPPORTED_TYPE"}
	case errors.Is(err, ErrImageDownload):
		return http.StatusBadRequest, ErrorResponse{Error: "Failed to download image. Please check the URL and try again.", Code: "DOWNLOAD_FAILED"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}
	}
}
