package services

import "errors"

// Validation and lookup failures surfaced to handlers. Handlers translate
// these to the JSON error envelope.
var (
	ErrItemNotFound         = errors.New("item not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrNoteNotFound         = errors.New("note not found")
	ErrButtonNotFound       = errors.New("button not found")
	ErrBannerNotFound       = errors.New("ad banner not found")

	ErrTitleRequired    = errors.New("title is required")
	ErrContentRequired  = errors.New("content is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrLabelRequired    = errors.New("label is required")
	ErrURLRequired      = errors.New("url is required")

	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidIcon  = errors.New("unknown menu icon")
	ErrInvalidScore = errors.New("rating score must be between 1 and 5")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordMismatch   = errors.New("current password does not match")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters")
)

// IsValidation reports whether err is a caller mistake rather than a backend
// failure.
func IsValidation(err error) bool {
	for _, candidate := range []error{
		ErrTitleRequired, ErrContentRequired, ErrCategoryRequired,
		ErrLabelRequired, ErrURLRequired, ErrCategoryExists,
		ErrInvalidIcon, ErrInvalidScore, ErrPasswordTooShort,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
