package services

import "errors"

// Failure conditions the presentation layer is expected to display and
// recover from. None of them is fatal; check with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("login required")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEventNotFound      = errors.New("event not found")
	ErrAlreadyFavorite    = errors.New("event is already a favorite")
	ErrNotFavorite        = errors.New("event was not a favorite")
	ErrCategoryExists     = errors.New("category already in preferences")
)
