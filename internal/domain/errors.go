package domain

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrMalformedProfile    = errors.New("malformed stored profile")
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrEmptyContent        = errors.New("content is empty")
	ErrUnknownTheme        = errors.New("unknown theme")
	ErrInvalidMoodScore    = errors.New("invalid mood score")
)
