package domain

import "strings"

type UserID string

// Identity is the locally authenticated user. There is no account backend;
// an Identity is synthesized at login or registration and kept in the
// profile store until logout.
type Identity struct {
	ID     UserID
	Email  string
	Name   string
	Avatar string
}

func (i Identity) IsZero() bool {
	return i.ID == "" && i.Email == "" && i.Name == ""
}

func (i Identity) Validate() error {
	if strings.TrimSpace(string(i.ID)) == "" {
		return ErrMalformedProfile
	}
	if strings.TrimSpace(i.Email) == "" {
		return ErrMalformedProfile
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrMalformedProfile
	}

	return nil
}

// NameFromEmail derives a display name from the part of the address before
// the "@", the default used when logging in without a registered name.
func NameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}

	return local
}

const MinPasswordLength = 6
