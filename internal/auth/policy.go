package auth

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	MaxUsernameLength = 50
	MaxFullNameLength = 100
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrUsernameEmpty    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username must not exceed 50 characters")
	ErrUsernameCharset  = errors.New("username may only contain letters, digits, '_' and '-'")
	ErrFullNameEmpty    = errors.New("full name is required")
	ErrFullNameTooLong  = errors.New("full name must not exceed 100 characters")
)

var reUsername = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameEmpty
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if !reUsername.MatchString(username) {
		return ErrUsernameCharset
	}
	return nil
}

func ValidateFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrFullNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxFullNameLength {
		return ErrFullNameTooLong
	}
	return nil
}
