package service

// Package service contains the use cases sitting between the HTTP handlers
// and the repositories. Services validate input, perform the persistence
// operation, and translate repository errors into domain errors.

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("record not found")
	ErrBadChangeDate      = errors.New("invalid change date, use format yyyy-MM-dd")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// validate is the shared validator instance; input structs declare their
// constraints with `validate` tags (including `mac` for device addresses).
var validate = validator.New()
