package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist. Callers
// match it with errors.Is.
var ErrNotFound = errors.New("not found")

const dateLayout = "2006-01-02"

// nullableStrToValue converts an empty string to SQL NULL.
func nullableStrToValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
