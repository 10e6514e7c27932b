// Package rls classifies backend errors caused by row-level security
// policies. Classification is by SQLSTATE when the error chain carries a
// [pgconn.PgError] and by message markers otherwise, so errors that arrive
// already flattened to strings are still recognized.
package rls

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var policyMarkers = []string{
	"policy",
	"policies",
	"permission denied",
	"rls",
	"row level security",
	"recursive",
	"recursion",
	"user_roles",
}

// IsPolicy reports whether err looks like a row-level policy rejection.
// A nil error is never a policy error.
func IsPolicy(err error) bool {
	if err == nil {
		return false
	}

	if code, ok := sqlState(err); ok {
		if code == pgerrcode.InsufficientPrivilege ||
			code == pgerrcode.InvalidObjectDefinition {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range policyMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// IsRecursion reports whether err is a self-referential policy definition
// failure. Every recursion error is also a policy error.
func IsRecursion(err error) bool {
	if err == nil {
		return false
	}

	if code, ok := sqlState(err); ok &&
		code == pgerrcode.InvalidObjectDefinition {
		return true
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "infinite recursion"):
		return true
	case strings.Contains(msg, "recursion detected"):
		return true
	case strings.Contains(msg, "recursion") &&
		strings.Contains(msg, "user_roles"):
		return true
	}
	return false
}

func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}
