package rls_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paintmart/storefront/pkg/rls"
	"github.com/stretchr/testify/assert"
)

func TestIsPolicy(t *testing.T) {
	t.Run("NilError", func(t *testing.T) {
		assert.False(t, rls.IsPolicy(nil))
	})

	t.Run("Markers", func(t *testing.T) {
		errs := []error{
			errors.New("new row violates row-level security policy"),
			errors.New("permission denied for table banners"),
			errors.New("RLS enabled with no policies"),
			errors.New("query touched user_roles"),
			errors.New("recursive reference in rule"),
		}
		for _, err := range errs {
			assert.True(t, rls.IsPolicy(err), err.Error())
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.True(t, rls.IsPolicy(errors.New("ROW LEVEL SECURITY violation")))
	})

	t.Run("NoMarkers", func(t *testing.T) {
		errs := []error{
			errors.New("connection refused"),
			errors.New("context deadline exceeded"),
			errors.New("syntax error at or near SELECT"),
		}
		for _, err := range errs {
			assert.False(t, rls.IsPolicy(err), err.Error())
		}
	})

	t.Run("SQLStateInsufficientPrivilege", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42501", Message: "denied"}
		err := fmt.Errorf("query products: %w", pgErr)
		assert.True(t, rls.IsPolicy(err))
	})
}

func TestIsRecursion(t *testing.T) {
	t.Run("NilError", func(t *testing.T) {
		assert.False(t, rls.IsRecursion(nil))
	})

	t.Run("InfiniteRecursion", func(t *testing.T) {
		err := errors.New(
			"infinite recursion detected in policy for relation user_roles",
		)
		assert.True(t, rls.IsRecursion(err))
		assert.True(t, rls.IsPolicy(err), "recursion implies policy")
	})

	t.Run("RecursionDetected", func(t *testing.T) {
		assert.True(t, rls.IsRecursion(errors.New("recursion detected")))
	})

	t.Run("RecursionWithUserRoles", func(t *testing.T) {
		err := errors.New("recursion while evaluating user_roles")
		assert.True(t, rls.IsRecursion(err))
	})

	t.Run("RecursionAlone", func(t *testing.T) {
		assert.False(t, rls.IsRecursion(errors.New("recursion limit")))
	})

	t.Run("SQLStateInvalidObjectDefinition", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P17"}
		assert.True(t, rls.IsRecursion(pgErr))
		assert.True(t, rls.IsPolicy(pgErr))
	})

	t.Run("SubsetOfPolicy", func(t *testing.T) {
		errs := []error{
			errors.New("infinite recursion detected"),
			errors.New("recursion detected in policy"),
			errors.New("recursion over user_roles"),
			&pgconn.PgError{Code: "42P17"},
		}
		for _, err := range errs {
			if rls.IsRecursion(err) {
				assert.True(t, rls.IsPolicy(err), err.Error())
			}
		}
	})
}
