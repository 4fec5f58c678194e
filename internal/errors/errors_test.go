package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf-server/internal/errors"
)

func TestErrorIs_MatchesByCode(t *testing.T) {
	err := errors.BookNotFound("book 7 not found")

	assert.ErrorIs(t, err, errors.ErrBookNotFound)
	assert.NotErrorIs(t, err, errors.ErrUserNotFound)
}

func TestErrorIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("borrow: %w", errors.DuplicateISBN("ISBN 111 already exists"))

	assert.ErrorIs(t, err, errors.ErrDuplicateISBN)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.CodeDuplicateISBN, domainErr.Code)
	assert.Equal(t, "ISBN 111 already exists", domainErr.Message)
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk error")
	err := errors.Wrap(cause, errors.CodeInternal, "failed to persist book")

	assert.ErrorIs(t, err, errors.ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to persist book")
	assert.Contains(t, err.Error(), "disk error")
}

func TestWithCause(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := errors.ErrBookUnavailable.WithCause(cause)

	assert.ErrorIs(t, err, errors.ErrBookUnavailable)
	assert.Equal(t, cause, errors.Unwrap(err))
}
