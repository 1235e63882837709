package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"league/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrReceiptInvalid.WithDetails("timeout")

	assert.ErrorIs(t, detailed, ErrReceiptInvalid)
	assert.NotErrorIs(t, detailed, ErrUnsupportedArea)
	assert.Equal(t, "timeout", detailed.Details())
	assert.Equal(t, ErrReceiptInvalid.Message()+": timeout", detailed.Error())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrDuplicateReview.WrapMessage("member already reviewed store")

	assert.ErrorIs(t, wrapped, ErrDuplicateReview)

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrMemberNotFound))
	assert.True(t, IsRejection(ErrReceiptInvalid.WithDetails("x")))
	assert.True(t, IsRejection(errors.Wrap(ErrUnsupportedArea, "ctx")))
	assert.True(t, IsRejection(ErrDuplicateReview))

	assert.False(t, IsRejection(ErrStoreCreationFailed))
	assert.False(t, IsRejection(NewDatabaseExecuteError(stderrors.New("boom"), "insert")))
	assert.False(t, IsRejection(stderrors.New("plain")))
}

func TestServerFaultCategory(t *testing.T) {
	assert.True(t, ErrStoreCreationFailed.IsServerFault())
	assert.False(t, ErrDuplicateReview.IsServerFault())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert review")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert review", err.Details())
}
