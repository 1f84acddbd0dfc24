package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_IsErrNotFound(t *testing.T) {
	err := fmt.Errorf("resolving: %w", apperrors.NewNotFoundError("destination", "PROJECT", "Nonexistent"))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)

	var nf *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "destination", nf.Entity)
	assert.Equal(t, "Nonexistent", nf.Value)
	assert.Contains(t, err.Error(), "destination PROJECT with name Nonexistent does not exist")
}

func TestBulkError_CollectsAllItems(t *testing.T) {
	bulk := apperrors.NewBulkError("invalid mapping settings")
	assert.NoError(t, bulk.OrNil())

	bulk.Add(0, "source_field", "", "is required")
	bulk.AddError(2, apperrors.NewValidationError("expense_field_id", "7", "no expense field found"))
	bulk.AddError(3, errors.New("boom"))

	err := bulk.OrNil()
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Len(t, bulk.Errors, 3)
	assert.Equal(t, "expense_field_id", bulk.Errors[1].Field)
	assert.Equal(t, "7", bulk.Errors[1].Value)
	assert.Equal(t, "boom", bulk.Errors[2].Message)
	assert.Contains(t, err.Error(), "[0] source_field: is required")
}

func TestAppError_Unwraps(t *testing.T) {
	err := apperrors.NewAppError(500, "failed to upsert mapping", apperrors.ErrDuplicate)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Equal(t, "failed to upsert mapping: resource already exists", err.Error())
	assert.Equal(t, "no cause", apperrors.NewAppError(500, "no cause", nil).Error())
}
