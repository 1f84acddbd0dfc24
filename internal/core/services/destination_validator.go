package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
)

// DestinationValidator checks that a referenced destination attribute exists in the
// workspace and that its type is accepted by the slot it is written to.
type DestinationValidator struct {
	repo portsrepo.DestinationAttributeReader
}

// NewDestinationValidator creates a DestinationValidator.
func NewDestinationValidator(repo portsrepo.DestinationAttributeReader) *DestinationValidator {
	return &DestinationValidator{repo: repo}
}

// Validate resolves id for the slot named field. A nil id is an empty slot and
// resolves to nil without a lookup.
func (v *DestinationValidator) Validate(ctx context.Context, workspaceID int64, id *int64, field string, allowed domain.AttributeTypeSet) (*domain.DestinationAttribute, error) {
	if id == nil {
		return nil, nil
	}
	value := strconv.FormatInt(*id, 10)

	attr, err := v.repo.FindDestinationAttributeByID(ctx, workspaceID, *id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewValidationError(field, value, "destination attribute does not exist in this workspace")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s %d: %w", field, *id, err)
	}
	if !allowed.Contains(attr.AttributeType) {
		return nil, apperrors.NewValidationError(field, value,
			fmt.Sprintf("destination attribute must be of type %s, got %s", strings.Join(allowed.Strings(), " or "), attr.AttributeType))
	}
	return attr, nil
}

// validateSource resolves a required source attribute of one of the allowed types.
func validateSource(ctx context.Context, repo portsrepo.SourceAttributeReader, workspaceID int64, id *int64, field string, allowed domain.AttributeTypeSet) (*domain.SourceAttribute, error) {
	if id == nil {
		return nil, apperrors.NewValidationError(field, "", "is required")
	}
	value := strconv.FormatInt(*id, 10)

	attr, err := repo.FindSourceAttributeByID(ctx, workspaceID, *id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewValidationError(field, value, "expense attribute does not exist in this workspace")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s %d: %w", field, *id, err)
	}
	if !allowed.Contains(attr.AttributeType) {
		return nil, apperrors.NewValidationError(field, value,
			fmt.Sprintf("expense attribute must be of type %s, got %s", strings.Join(allowed.Strings(), " or "), attr.AttributeType))
	}
	return attr, nil
}
