package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type statsService struct {
	BaseService
	repo portsrepo.MappingStatsReader
}

// NewStatsService creates a new mapping stats service
func NewStatsService(repo portsrepo.MappingStatsReader) portssvc.StatsSvc {
	return &statsService{repo: repo}
}

var _ portssvc.StatsSvc = (*statsService)(nil)

func (s *statsService) GetMappingStats(ctx context.Context, workspaceID int64, sourceType, destinationType domain.AttributeType) (*domain.MappingStats, error) {
	if sourceType == "" {
		return nil, apperrors.NewValidationError("source_type", "", "is required")
	}
	filter := domain.NewStatsFilter(workspaceID, sourceType, destinationType)

	var total, mapped int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.CountSourceAttributes(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to count source attributes: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		n, err := s.repo.CountMappings(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to count mappings: %w", err)
		}
		mapped = n
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute mapping stats",
			slog.Int64("workspace_id", workspaceID),
			slog.String("source_type", string(sourceType)),
			slog.String("destination_type", string(destinationType)))
		return nil, err
	}

	stats := domain.NewMappingStats(total, mapped)
	if stats.UnmappedAttributesCount < 0 {
		s.LogInfo(ctx, "Mapped count exceeds attribute count",
			slog.Int64("all", total), slog.Int64("mapped", mapped),
			slog.String("source_type", string(sourceType)))
	}
	return &stats, nil
}
