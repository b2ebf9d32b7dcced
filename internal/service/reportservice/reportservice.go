package reportservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/finseed/internal/domain"
)

//go:generate mockgen -source=reportservice.go -destination=mock_repo.go -package=reportservice

type Counter interface {
	Counts(ctx context.Context) (map[domain.Entity]int64, error)
}

type OperationReader interface {
	OperationsByUser(ctx context.Context, userID int) ([]domain.Operation, error)
}

type AssignmentReader interface {
	AssignmentsByCampaign(ctx context.Context, campaignID int) ([]domain.UserCampaign, error)
}

var ErrInvalidID = errors.New("id must be positive")

type Service struct {
	operations  OperationReader
	assignments AssignmentReader
	counters    []Counter
}

func New(operations OperationReader, assignments AssignmentReader, counters ...Counter) *Service {
	return &Service{
		operations:  operations,
		assignments: assignments,
		counters:    counters,
	}
}

func (s *Service) GetOperations(ctx context.Context, userID int) ([]domain.Operation, error) {
	if userID <= 0 {
		return nil, ErrInvalidID
	}
	ops, err := s.operations.OperationsByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get operations", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return ops, nil
}

func (s *Service) GetAssignments(ctx context.Context, campaignID int) ([]domain.UserCampaign, error) {
	if campaignID <= 0 {
		return nil, ErrInvalidID
	}
	assignments, err := s.assignments.AssignmentsByCampaign(ctx, campaignID)
	if err != nil {
		zap.L().Error("failed to get assignments", zap.Int("campaign_id", campaignID), zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

// GetSummary merges the row counts of every store.
func (s *Service) GetSummary(ctx context.Context) (map[domain.Entity]int64, error) {
	summary := make(map[domain.Entity]int64)
	for _, c := range s.counters {
		counts, err := c.Counts(ctx)
		if err != nil {
			zap.L().Error("failed to count rows", zap.Error(err))
			return nil, fmt.Errorf("count rows: %w", err)
		}
		for e, n := range counts {
			summary[e] = n
		}
	}
	return summary, nil
}
