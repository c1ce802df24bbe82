package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository"
)

// maxStatusResults caps how many status checks one list call returns.
const maxStatusResults = 1000

// StatusService records and lists client status checks.
type StatusService struct {
	repo   repository.StatusRepository
	logger *slog.Logger
}

// NewStatusService creates a StatusService.
func NewStatusService(repo repository.StatusRepository, logger *slog.Logger) *StatusService {
	return &StatusService{repo: repo, logger: logger}
}

// Create records a status check for the named client. The id and timestamp
// are generated server-side.
func (s *StatusService) Create(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, apperror.ValidationFailed("client_name", "client_name is required")
	}

	check := &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now(),
	}

	if err := s.repo.CreateStatus(ctx, check); err != nil {
		s.logger.Error("failed to record status check", slog.String("error", err.Error()))
		return nil, fmt.Errorf("recording status check: %w", err)
	}

	return check, nil
}

// List returns recorded status checks, capped at 1000.
func (s *StatusService) List(ctx context.Context) ([]model.StatusCheck, error) {
	checks, err := s.repo.ListStatus(ctx, maxStatusResults)
	if err != nil {
		s.logger.Error("failed to list status checks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing status checks: %w", err)
	}
	return checks, nil
}
