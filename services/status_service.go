package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"debatecoach/models"

	"github.com/google/uuid"
)

// StatusListLimit caps how many status checks a listing returns
const StatusListLimit = 1000

// StatusStore persists status checks
type StatusStore interface {
	InsertStatusCheck(ctx context.Context, check models.StatusCheck) error
	ListStatusChecks(ctx context.Context, limit int) ([]models.StatusCheck, error)
}

type StatusService struct {
	store StatusStore
	now   func() time.Time
}

func NewStatusService(store StatusStore) *StatusService {
	return &StatusService{store: store, now: time.Now}
}

// Record stores a new status check for clientName
func (s *StatusService) Record(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, ErrEmptyClientName
	}
	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now().UTC(),
	}
	if err := s.store.InsertStatusCheck(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to save status check: %w", err)
	}
	return &check, nil
}

func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	checks, err := s.store.ListStatusChecks(ctx, StatusListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	return checks, nil
}
