package complaints

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sahyatri/sahyatri-backend/internal/models"
)

// ErrMissingFields marks a client input error: zoneName and details are both
// required. Distinct from store failures so the handler can answer 400.
var ErrMissingFields = errors.New("zoneName and details are required")

// Service validates and persists complaint submissions.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// File creates a new complaint for the given zone. filedBy comes from the
// caller's validated token identity, never from the request body. Complaints
// are insert-only; status starts at Submitted.
func (s *Service) File(ctx context.Context, zoneName, details, filedBy string) (*models.Complaint, error) {
	if zoneName == "" || details == "" {
		return nil, ErrMissingFields
	}
	c := &models.Complaint{
		ZoneName:  zoneName,
		Details:   details,
		FiledBy:   filedBy,
		Status:    models.ComplaintSubmitted,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("file complaint: %w", err)
	}
	return c, nil
}
