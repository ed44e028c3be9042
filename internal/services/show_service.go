package services

import (
	"context"
	"time"

	"gigbook/internal/models"
	"gigbook/internal/repository"

	"github.com/sirupsen/logrus"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]models.Show, error)
	CreateShow(ctx context.Context, artistID, venueID uint, startTime time.Time) error
}

type showService struct {
	repo   repository.ShowRepository
	logger *logrus.Logger
}

func NewShowService(repo repository.ShowRepository, logger *logrus.Logger) ShowService {
	return &showService{
		repo:   repo,
		logger: logger,
	}
}

func (s *showService) ListShows(ctx context.Context) ([]models.Show, error) {
	return s.repo.FindAll(ctx)
}

// CreateShow inserts the association row. Referential integrity of
// artistID and venueID is enforced by the database foreign keys.
func (s *showService) CreateShow(ctx context.Context, artistID, venueID uint, startTime time.Time) error {
	show := &models.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime.UTC(),
	}
	return s.repo.Create(ctx, show)
}
