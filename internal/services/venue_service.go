package services

import (
	"context"
	"fmt"
	"time"

	"gigbook/internal/models"
	"gigbook/internal/repository"

	"github.com/sirupsen/logrus"
)

type VenueService interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) (*models.SearchResults, error)
	GetVenuePage(ctx context.Context, id uint) (*models.VenuePage, error)
	GetVenueByID(ctx context.Context, id uint) (*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, id uint, updated *models.Venue) error
	DeleteVenue(ctx context.Context, id uint) error
}

type venueService struct {
	repo     repository.VenueRepository
	showRepo repository.ShowRepository
	logger   *logrus.Logger
}

func NewVenueService(repo repository.VenueRepository, showRepo repository.ShowRepository, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:     repo,
		showRepo: showRepo,
		logger:   logger,
	}
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.repo.FindAll(ctx)
}

// SearchVenues projects each case-insensitive name match to its id,
// name, and a live count of shows starting after now.
func (s *venueService) SearchVenues(ctx context.Context, term string) (*models.SearchResults, error) {
	venues, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	matches := make([]models.SearchMatch, 0, len(venues))
	for _, venue := range venues {
		upcoming, err := s.showRepo.CountUpcomingByVenue(ctx, venue.ID, now)
		if err != nil {
			return nil, err
		}
		matches = append(matches, models.SearchMatch{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming,
		})
	}

	return &models.SearchResults{
		Count: len(venues),
		Data:  matches,
	}, nil
}

// GetVenuePage fetches the venue and splits its shows into upcoming
// and past around the current time. A nonexistent id yields a page
// with a nil venue.
func (s *venueService) GetVenuePage(ctx context.Context, id uint) (*models.VenuePage, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &models.VenuePage{Venue: venue}
	if venue == nil {
		return page, nil
	}

	shows, err := s.showRepo.FindByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, show := range shows {
		if show.StartTime.After(now) {
			page.UpcomingShows = append(page.UpcomingShows, show)
		} else {
			page.PastShows = append(page.PastShows, show)
		}
	}
	page.UpcomingShowsCount = len(page.UpcomingShows)
	page.PastShowsCount = len(page.PastShows)

	return page, nil
}

func (s *venueService) GetVenueByID(ctx context.Context, id uint) (*models.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return s.repo.Create(ctx, venue)
}

// UpdateVenue applies the editable form fields to an existing venue.
// Seeking fields and website are not part of the edit form and keep
// their stored values.
func (s *venueService) UpdateVenue(ctx context.Context, id uint, updated *models.Venue) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("venue with ID %d not found", id)
	}

	existing.Name = updated.Name
	existing.City = updated.City
	existing.State = updated.State
	existing.Address = updated.Address
	existing.Phone = updated.Phone
	existing.Genres = updated.Genres
	existing.FacebookLink = updated.FacebookLink

	return s.repo.Save(ctx, existing)
}

func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
