package services

import (
	"context"
	"fmt"
	"time"

	"gigbook/internal/models"
	"gigbook/internal/repository"

	"github.com/sirupsen/logrus"
)

type ArtistService interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) (*models.SearchResults, error)
	GetArtistPage(ctx context.Context, id uint) (*models.ArtistPage, error)
	GetArtistByID(ctx context.Context, id uint) (*models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, id uint, updated *models.Artist) error
}

type artistService struct {
	repo     repository.ArtistRepository
	showRepo repository.ShowRepository
	logger   *logrus.Logger
}

func NewArtistService(repo repository.ArtistRepository, showRepo repository.ShowRepository, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:     repo,
		showRepo: showRepo,
		logger:   logger,
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.repo.FindAll(ctx)
}

// SearchArtists returns the same projected shape as venue search:
// count plus id, name, and live upcoming-show count per match.
func (s *artistService) SearchArtists(ctx context.Context, term string) (*models.SearchResults, error) {
	artists, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	matches := make([]models.SearchMatch, 0, len(artists))
	for _, artist := range artists {
		upcoming, err := s.showRepo.CountUpcomingByArtist(ctx, artist.ID, now)
		if err != nil {
			return nil, err
		}
		matches = append(matches, models.SearchMatch{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: upcoming,
		})
	}

	return &models.SearchResults{
		Count: len(artists),
		Data:  matches,
	}, nil
}

func (s *artistService) GetArtistPage(ctx context.Context, id uint) (*models.ArtistPage, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &models.ArtistPage{Artist: artist}
	if artist == nil {
		return page, nil
	}

	shows, err := s.showRepo.FindByArtistID(ctx, id)
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

func (s *artistService) GetArtistByID(ctx context.Context, id uint) (*models.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *artistService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	return s.repo.Create(ctx, artist)
}

// UpdateArtist applies the editable form fields to an existing artist.
func (s *artistService) UpdateArtist(ctx context.Context, id uint, updated *models.Artist) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("artist with ID %d not found", id)
	}

	existing.Name = updated.Name
	existing.City = updated.City
	existing.State = updated.State
	existing.Phone = updated.Phone
	existing.Genres = updated.Genres
	existing.FacebookLink = updated.FacebookLink

	return s.repo.Save(ctx, existing)
}
