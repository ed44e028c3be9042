package repository

import (
	"context"
	"time"

	"gigbook/internal/database"
	"gigbook/internal/models"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	FindAll(ctx context.Context) ([]models.Show, error)
	FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error)
	FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error)
	CountUpcomingByVenue(ctx context.Context, venueID uint, now time.Time) (int64, error)
	CountUpcomingByArtist(ctx context.Context, artistID uint, now time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type showRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *showRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(show).Error
}

// FindAll returns every show in chronological order with its artist
// and venue loaded.
func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) CountUpcomingByVenue(ctx context.Context, venueID uint, now time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Show{}).
		Where("venue_id = ? AND start_time > ?", venueID, now).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *showRepository) CountUpcomingByArtist(ctx context.Context, artistID uint, now time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Show{}).
		Where("artist_id = ? AND start_time > ?", artistID, now).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *showRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Show{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
