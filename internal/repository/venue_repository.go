package repository

import (
	"context"
	"errors"
	"time"

	"gigbook/internal/database"
	"gigbook/internal/models"

	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	Save(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.Venue, error)
	Count(ctx context.Context) (int64, error)
}

type venueRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *venueRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) Save(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(venue).Error
}

// Delete removes the venue with the given id. Deleting an id that does
// not exist is a no-op, not an error.
func (r *venueRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Venue{}).Error
}

// FindByID returns (nil, nil) when no venue has the given id; the
// detail view tolerates an absent entity.
func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchByName matches a case-insensitive substring of the venue name.
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Venue{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
