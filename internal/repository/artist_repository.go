package repository

import (
	"context"
	"errors"
	"time"

	"gigbook/internal/database"
	"gigbook/internal/models"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	Save(ctx context.Context, artist *models.Artist) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, error)
	Count(ctx context.Context) (int64, error)
}

type artistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *artistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) Save(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(artist).Error
}

// FindByID returns (nil, nil) when no artist has the given id.
func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Artist{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
