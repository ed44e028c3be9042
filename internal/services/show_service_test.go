package services_test

import (
	"context"
	"testing"
	"time"

	"gigbook/internal/models"
	"gigbook/internal/repository"
	"gigbook/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowService_CreateAndList(t *testing.T) {
	db := newTestDatabase(t)
	artistRepo := repository.NewArtistRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	showRepo := repository.NewShowRepository(db)
	svc := services.NewShowService(showRepo, newTestLogger())
	ctx := context.Background()

	artist := &models.Artist{Name: "Guns N Petals"}
	require.NoError(t, artistRepo.Create(ctx, artist))
	venue := &models.Venue{Name: "The Fillmore"}
	require.NoError(t, venueRepo.Create(ctx, venue))

	later := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	earlier := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
	require.NoError(t, svc.CreateShow(ctx, artist.ID, venue.ID, later))
	require.NoError(t, svc.CreateShow(ctx, artist.ID, venue.ID, earlier))

	shows, err := svc.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 2)

	// chronological, not grouped by past/future
	assert.Equal(t, earlier, shows[0].StartTime.UTC())
	assert.Equal(t, later, shows[1].StartTime.UTC())
	require.NotNil(t, shows[0].Artist)
	require.NotNil(t, shows[0].Venue)
	assert.Equal(t, "Guns N Petals", shows[0].Artist.Name)
	assert.Equal(t, "The Fillmore", shows[0].Venue.Name)
}

func TestShowService_CreateRejectsUnknownReferences(t *testing.T) {
	db := newTestDatabase(t)
	showRepo := repository.NewShowRepository(db)
	svc := services.NewShowService(showRepo, newTestLogger())
	ctx := context.Background()

	err := svc.CreateShow(ctx, 9999, 9999, time.Now().UTC().Add(time.Hour))
	require.Error(t, err)

	total, err := showRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
