package handlers_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"gigbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	artist := &models.Artist{Name: "Guns N Petals"}
	require.NoError(t, env.artists.Create(ctx, artist))
	venue := &models.Venue{Name: "The Fillmore"}
	require.NoError(t, env.venues.Create(ctx, venue))

	resp, body := env.postForm(t, "/shows/create", url.Values{
		"artist_id":  {idString(artist.ID)},
		"venue_id":   {idString(venue.ID)},
		"start_time": {"2030-06-15T20:00"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Show was successfully listed!")

	total, err := env.shows.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	byVenue, err := env.shows.FindByVenueID(ctx, venue.ID)
	require.NoError(t, err)
	require.Len(t, byVenue, 1)
	assert.Equal(t, time.Date(2030, 6, 15, 20, 0, 0, 0, time.UTC), byVenue[0].StartTime.UTC())

	byArtist, err := env.shows.FindByArtistID(ctx, artist.ID)
	require.NoError(t, err)
	assert.Len(t, byArtist, 1)
}

func TestCreateShowUnknownArtistRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	venue := &models.Venue{Name: "The Fillmore"}
	require.NoError(t, env.venues.Create(ctx, venue))

	resp, body := env.postForm(t, "/shows/create", url.Values{
		"artist_id":  {"9999"},
		"venue_id":   {idString(venue.ID)},
		"start_time": {"2030-06-15T20:00"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "An error occurred. Show could not be listed.")

	total, err := env.shows.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestCreateShowMalformedTimestamp(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.postForm(t, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"not-a-time"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "An error occurred. Show could not be listed.")
}

func TestListShowsChronological(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	artist := &models.Artist{Name: "The Wild Sax Band"}
	require.NoError(t, env.artists.Create(ctx, artist))
	early := &models.Venue{Name: "Early Venue"}
	late := &models.Venue{Name: "Late Venue"}
	require.NoError(t, env.venues.Create(ctx, early))
	require.NoError(t, env.venues.Create(ctx, late))

	now := time.Now().UTC()
	require.NoError(t, env.shows.Create(ctx, &models.Show{
		ArtistID: artist.ID, VenueID: late.ID, StartTime: now.Add(48 * time.Hour),
	}))
	require.NoError(t, env.shows.Create(ctx, &models.Show{
		ArtistID: artist.ID, VenueID: early.ID, StartTime: now.Add(-48 * time.Hour),
	}))

	resp, body := env.get(t, "/shows")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	earlyAt := strings.Index(body, "Early Venue")
	lateAt := strings.Index(body, "Late Venue")
	require.NotEqual(t, -1, earlyAt)
	require.NotEqual(t, -1, lateAt)
	assert.Less(t, earlyAt, lateAt)
}
