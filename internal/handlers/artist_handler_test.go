package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"gigbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArtist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, body := env.postForm(t, "/artists/create", url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"facebook_link": {"https://facebook.example/gnp"},
		// the create form does not capture genres; a stray value is ignored
		"genres": {"Rock n Roll"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Artist Guns N Petals was successfully listed!")

	total, err := env.artists.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	artists, err := env.artists.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Guns N Petals", artists[0].Name)
	assert.Equal(t, "San Francisco", artists[0].City)
	assert.Equal(t, "", artists[0].Genres)
	assert.Equal(t, "", artists[0].ImageLink)
}

func TestSearchArtists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.artists.Create(ctx, &models.Artist{Name: "Matt Quevedo"}))
	require.NoError(t, env.artists.Create(ctx, &models.Artist{Name: "The Wild Sax Band"}))

	resp, body := env.postForm(t, "/artists/search", url.Values{"search_term": {"QUEV"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "1 result(s)")
	assert.Contains(t, body, "Matt Quevedo")
	assert.Contains(t, body, "0 upcoming shows")
	assert.NotContains(t, body, "Wild Sax")
}

func TestEditArtistReadsEachField(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	artist := &models.Artist{Name: "Guns N Petals", City: "San Francisco"}
	require.NoError(t, env.artists.Create(ctx, artist))

	resp, _ := env.postForm(t, fmt.Sprintf("/artists/%d/edit", artist.ID), url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"Oakland"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"genres":        {"Rock n Roll"},
		"facebook_link": {"https://facebook.example/gnp"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/artists/%d", artist.ID), resp.Header.Get("Location"))

	updated, err := env.artists.FindByID(ctx, artist.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Oakland", updated.City)
	assert.Equal(t, "Guns N Petals", updated.Name)
	assert.Equal(t, "Rock n Roll", updated.Genres)
}

func TestArtistDetailMissing(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/artists/9999")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Artist not found")
}
