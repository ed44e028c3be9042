package handlers

import (
	"fmt"

	"gigbook/internal/models"
	"gigbook/internal/services"
	"gigbook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

type ArtistHandler struct {
	service  services.ArtistService
	sessions *session.Store
	logger   *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, sessions *session.Store, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *ArtistHandler) ListArtists(c *fiber.Ctx) error {
	artists, err := h.service.ListArtists(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list artists")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "artists", fiber.Map{
		"Artists": artists,
	})
}

func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	term := c.FormValue("search_term", "")

	results, err := h.service.SearchArtists(c.Context(), term)
	if err != nil {
		h.logger.WithError(err).WithField("term", term).Error("Artist search failed")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "search_artists", fiber.Map{
		"Results":    results,
		"SearchTerm": term,
	})
}

func (h *ArtistHandler) ShowArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	page, err := h.service.GetArtistPage(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to load artist")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "show_artist", fiber.Map{
		"Artist":             page.Artist,
		"UpcomingShows":      page.UpcomingShows,
		"UpcomingShowsCount": page.UpcomingShowsCount,
		"PastShows":          page.PastShows,
		"PastShowsCount":     page.PastShowsCount,
	})
}

func (h *ArtistHandler) CreateArtistForm(c *fiber.Ctx) error {
	return renderPage(c, h.sessions, "new_artist", nil)
}

// CreateArtist inserts an artist from the submitted form. The form
// captures name, city, state, phone, and facebook_link only.
func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	artist := &models.Artist{
		Name:         c.FormValue("name", ""),
		City:         c.FormValue("city", ""),
		State:        c.FormValue("state", ""),
		Phone:        c.FormValue("phone", ""),
		FacebookLink: c.FormValue("facebook_link", ""),
	}

	notice := "Artist " + artist.Name + " was successfully listed!"
	if err := h.service.CreateArtist(c.Context(), artist); err != nil {
		h.logger.WithError(err).WithField("name", artist.Name).Error("Failed to create artist")
		notice = "An error occurred. Artist " + artist.Name + " could not be listed."
	}

	return renderPage(c, h.sessions, "home", fiber.Map{
		"Flashes": []string{notice},
	})
}

func (h *ArtistHandler) EditArtistForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	artist, err := h.service.GetArtistByID(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to load artist for edit")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "edit_artist", fiber.Map{
		"Artist": artist,
	})
}

// EditArtist applies the edit form and redirects to the artist detail.
func (h *ArtistHandler) EditArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	updated := &models.Artist{
		Name:         c.FormValue("name", ""),
		City:         c.FormValue("city", ""),
		State:        c.FormValue("state", ""),
		Phone:        c.FormValue("phone", ""),
		Genres:       c.FormValue("genres", ""),
		FacebookLink: c.FormValue("facebook_link", ""),
	}

	if err := h.service.UpdateArtist(c.Context(), id, updated); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update artist")
		h.flash(c, "Something went wrong. Try again")
	} else {
		h.flash(c, "Your changes are saved!")
	}

	return c.Redirect(fmt.Sprintf("/artists/%d", id), fiber.StatusSeeOther)
}

func (h *ArtistHandler) flash(c *fiber.Ctx, message string) {
	if err := utils.AddFlash(h.sessions, c, message); err != nil {
		h.logger.WithError(err).Warn("Failed to store flash notice")
	}
}
