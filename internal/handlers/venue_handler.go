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

type VenueHandler struct {
	service  services.VenueService
	sessions *session.Store
	logger   *logrus.Logger
}

func NewVenueHandler(service services.VenueService, sessions *session.Store, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// ListVenues renders all venues.
func (h *VenueHandler) ListVenues(c *fiber.Ctx) error {
	venues, err := h.service.ListVenues(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list venues")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "venues", fiber.Map{
		"Venues": venues,
	})
}

// SearchVenues matches a case-insensitive substring of the name and
// renders the match count plus id, name, and upcoming-show count per
// match.
func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	term := c.FormValue("search_term", "")

	results, err := h.service.SearchVenues(c.Context(), term)
	if err != nil {
		h.logger.WithError(err).WithField("term", term).Error("Venue search failed")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "search_venues", fiber.Map{
		"Results":    results,
		"SearchTerm": term,
	})
}

// ShowVenue renders the venue detail page with its shows partitioned
// into upcoming and past.
func (h *VenueHandler) ShowVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	page, err := h.service.GetVenuePage(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to load venue")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "show_venue", fiber.Map{
		"Venue":              page.Venue,
		"UpcomingShows":      page.UpcomingShows,
		"UpcomingShowsCount": page.UpcomingShowsCount,
		"PastShows":          page.PastShows,
		"PastShowsCount":     page.PastShowsCount,
	})
}

func (h *VenueHandler) CreateVenueForm(c *fiber.Ctx) error {
	return renderPage(c, h.sessions, "new_venue", nil)
}

// CreateVenue inserts a venue from the submitted form. Success and
// failure both land on the home view with a flash notice.
func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	venue := &models.Venue{
		Name:         c.FormValue("name", ""),
		City:         c.FormValue("city", ""),
		State:        c.FormValue("state", ""),
		Address:      c.FormValue("address", ""),
		Phone:        c.FormValue("phone", ""),
		ImageLink:    c.FormValue("image_link", ""),
		Genres:       c.FormValue("genres", ""),
		FacebookLink: c.FormValue("facebook_link", ""),
	}

	notice := "Venue " + venue.Name + " was successfully listed!"
	if err := h.service.CreateVenue(c.Context(), venue); err != nil {
		h.logger.WithError(err).WithField("name", venue.Name).Error("Failed to create venue")
		notice = "An error occurred. Venue " + venue.Name + " could not be listed."
	}

	return renderPage(c, h.sessions, "home", fiber.Map{
		"Flashes": []string{notice},
	})
}

func (h *VenueHandler) EditVenueForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	venue, err := h.service.GetVenueByID(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to load venue for edit")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "edit_venue", fiber.Map{
		"Venue": venue,
	})
}

// EditVenue applies the edit form. Every field is read from the form
// body; the response redirects to the venue detail either way.
func (h *VenueHandler) EditVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	updated := &models.Venue{
		Name:         c.FormValue("name", ""),
		City:         c.FormValue("city", ""),
		State:        c.FormValue("state", ""),
		Address:      c.FormValue("address", ""),
		Phone:        c.FormValue("phone", ""),
		Genres:       c.FormValue("genres", ""),
		FacebookLink: c.FormValue("facebook_link", ""),
	}

	if err := h.service.UpdateVenue(c.Context(), id, updated); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update venue")
		h.flash(c, "Something went wrong. Try again")
	}

	return c.Redirect(fmt.Sprintf("/venues/%d", id), fiber.StatusSeeOther)
}

// DeleteVenue removes the venue and redirects to the home page.
// Deleting a nonexistent id is a no-op that still redirects.
func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteVenue(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete venue")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *VenueHandler) flash(c *fiber.Ctx, message string) {
	if err := utils.AddFlash(h.sessions, c, message); err != nil {
		h.logger.WithError(err).Warn("Failed to store flash notice")
	}
}
