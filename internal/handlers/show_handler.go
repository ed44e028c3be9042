package handlers

import (
	"strconv"

	"gigbook/internal/services"
	"gigbook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service  services.ShowService
	sessions *session.Store
	logger   *logrus.Logger
}

func NewShowHandler(service services.ShowService, sessions *session.Store, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// ListShows renders all shows in chronological order.
func (h *ShowHandler) ListShows(c *fiber.Ctx) error {
	shows, err := h.service.ListShows(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list shows")
		return fiber.ErrInternalServerError
	}

	return renderPage(c, h.sessions, "shows", fiber.Map{
		"Shows": shows,
	})
}

func (h *ShowHandler) CreateShowForm(c *fiber.Ctx) error {
	return renderPage(c, h.sessions, "new_show", nil)
}

// CreateShow inserts a show linking an artist to a venue. Bad ids or
// timestamps surface the same failure notice a constraint violation
// would; both outcomes land on the home view.
func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	artistID, artistErr := strconv.ParseUint(c.FormValue("artist_id", ""), 10, 32)
	venueID, venueErr := strconv.ParseUint(c.FormValue("venue_id", ""), 10, 32)
	startTime, timeErr := utils.ParseTimestamp(c.FormValue("start_time", ""))

	if artistErr != nil || venueErr != nil || timeErr != nil {
		h.logger.WithFields(logrus.Fields{
			"artist_id":  c.FormValue("artist_id", ""),
			"venue_id":   c.FormValue("venue_id", ""),
			"start_time": c.FormValue("start_time", ""),
		}).Warn("Rejected show submission with malformed fields")
		return renderPage(c, h.sessions, "home", fiber.Map{
			"Flashes": []string{"An error occurred. Show could not be listed."},
		})
	}

	notice := "Show was successfully listed!"
	if err := h.service.CreateShow(c.Context(), uint(artistID), uint(venueID), startTime); err != nil {
		h.logger.WithError(err).Error("Failed to create show")
		notice = "An error occurred. Show could not be listed."
	}

	return renderPage(c, h.sessions, "home", fiber.Map{
		"Flashes": []string{notice},
	})
}
