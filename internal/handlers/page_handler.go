package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// PageHandler serves the pages that carry no entity data.
type PageHandler struct {
	sessions *session.Store
}

func NewPageHandler(sessions *session.Store) *PageHandler {
	return &PageHandler{sessions: sessions}
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return renderPage(c, h.sessions, "home", nil)
}
