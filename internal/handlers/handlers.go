package handlers

import (
	"strconv"

	"gigbook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// renderPage renders a view with flash notices attached to the binding
// under "Flashes". Notices already in the binding (queued by the
// current handler) are merged with notices a previous request left in
// the session; the session cookie is not readable within the request
// that set it, so same-request notices must travel via the binding.
func renderPage(c *fiber.Ctx, store *session.Store, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	flashes, _ := bind["Flashes"].([]string)
	bind["Flashes"] = append(flashes, utils.TakeFlashes(store, c)...)
	return c.Render(name, bind)
}

// parseID reads the :id route parameter. A non-numeric id behaves like
// an unmatched route.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}
