package utils

import (
	"encoding/gob"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const flashSessionKey = "_flashes"

// the session store gob-encodes its values
func init() {
	gob.Register([]string{})
}

// AddFlash queues a one-shot notice for the next rendered page.
func AddFlash(store *session.Store, c *fiber.Ctx, message string) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}

	flashes, _ := sess.Get(flashSessionKey).([]string)
	sess.Set(flashSessionKey, append(flashes, message))
	return sess.Save()
}

// TakeFlashes returns and clears any queued notices.
func TakeFlashes(store *session.Store, c *fiber.Ctx) []string {
	sess, err := store.Get(c)
	if err != nil {
		return nil
	}

	flashes, _ := sess.Get(flashSessionKey).([]string)
	if len(flashes) > 0 {
		sess.Delete(flashSessionKey)
		if err := sess.Save(); err != nil {
			return flashes
		}
	}
	return flashes
}
