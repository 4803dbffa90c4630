// middleware/request_id.go
package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags every request with an id (honoring an inbound X-Request-ID),
// echoes it on the response and logs the request line with its outcome.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set("X-Request-ID", id)

		start := time.Now()
		err := c.Next()

		short := id
		if len(short) > 8 {
			short = short[:8]
		}
		log.Printf("[%s] %s %s → %d (%s)",
			short, c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
