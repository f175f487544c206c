package http

import (
	"strconv"
	"time"

	"github.com/brotherhood/barbershop_backend/internal/application"
	"github.com/brotherhood/barbershop_backend/internal/config"
	"github.com/gofiber/fiber/v2"
)

const (
	cacheControlGallery         = "public, s-maxage=3600, stale-while-revalidate=86400"
	cacheControlGalleryFallback = "public, s-maxage=60, stale-while-revalidate=300"
)

// AppConfig builds the fiber settings for the server. With a proxy header
// configured, c.IP() reports the first valid address in that header, and
// with trusted proxies set the header is honoured only for those peers.
func AppConfig(server config.ServerConfig) fiber.Config {
	cfg := fiber.Config{
		AppName:               "brotherhood-barbershop",
		DisableStartupMessage: true,
	}
	if server.ProxyHeader != "" {
		cfg.ProxyHeader = server.ProxyHeader
		cfg.EnableIPValidation = true
		if len(server.TrustedProxies) > 0 {
			cfg.EnableTrustedProxyCheck = true
			cfg.TrustedProxies = server.TrustedProxies
		}
	}
	return cfg
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// RateLimit rejects requests from a client IP that exhausted its window.
// Behind a reverse proxy the app must be built with AppConfig and a proxy
// header, otherwise every visitor shares the proxy's address.
func RateLimit(limiter *application.RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, retryAfter := limiter.Allow(c.IP())
		if !ok {
			seconds := int(retryAfter.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
			return errorJSON(c, fiber.StatusTooManyRequests, "Too many booking requests. Please try again later or contact us directly.")
		}
		return c.Next()
	}
}
