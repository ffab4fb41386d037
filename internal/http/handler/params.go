package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// param returns a named request parameter, reading the form body first and
// falling back to the query string. The settings endpoints accept their
// parameters through either channel.
func param(c *fiber.Ctx, key string) string {
	if v := c.FormValue(key); v != "" {
		return v
	}
	return c.Query(key)
}

// paramInt64 parses a required numeric request parameter.
func paramInt64(c *fiber.Ctx, key string) (int64, error) {
	v := param(c, key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric: %q", key, v)
	}
	return n, nil
}

// paramInt is paramInt64 for int-sized parameters.
func paramInt(c *fiber.Ctx, key string) (int, error) {
	n, err := paramInt64(c, key)
	return int(n), err
}
