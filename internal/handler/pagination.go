package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	defaultSkip  = 0
)

// parsePagination reads the limit/skip query parameters. limit must be a
// positive integer, skip a non-negative one; absent parameters fall back to
// the defaults. Returns ok=false after writing the failure response.
func parsePagination(c *gin.Context) (limit, skip int, ok bool) {
	limit, err := parseQueryInt(c, "limit", defaultLimit)
	if err != nil || limit <= 0 {
		failValidation(c, map[string]string{"limit": "limit must be a positive integer"})
		return 0, 0, false
	}

	skip, err = parseQueryInt(c, "skip", defaultSkip)
	if err != nil || skip < 0 {
		failValidation(c, map[string]string{"skip": "skip must be a non-negative integer"})
		return 0, 0, false
	}

	return limit, skip, true
}

func parseQueryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// parseIDList reads a repeatable query parameter, additionally splitting
// comma-separated values, so both ?course_ids=a&course_ids=b and
// ?course_ids=a,b work.
func parseIDList(c *gin.Context, key string) []string {
	var ids []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				ids = append(ids, trimmed)
			}
		}
	}
	return ids
}
