package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
)

type Paging struct {
	Limit  int
	Offset int
}

// ResolvePaging reads ?limit= & ?offset= with the master-list defaults.
func ResolvePaging(c *fiber.Ctx) Paging {
	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil || limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	offset, err := strconv.Atoi(strings.TrimSpace(c.Query("offset")))
	if err != nil || offset < 0 {
		offset = constants.DefaultOffset
	}
	return Paging{Limit: limit, Offset: offset}
}

// IsDropdown reports whether the list was requested as a plain dropdown
// array (?apiType=dropdown) instead of the {count, rows} envelope.
func IsDropdown(c *fiber.Ctx) bool {
	return c.Query("apiType") == constants.APITypeDropdown
}

// ListResult is the paginated list envelope.
type ListResult struct {
	Count int64       `json:"count"`
	Rows  interface{} `json:"rows"`
}
