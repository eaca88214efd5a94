package request

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ListParams carries validated pagination and ordering for list queries.
// Handlers trust these values; all defaulting and whitelisting happens
// here.
type ListParams struct {
	Skip    int
	Limit   int
	OrderBy string
	Sort    string
}

// Columns clients may order todos by. Anything else silently falls back
// to the id column.
var orderableColumns = map[string]bool{
	"id":         true,
	"todo":       true,
	"completed":  true,
	"created_at": true,
	"updated_at": true,
}

// ParseListParams reads skip, limit, order_by and sort from the query
// string, applying defaults for missing or invalid values.
func ParseListParams(c *gin.Context) ListParams {
	params := ListParams{
		Skip:    0,
		Limit:   DefaultLimit,
		OrderBy: "id",
		Sort:    "ASC",
	}

	if skip, err := strconv.Atoi(c.Query("skip")); err == nil && skip >= 0 {
		params.Skip = skip
	}

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		if limit > MaxLimit {
			limit = MaxLimit
		}
		params.Limit = limit
	}

	if orderBy := strings.ToLower(c.Query("order_by")); orderableColumns[orderBy] {
		params.OrderBy = orderBy
	}

	if sort := strings.ToUpper(c.Query("sort")); sort == "DESC" {
		params.Sort = "DESC"
	}

	return params
}

// Order returns the clause in "column direction" form for gorm.
func (p ListParams) Order() string {
	return p.OrderBy + " " + p.Sort
}
