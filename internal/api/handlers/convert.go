package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/internal/service"
)

// AssetResponse is an asset plus its resolved technical sheet. The
// resolved view is what clients render; the raw override fields stay
// visible so edit forms can distinguish inherited from overridden.
type AssetResponse struct {
	*ent.Activo
	Specs service.AssetSpecs `json:"specs"`
}

// listEnvelope wraps list responses with the applied paging window.
type listEnvelope struct {
	Items   interface{} `json:"items"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// defaultPagination normalizes page/per_page query params.
func defaultPagination(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.Query("page"))
	perPage, _ = strconv.Atoi(c.Query("per_page"))
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func pagedList(c *gin.Context) (limit, offset, page, perPage int) {
	page, perPage = defaultPagination(c)
	return perPage, (page - 1) * perPage, page, perPage
}

// intQuery parses an optional positive integer query param.
func intQuery(c *gin.Context, key string) (int, bool) {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
