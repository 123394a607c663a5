// Package handlers maps HTTP requests to service calls: query and
// path parsing, body decoding, field validation and the uniform error
// shaping on the way out.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"personal-finance-backend/internal/apierror"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// decodeBody reads and unmarshals the request body. A missing, empty
// or unparseable body answers a bare 400, before any field check.
func decodeBody(c *gin.Context, out any) bool {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		c.Status(http.StatusBadRequest)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.Status(http.StatusBadRequest)
		return false
	}
	return true
}

// respondError renders a service error. Anything that is not already
// an api error is a persistence failure and gets translated so no raw
// store error reaches the client.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierror.FromPersistence(err)
	}
	c.JSON(apiErr.Status, apiErr)
}

// pathID parses the {id} segment. A non-numeric id cannot resolve to
// anything, so it answers the same 404 shape an unknown id does.
func pathID(c *gin.Context, entity string) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, apierror.IDNotFound(entity, raw))
		return 0, false
	}
	return id, true
}

// pageParams reads page and size, falling back to the defaults on
// anything missing or unusable.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = defaultPage
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size <= 0 {
		size = defaultSize
	}
	return page, size
}

func countResponse(c *gin.Context, n int64) {
	c.String(http.StatusOK, strconv.FormatInt(n, 10))
}
