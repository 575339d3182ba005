package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
)

// bindPagination reads the page/size query parameters, applying the defaults
// (page 1, size 10) and rejecting out-of-range values.
func bindPagination(c echo.Context) (page, size int, err error) {
	page, err = queryInt(c, "page", defaultPage)
	if err != nil || page < 1 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page must be an integer >= 1")
	}

	size, err = queryInt(c, "size", defaultSize)
	if err != nil || size < 1 || size > maxSize {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size must be an integer between 1 and 100")
	}

	return page, size, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
