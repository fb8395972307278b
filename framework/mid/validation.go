package mid

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/erictt/bq-metadata-search/framework/web"
)

// ValidatePathParams rejects requests where any of the named path params is
// empty or contains a dot, since dots separate the parts of a full id.
func ValidatePathParams(paramNames ...string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			for _, name := range paramNames {
				value := ctx.Param(name)

				if value == "" {
					return web.NewRequestError(fmt.Errorf("error: %s cannot be empty", name), http.StatusBadRequest)
				}

				if strings.Contains(value, ".") {
					return web.NewRequestError(fmt.Errorf("error: %s cannot contain '.'", name), http.StatusBadRequest)
				}
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
