package mid

import (
	"github.com/gin-gonic/gin"

	"github.com/erictt/bq-metadata-search/framework/web"
	"github.com/erictt/bq-metadata-search/internal"
	"github.com/erictt/bq-metadata-search/logger"
)

// Errors handles errors coming out of the call chain. It detects normal
// application errors which are used to respond to the client in a uniform way.
// Unexpected errors are responded with status 500.
func Errors() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			err := before(ctx)
			if err == nil {
				return nil
			}

			logger.FromContext(ctx).Errorf("%s: ERROR: %v", v.TraceID, err)

			// If we receive the shutdown err we need to return it
			// back to the base handler to shutdown the service.
			if web.IsShutdown(err) {
				return err
			}

			_ = ctx.Error(err)

			return web.RespondError(ctx, err)
		}

		return h
	}

	return f
}
