package mid

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/erictt/bq-metadata-search/framework/web"
	"github.com/erictt/bq-metadata-search/internal"
	"github.com/erictt/bq-metadata-search/logger"
)

const sentryFlushTimeout = 5 * time.Second

// Panics recovers from panics and converts the panic to a 500 request error.
func Panics() web.Middleware {
	f := func(after web.Handler) web.Handler {
		h := func(ctx *gin.Context) (err error) {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			defer func() {
				r := recover()
				if r == nil {
					return
				}

				panicErr := fmt.Errorf("panic: %v", r)
				logger.FromContext(ctx).Errorf("%s: %s\n%s", v.TraceID, panicErr, debug.Stack())

				if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
					hub.WithScope(func(scope *sentry.Scope) {
						hub.Recover(panicErr)
						sentry.Flush(sentryFlushTimeout)
					})
				}

				err = web.NewRequestError(panicErr, http.StatusInternalServerError)
			}()

			return after(ctx)
		}

		return h
	}

	return f
}
