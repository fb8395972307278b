package mid

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/erictt/bq-metadata-search/framework/web"
)

func logSentryError(ctx *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelError)
			scope.SetTag("route", ctx.FullPath())
			hub.CaptureException(err)
		})
	}
}

// Sentry reports handler errors that end as a 5xx response.
// Request errors with a 4xx status are expected and are not reported.
func Sentry() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			err := before(ctx)
			if err == nil {
				return nil
			}

			var webErr *web.Error
			if !errors.As(err, &webErr) || webErr.Status >= http.StatusInternalServerError {
				logSentryError(ctx, err)
			}

			return err
		}

		return h
	}

	return f
}
