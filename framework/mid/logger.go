package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erictt/bq-metadata-search/framework/web"
	"github.com/erictt/bq-metadata-search/internal"
	"github.com/erictt/bq-metadata-search/logger"
)

const (
	healthCheckExcludePath = "/health"
)

// Logger writes some information about the request to the logs in the
// format: TraceID : (200) GET /foo -> IP ADDR (latency)
func Logger() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if ctx.Request.URL.Path == healthCheckExcludePath {
				return before(ctx)
			}

			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)
			log.SetLabels(map[string]string{
				"route": v.Route,
			})

			log.Infof("%s: started : %s %s -> %s",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.Request.RemoteAddr,
			)

			err := before(ctx)

			if err != nil {
				log.Errorf("ERROR: %s", err)
			} else if v.StatusCode >= http.StatusBadRequest || v.StatusCode == 0 {
				if lastErr := ctx.Errors.Last(); lastErr != nil {
					log.Errorf("request fails %s", lastErr)
				}
			}

			log.Infof("%s: completed : %s %s -> %s (%d) (%s)",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.Request.RemoteAddr,
				v.StatusCode, v.Elapsed(),
			)

			return err
		}

		return h
	}

	return f
}
