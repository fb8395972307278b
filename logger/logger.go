package logger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/erictt/bq-metadata-search/common"
)

const (
	// CtxLoggerKey is how request values or stored/retrieved.
	CtxLoggerKey = "app-logger"

	// parentLogID is the name of the log file for parent logging.
	parentLogID = "parent_logger"

	// childLogID is the name of the log file for child logging.
	childLogID = "child_logger"

	// labels keys for monitored resource definition
	projectIDField = "project_id"
	jobField       = "job"
	taskIDField    = "task_id"
	locationField  = "location"
	namespaceField = "namespace"

	genericTaskType = "generic_task"
)

var (
	parentLogger *logging.Logger
	childLogger  *logging.Logger
	resource     *monitoredres.MonitoredResource
	cloudLogging bool
)

type Provider func(ctx context.Context) ILogger

type Logging struct {
	client *logging.Client
}

// NewLogging initializes parent & child google cloud logging clients.
// When cloud logging is disabled entries are only mirrored to the standard logger.
func NewLogging(ctx context.Context, projectID string, enabled bool) (*Logging, error) {
	cloudLogging = enabled && projectID != ""
	if !cloudLogging {
		return &Logging{}, nil
	}

	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	parentLogger = client.Logger(parentLogID)
	childLogger = client.Logger(childLogID)

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			projectIDField: projectID,
			jobField:       common.ServiceName,
			taskIDField:    common.ServiceVersion,
			locationField:  "global",
			namespaceField: common.ServiceName,
		},
		Type: genericTaskType,
	}

	return &Logging{client: client}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// Close flushes buffered entries and closes the cloud logging client.
func (l *Logging) Close() error {
	if l.client == nil {
		return nil
	}

	return l.client.Close()
}

// NewLogger sets gin.Context with a new logger, with the related google trace id.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get("X-Cloud-Trace-Context")
	}

	if h != "" {
		if i := strings.IndexByte(h, '/'); i > 0 {
			if t := h[:i]; strings.Count(t, "0") != len(t) {
				l.trace = getTrace(l.started, t)
			}
		}
	}

	ctx.Set(CtxLoggerKey, l)

	return l, nil
}

// WithLogger returns a copy of ctx carrying l, for code running outside a request.
func WithLogger(ctx context.Context, l ILogger) context.Context {
	return context.WithValue(ctx, CtxLoggerKey, l) //nolint:staticcheck
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(ILogger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	return fmt.Sprintf("projects/%s/traces/%d%s", common.ProjectID, started.UnixNano(), id)
}
