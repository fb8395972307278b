package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erictt/bq-metadata-search/internal"
)

// Respond converts a Go value to JSON and sends it to the client with the corresponded status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	v, ok := internal.DataFromContext(ctx)
	if ok {
		v.StatusCode = statusCode
	}

	// If there is nothing to marshal then set status code and return.
	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondError sends an error response back to the client.
// Only the message of request errors reaches the client.
func RespondError(ctx *gin.Context, err error) error {
	var webErr *Error
	if errors.As(err, &webErr) && webErr.Status < http.StatusInternalServerError {
		return Respond(ctx, ErrorResponse{Error: webErr.Err.Error()}, webErr.Status)
	}

	status := http.StatusInternalServerError
	if webErr != nil {
		status = webErr.Status
	}

	return Respond(ctx, ErrorResponse{Error: http.StatusText(status)}, status)
}

// RespondDownloadFile sends data as an attachment named filename.
func RespondDownloadFile(ctx *gin.Context, data []byte, filename string) error {
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "application/json", data)

	return nil
}
