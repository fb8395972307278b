package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/store"
	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/bqmetadata/service"
	"github.com/erictt/bq-metadata-search/bqmetadata/service/iface"
	"github.com/erictt/bq-metadata-search/framework/web"
	"github.com/erictt/bq-metadata-search/logger"
)

var (
	errTableNotFound  = errors.New("table not found")
	errMissingProject = errors.New("missing project id")
)

type MessageResponse struct {
	Message string `json:"message"`
}

type Metadata struct {
	loggerProvider logger.Provider
	service        iface.MetadataService
}

func NewMetadata(loggerProvider logger.Provider, service iface.MetadataService) *Metadata {
	return &Metadata{
		loggerProvider,
		service,
	}
}

func (h *Metadata) ListProjects(ctx *gin.Context) error {
	projects, err := h.service.ListProjects(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, projects, http.StatusOK)
}

func (h *Metadata) ListDatasets(ctx *gin.Context) error {
	datasets, err := h.service.ListDatasets(ctx, domain.DatasetFilter{
		ProjectID: ctx.Query("project_id"),
	})
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, datasets, http.StatusOK)
}

func (h *Metadata) ListTables(ctx *gin.Context) error {
	tables, err := h.service.ListTables(ctx, domain.TableFilter{
		ProjectID: ctx.Query("project_id"),
		DatasetID: ctx.Query("dataset_id"),
	})
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, tables, http.StatusOK)
}

func (h *Metadata) ListFields(ctx *gin.Context) error {
	fields, err := h.service.ListFields(ctx, domain.FieldFilter{
		ProjectID: ctx.Query("project_id"),
		DatasetID: ctx.Query("dataset_id"),
		TableID:   ctx.Query("table_id"),
	})
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, fields, http.StatusOK)
}

func (h *Metadata) GetTableWithFields(ctx *gin.Context) error {
	datasetID := ctx.Param("datasetID")
	tableID := ctx.Param("tableID")

	table, err := h.service.GetTableWithFields(ctx, datasetID, tableID)
	if errors.Is(err, store.ErrNotFound) {
		return web.NewRequestError(errTableNotFound, http.StatusNotFound)
	}

	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, table, http.StatusOK)
}

func (h *Metadata) Search(ctx *gin.Context) error {
	var query domain.SearchQuery
	if err := ctx.ShouldBindJSON(&query); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	result, err := h.service.Search(ctx, query)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *Metadata) AdvancedSearch(ctx *gin.Context) error {
	var query domain.AdvancedSearchQuery
	if err := ctx.ShouldBindJSON(&query); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	result, err := h.service.AdvancedSearch(ctx, query)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *Metadata) DeleteDataset(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")
	datasetID := ctx.Param("datasetID")

	err := h.service.DeleteDataset(ctx, projectID, datasetID)
	if errors.Is(err, store.ErrNotFound) {
		return web.NewRequestError(
			fmt.Errorf("dataset %s not found in project %s", datasetID, projectID),
			http.StatusNotFound,
		)
	}

	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, MessageResponse{
		Message: fmt.Sprintf("dataset %s deleted successfully", datasetID),
	}, http.StatusOK)
}

func (h *Metadata) DeleteTable(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")
	datasetID := ctx.Param("datasetID")
	tableID := ctx.Param("tableID")

	err := h.service.DeleteTable(ctx, projectID, datasetID, tableID)
	if errors.Is(err, store.ErrNotFound) {
		return web.NewRequestError(
			fmt.Errorf("table %s not found in dataset %s", tableID, datasetID),
			http.StatusNotFound,
		)
	}

	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, MessageResponse{
		Message: fmt.Sprintf("table %s deleted successfully", tableID),
	}, http.StatusOK)
}

// Extract runs one extraction of the project into the store. Entities that
// could not be saved are listed in the summary and answered with 207.
func (h *Metadata) Extract(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")
	if projectID == "" {
		return web.NewRequestError(errMissingProject, http.StatusBadRequest)
	}

	l := h.loggerProvider(ctx)
	l.SetLabels(map[string]string{
		"feature": "bq-metadata",
		"module":  "extraction",
		"project": projectID,
	})

	summary, err := h.service.Extract(ctx, projectID)

	var merr *multierror.Error
	if errors.As(err, &merr) && summary != nil {
		l.Warningf("extraction of %s saved with %d errors", projectID, len(merr.Errors))
		return web.Respond(ctx, summary, http.StatusMultiStatus)
	}

	if errors.Is(err, service.ErrInvalidProjectID) {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, summary, http.StatusOK)
}
