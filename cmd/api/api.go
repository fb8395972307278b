package api

import (
	"os"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/store"
	metadataHandlers "github.com/erictt/bq-metadata-search/bqmetadata/handlers"
	"github.com/erictt/bq-metadata-search/bqmetadata/service"
	"github.com/erictt/bq-metadata-search/cmd/api/handlers"
	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/framework/mid"
	"github.com/erictt/bq-metadata-search/framework/web"
	"github.com/erictt/bq-metadata-search/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown  chan os.Signal
	cfg       *config.AppConfig
	log       *logger.Logging
	store     *store.Store
	extractor *service.Extractor
}

func NewAPI(shutdown chan os.Signal, cfg *config.AppConfig, logging *logger.Logging, st *store.Store, extractor *service.Extractor) *API {
	return &API{
		shutdown,
		cfg,
		logging,
		st,
		extractor,
	}
}

// Build builds the api endpoints with the needed middlewares.
func (a *API) Build() *web.App {
	loggerProvider := a.log.Logger

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.cfg.SentryDSN, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	metadataService := service.NewMetadataService(loggerProvider, a.store, a.extractor, a.cfg.Extract.Buffer)
	metadata := metadataHandlers.NewMetadata(loggerProvider, metadataService)

	app.Get("/health", handlers.Health(a.store))

	apiGroup := web.NewGroup(app, "/api")
	{
		apiGroup.Get("/projects", metadata.ListProjects)
		apiGroup.Get("/datasets", metadata.ListDatasets)
		apiGroup.Get("/tables", metadata.ListTables)
		apiGroup.Get("/fields", metadata.ListFields)
		apiGroup.Get("/tables/:datasetID/:tableID", metadata.GetTableWithFields)

		apiGroup.Post("/search", metadata.Search)
		apiGroup.Post("/advanced-search", metadata.AdvancedSearch)

		// project ids may contain dots (domain-scoped projects), dataset and table names never do
		apiGroup.Delete("/datasets/:projectID/:datasetID", metadata.DeleteDataset,
			mid.ValidatePathParams("datasetID"))
		apiGroup.Delete("/tables/:projectID/:datasetID/:tableID", metadata.DeleteTable,
			mid.ValidatePathParams("datasetID", "tableID"))

		apiGroup.Post("/extract/:projectID", metadata.Extract)
	}

	return app
}
