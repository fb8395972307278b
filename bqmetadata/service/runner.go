package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/bqmetadata/service/iface"
	"github.com/erictt/bq-metadata-search/logger"
)

// Runner streams the units of an extraction into a UnitWriter. Units are
// produced on one goroutine and persisted on the caller's goroutine, with up
// to buffer units waiting in between.
type Runner struct {
	loggerProvider logger.Provider
	extractor      *Extractor
	writer         iface.UnitWriter
	buffer         int
}

// NewRunner creates a Runner. A nil writer runs the extraction without
// persisting anything.
func NewRunner(loggerProvider logger.Provider, extractor *Extractor, writer iface.UnitWriter, buffer int) *Runner {
	if buffer < 0 {
		buffer = 0
	}

	return &Runner{
		loggerProvider: loggerProvider,
		extractor:      extractor,
		writer:         writer,
		buffer:         buffer,
	}
}

// Run extracts projectID and persists every unit as soon as it is produced.
// When doc is not nil the units are appended to it too.
//
// Entities that fail to save are counted in the summary and their errors
// are returned together as a *multierror.Error once the run completes. Any
// other error ends the run early.
func (r *Runner) Run(ctx context.Context, projectID string, doc *domain.Document) (*domain.Summary, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	l := r.loggerProvider(ctx)
	l.SetLabels(map[string]string{
		"feature": "bq-metadata",
		"module":  "extraction",
		"service": "runner",
		"project": projectID,
	})

	summary := &domain.Summary{ProjectID: projectID}
	it := r.extractor.Units(projectID)
	units := make(chan *domain.Unit, r.buffer)

	errg, gctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		defer close(units)

		for {
			unit, err := it.Next(gctx)
			if err == iterator.Done {
				return nil
			}

			if err != nil {
				return err
			}

			select {
			case units <- unit:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	var saveErrs *multierror.Error

	for unit := range units {
		if doc != nil {
			doc.Add(unit)
		}

		if err := r.persist(gctx, unit, summary); err != nil {
			saveErrs = multierror.Append(saveErrs, err)
		}
	}

	if err := errg.Wait(); err != nil {
		return nil, fmt.Errorf("extract %s: %w", projectID, err)
	}

	summary.SkippedDatasets = it.Skipped()

	if saveErrs != nil {
		for _, err := range saveErrs.Errors {
			summary.Errors = append(summary.Errors, err.Error())
		}
	}

	l.Infof("extraction of %s finished: %d datasets, %d tables, %d fields saved; %d datasets skipped, %d entities failed",
		projectID, summary.Datasets, summary.Tables, summary.Fields,
		summary.SkippedDatasets, summary.FailedEntities)

	return summary, saveErrs.ErrorOrNil()
}

// persist saves the dataset, then its tables, then its fields. Errors of a
// single entity are collected and do not stop the rest of the unit.
func (r *Runner) persist(ctx context.Context, unit *domain.Unit, summary *domain.Summary) error {
	if r.writer == nil {
		summary.Datasets++
		summary.Tables += len(unit.Tables)
		summary.Fields += len(unit.Fields)

		return nil
	}

	var result *multierror.Error

	if err := r.writer.SaveDataset(ctx, unit.Dataset); err != nil {
		summary.FailedEntities++
		result = multierror.Append(result, err)
	} else {
		summary.Datasets++
	}

	for _, t := range unit.Tables {
		if err := r.writer.SaveTable(ctx, t); err != nil {
			summary.FailedEntities++
			result = multierror.Append(result, err)

			continue
		}

		summary.Tables++
	}

	for _, f := range unit.Fields {
		if err := r.writer.SaveField(ctx, f); err != nil {
			summary.FailedEntities++
			result = multierror.Append(result, err)

			continue
		}

		summary.Fields++
	}

	return result.ErrorOrNil()
}
