package service

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/bqmetadata/service/iface"
	"github.com/erictt/bq-metadata-search/logger"
)

const placeholderDescription = "Automatically added from fields data"

// Repairer restores the table rows that stored fields refer to.
type Repairer struct {
	loggerProvider logger.Provider
	store          iface.MetadataStore
}

func NewRepairer(loggerProvider logger.Provider, store iface.MetadataStore) *Repairer {
	return &Repairer{
		loggerProvider: loggerProvider,
		store:          store,
	}
}

// RepairMissingTables saves a placeholder table for every table that has
// fields but no row. Tables that fail to save are counted and their errors
// returned together once every table was tried.
func (r *Repairer) RepairMissingTables(ctx context.Context) (*domain.RepairSummary, error) {
	l := r.loggerProvider(ctx)

	refs, err := r.store.MissingTables(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.RepairSummary{Missing: len(refs)}

	if len(refs) == 0 {
		l.Infof("no missing tables found")
		return summary, nil
	}

	var result *multierror.Error

	for _, ref := range refs {
		if err := r.store.SaveTable(ctx, placeholderTable(ref)); err != nil {
			l.Errorf("error adding table %s: %v", ref.FullID(), err)

			summary.Failed++
			summary.Errors = append(summary.Errors, err.Error())
			result = multierror.Append(result, err)

			continue
		}

		l.Infof("added missing table %s", ref.FullID())

		summary.Added++
	}

	l.Infof("%d of %d missing tables added", summary.Added, summary.Missing)

	return summary, result.ErrorOrNil()
}

func placeholderTable(ref domain.TableRef) domain.Table {
	return domain.Table{
		ID:           ref.TableID,
		FullID:       ref.FullID(),
		DatasetID:    ref.DatasetID,
		ProjectID:    ref.ProjectID,
		FriendlyName: domain.StringPtr(ref.TableID),
		Description:  domain.StringPtr(placeholderDescription),
		TableType:    domain.StringPtr(string(domain.TableTypeTable)),
	}
}
