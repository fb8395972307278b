package service

import (
	"strings"

	"github.com/erictt/bq-metadata-search/config"
)

// DatasetFilter decides, from the dataset short name alone, whether a dataset
// is left out of an extraction before any of its tables are fetched.
type DatasetFilter interface {
	ShouldSkip(datasetName string) bool
}

// DatasetFilterFunc adapts a function to DatasetFilter.
type DatasetFilterFunc func(datasetName string) bool

func (f DatasetFilterFunc) ShouldSkip(datasetName string) bool {
	return f(datasetName)
}

// PrefixSuffixFilter keeps datasets whose name starts with Prefix and ends
// with none of ExcludedSuffixes.
type PrefixSuffixFilter struct {
	Prefix           string
	ExcludedSuffixes []string
}

func (f PrefixSuffixFilter) ShouldSkip(datasetName string) bool {
	if !strings.HasPrefix(datasetName, f.Prefix) {
		return true
	}

	for _, suffix := range f.ExcludedSuffixes {
		if suffix != "" && strings.HasSuffix(datasetName, suffix) {
			return true
		}
	}

	return false
}

// KeepAllFilter never skips a dataset.
var KeepAllFilter = DatasetFilterFunc(func(string) bool { return false })

// NewDatasetFilter builds the filter described by cfg.
func NewDatasetFilter(cfg config.FilterConfig) DatasetFilter {
	if cfg.Disabled {
		return KeepAllFilter
	}

	return PrefixSuffixFilter{
		Prefix:           cfg.Prefix,
		ExcludedSuffixes: cfg.ExcludedSuffixes,
	}
}
