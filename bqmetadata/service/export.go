package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/goccy/go-json"
	"google.golang.org/api/option"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/logger"
)

const gcsScheme = "gs://"

// Exporter writes extraction documents to a local file or a Cloud Storage object.
type Exporter struct {
	loggerProvider logger.Provider
	clientOptions  []option.ClientOption
}

func NewExporter(loggerProvider logger.Provider, opts ...option.ClientOption) *Exporter {
	return &Exporter{
		loggerProvider: loggerProvider,
		clientOptions:  opts,
	}
}

// Export writes doc as indented JSON to dest, which is a local path or a
// gs://bucket/object URL.
func (e *Exporter) Export(ctx context.Context, doc *domain.Document, dest string) error {
	if dest == "" {
		return ErrInvalidDestination
	}

	if strings.HasPrefix(dest, gcsScheme) {
		bucket, object, err := parseGCSPath(dest)
		if err != nil {
			return err
		}

		if err := e.exportToGCS(ctx, doc, bucket, object); err != nil {
			return err
		}
	} else if err := exportToFile(doc, dest); err != nil {
		return err
	}

	e.loggerProvider(ctx).Infof("metadata of %s exported to %s", doc.ProjectID, dest)

	return nil
}

func exportToFile(doc *domain.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := encodeDocument(f, doc); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (e *Exporter) exportToGCS(ctx context.Context, doc *domain.Document, bucket, object string) error {
	gcs, err := storage.NewClient(ctx, e.clientOptions...)
	if err != nil {
		return fmt.Errorf("storage client: %w", err)
	}
	defer gcs.Close()

	objWriter := gcs.Bucket(bucket).Object(object).NewWriter(ctx)
	objWriter.ContentType = "application/json"

	if err := encodeDocument(objWriter, doc); err != nil {
		objWriter.Close()
		return err
	}

	if err := objWriter.Close(); err != nil {
		return fmt.Errorf("write gs://%s/%s: %w", bucket, object, err)
	}

	return nil
}

func encodeDocument(w io.Writer, doc *domain.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	return nil
}

func parseGCSPath(dest string) (string, string, error) {
	path := strings.TrimPrefix(dest, gcsScheme)

	bucket, object, ok := strings.Cut(path, "/")
	if !ok || bucket == "" || object == "" || strings.HasSuffix(object, "/") {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidDestination, dest)
	}

	return bucket, object, nil
}
