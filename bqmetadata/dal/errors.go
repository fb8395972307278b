package dal

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrCatalogNotFound  = errors.New("catalog entity not found")
	ErrCatalogForbidden = errors.New("catalog access denied")
)

// translateError tags not-found and forbidden catalog responses with sentinel errors,
// keeping the original error in the chain.
func translateError(err error) error {
	var gapiErr *googleapi.Error
	if !errors.As(err, &gapiErr) {
		return err
	}

	switch gapiErr.Code {
	case http.StatusNotFound:
		return errors.Join(ErrCatalogNotFound, err)
	case http.StatusForbidden:
		return errors.Join(ErrCatalogForbidden, err)
	}

	return err
}
