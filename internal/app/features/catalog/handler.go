// Package catalog serves the resource listing and detail endpoints: the
// browse/filter/search surface of the directory.
package catalog

import (
	"go.uber.org/zap"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	collectionstore "github.com/stashdir/stashd/internal/app/store/collections"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
)

// Handler owns the public catalog endpoints (list, detail).
//
// It is constructed once at startup in bootstrap with the shared stores
// and logger.
type Handler struct {
	Resources   *resourcestore.Store
	Collections *collectionstore.Store
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
}

// NewHandler constructs a catalog Handler.
func NewHandler(res *resourcestore.Store, cols *collectionstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Resources:   res,
		Collections: cols,
		Log:         logger,
		ErrLog:      errLog,
	}
}
