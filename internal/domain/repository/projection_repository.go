package repository

import (
	"context"

	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
)

// ProjectionRepository loads a projection payload.
//
// An empty source selects the bundled sample dataset, an s3://bucket/key
// source is read from object storage and anything else is a local file.
type ProjectionRepository interface {
	Load(ctx context.Context, source string) (entity.ProjectionDocument, error)
}
