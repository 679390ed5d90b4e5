package interfaces

import (
	"context"
	"presubuild/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/mock_catalog_repository_interface.go -package=mock_interfaces

// ICatalogRepository abstracts persistence of catalog items.
//
// GetByID returns a zero CatalogItem when the id is unknown.

type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	Upsert(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
}
