package jsonfile

import (
	"context"

	"github.com/zyraworkhub/zyra/core/catalog"
)

type catalogRepository struct {
	store *Store
}

func NewCatalogRepository(store *Store) catalog.Repository {
	return &catalogRepository{store: store}
}

func (repo *catalogRepository) ListEntries(_ context.Context, collection string) ([]catalog.Entry, error) {
	return Read[catalog.Entry](repo.store, collection), nil
}
