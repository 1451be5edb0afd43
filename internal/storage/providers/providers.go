package providers

import "github.com/jackc/pgx/v5/pgxpool"

type Providers struct {
	CatalogProvider *CatalogProvider
}

// New builds every provider over one shared pool. A nil pool is allowed: the
// process came up without storage configured and every call reports the
// backend as unavailable.
func New(db *pgxpool.Pool) *Providers {
	return &Providers{
		CatalogProvider: NewCatalogProvider(db),
	}
}
