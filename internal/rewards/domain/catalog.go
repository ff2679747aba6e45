package domain

import "context"

type CatalogItem struct {
	Id            int64
	Name          string
	PointsCost    uint32
	StockQuantity uint32
	Active        bool
}

// RewardCatalog owns item metadata and stock counters. Cost and the active
// flag are maintained by the catalog-admin side of the portal; redemption
// only reads them and moves stock.
type RewardCatalog interface {
	GetItem(ctx context.Context, itemId int64) (CatalogItem, error)

	// TryReserveStock decrements stock by one only if the item is active and
	// stock is positive. Reports OutOfStockError or ItemInactiveError without
	// mutating otherwise. Same atomicity requirement as TryDebit.
	TryReserveStock(ctx context.Context, itemId int64) error

	// ReleaseStock undoes a reservation that could not be paired with a
	// successful debit.
	ReleaseStock(ctx context.Context, itemId int64) error
}
