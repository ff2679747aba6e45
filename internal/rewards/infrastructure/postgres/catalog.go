package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/database"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
	"github.com/jackc/pgx/v5"
)

type CatalogRepository struct {
	db database.QueryExecuter
}

func NewCatalogRepository(db database.QueryExecuter) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

func (cr *CatalogRepository) GetItem(ctx context.Context, itemId int64) (domain.CatalogItem, error) {
	selectItemSQL := `SELECT id, name, points_cost, stock_quantity, active FROM catalog_items WHERE id = $1`

	var item domain.CatalogItem
	err := cr.db.QueryRow(ctx, selectItemSQL, itemId).
		Scan(&item.Id, &item.Name, &item.PointsCost, &item.StockQuantity, &item.Active)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CatalogItem{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %d not found", itemId)}
		}

		return domain.CatalogItem{}, classifyError(err, "failed to find catalog item")
	}

	return item, nil
}

// TryReserveStock decrements stock in a single conditional statement. A zero
// rows-affected result is disambiguated with a follow-up read so the caller
// learns whether the item was missing, inactive or sold out.
func (cr *CatalogRepository) TryReserveStock(ctx context.Context, itemId int64) error {
	reserveSQL := `UPDATE catalog_items SET stock_quantity = stock_quantity - 1
WHERE id = $1 AND active AND stock_quantity > 0`

	tag, err := cr.db.Exec(ctx, reserveSQL, itemId)
	if err != nil {
		return classifyError(err, "failed to reserve stock")
	}

	if tag.RowsAffected() == 0 {
		item, err := cr.GetItem(ctx, itemId)
		if err != nil {
			return err
		}

		if !item.Active {
			return &domain.ItemInactiveError{Msg: fmt.Sprintf("item %d is not redeemable", itemId)}
		}

		return &domain.OutOfStockError{Msg: fmt.Sprintf("item %d is out of stock", itemId)}
	}

	return nil
}

func (cr *CatalogRepository) ReleaseStock(ctx context.Context, itemId int64) error {
	releaseSQL := `UPDATE catalog_items SET stock_quantity = stock_quantity + 1 WHERE id = $1`

	tag, err := cr.db.Exec(ctx, releaseSQL, itemId)
	if err != nil {
		return classifyError(err, "failed to release stock")
	}

	if tag.RowsAffected() == 0 {
		return &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %d not found", itemId)}
	}

	return nil
}
