package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
)

type accountRow struct {
	mu      sync.Mutex
	balance uint32
	version uint64
}

type itemRow struct {
	mu      sync.Mutex
	item    domain.CatalogItem
	version uint64
}

// Store is a single-process implementation of the ledger, catalog and
// transaction log ports. Each row carries its own mutex and version counter,
// so conditional updates are scoped to one account or one item and no lock
// spans multiple keys. Used by tests and local runs.
type Store struct {
	mu       sync.RWMutex
	accounts map[int64]*accountRow
	items    map[int64]*itemRow

	recordsMu sync.Mutex
	records   []domain.RedemptionRecord
	recordIds map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		accounts:  make(map[int64]*accountRow),
		items:     make(map[int64]*itemRow),
		recordIds: make(map[string]struct{}),
	}
}

func (s *Store) SeedAccount(accountId int64, balance uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[accountId] = &accountRow{balance: balance}
}

func (s *Store) SeedItem(item domain.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.Id] = &itemRow{item: item}
}

func (s *Store) account(accountId int64) (*accountRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.accounts[accountId]
	if !ok {
		return nil, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %d not found", accountId)}
	}

	return row, nil
}

func (s *Store) item(itemId int64) (*itemRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.items[itemId]
	if !ok {
		return nil, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %d not found", itemId)}
	}

	return row, nil
}

func (s *Store) GetBalance(ctx context.Context, accountId int64) (uint32, error) {
	row, err := s.account(accountId)
	if err != nil {
		return 0, err
	}

	row.mu.Lock()
	defer row.mu.Unlock()

	return row.balance, nil
}

func (s *Store) TryDebit(ctx context.Context, accountId int64, amount uint32) (uint32, error) {
	row, err := s.account(accountId)
	if err != nil {
		return 0, err
	}

	row.mu.Lock()
	defer row.mu.Unlock()

	if row.balance < amount {
		return 0, &domain.InsufficientPointsError{Msg: fmt.Sprintf("account %d cannot cover %d points", accountId, amount)}
	}

	row.balance -= amount
	row.version++

	return row.balance, nil
}

func (s *Store) Credit(ctx context.Context, accountId int64, amount uint32) error {
	row, err := s.account(accountId)
	if err != nil {
		return err
	}

	row.mu.Lock()
	defer row.mu.Unlock()

	row.balance += amount
	row.version++

	return nil
}

func (s *Store) GetItem(ctx context.Context, itemId int64) (domain.CatalogItem, error) {
	row, err := s.item(itemId)
	if err != nil {
		return domain.CatalogItem{}, err
	}

	row.mu.Lock()
	defer row.mu.Unlock()

	return row.item, nil
}

func (s *Store) TryReserveStock(ctx context.Context, itemId int64) error {
	row, err := s.item(itemId)
	if err != nil {
		return err
	}

	row.mu.Lock()
	defer row.mu.Unlock()

	if !row.item.Active {
		return &domain.ItemInactiveError{Msg: fmt.Sprintf("item %d is not redeemable", itemId)}
	}

	if row.item.StockQuantity == 0 {
		return &domain.OutOfStockError{Msg: fmt.Sprintf("item %d is out of stock", itemId)}
	}

	row.item.StockQuantity--
	row.version++

	return nil
}

func (s *Store) ReleaseStock(ctx context.Context, itemId int64) error {
	row, err := s.item(itemId)
	if err != nil {
		return err
	}

	row.mu.Lock()
	defer row.mu.Unlock()

	row.item.StockQuantity++
	row.version++

	return nil
}

func (s *Store) Append(ctx context.Context, record domain.RedemptionRecord) error {
	s.recordsMu.Lock()
	defer s.recordsMu.Unlock()

	if _, exists := s.recordIds[record.RedemptionId]; exists {
		return &domain.InternalError{Msg: fmt.Sprintf("duplicate redemption record %s", record.RedemptionId)}
	}

	s.recordIds[record.RedemptionId] = struct{}{}
	s.records = append(s.records, record)

	return nil
}

// Records returns a copy of the appended records in append order.
func (s *Store) Records() []domain.RedemptionRecord {
	s.recordsMu.Lock()
	defer s.recordsMu.Unlock()

	out := make([]domain.RedemptionRecord, len(s.records))
	copy(out, s.records)

	return out
}
