package services

import (
	"context"

	"github.com/budgetfly/budgetfly-api/models"
	"github.com/budgetfly/budgetfly-api/storage"
)

// MaxItems caps every budget item listing and summary scan. Callers past the
// cap are silently truncated.
const MaxItems = 1000

type BudgetItemService struct {
	store storage.Store
}

func NewBudgetItemService(store storage.Store) *BudgetItemService {
	return &BudgetItemService{store: store}
}

// Create persists a new item built from an already-validated request and
// returns it verbatim.
func (s *BudgetItemService) Create(ctx context.Context, req models.BudgetItemCreate) (*models.BudgetItem, error) {
	item := req.NewItem()
	if err := s.store.InsertItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *BudgetItemService) List(ctx context.Context) ([]models.BudgetItem, error) {
	return s.store.ListItems(ctx, MaxItems)
}

func (s *BudgetItemService) Get(ctx context.Context, id string) (*models.BudgetItem, error) {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the fields present in req and returns the full record as it
// now stands. A payload with no effective fields is a no-op that still
// succeeds and returns the current record.
func (s *BudgetItemService) Update(ctx context.Context, id string, req models.BudgetItemUpdate) (*models.BudgetItem, error) {
	fields := req.Fields()
	if len(fields) > 0 {
		if err := s.store.UpdateItem(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *BudgetItemService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteItem(ctx, id)
}
