package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/budgetfly/budgetfly-api/models"
)

// Memory is an in-process Store used by the test suites and for running the
// service without a MongoDB instance. Semantics mirror the Mongo adapter:
// equality lookups on id, newest-first item listing, field-map partial
// updates, ErrNotFound when nothing matches.
type Memory struct {
	mu      sync.Mutex
	items   []models.BudgetItem
	members []models.FamilyMember
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) InsertItem(_ context.Context, item models.BudgetItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return nil
}

func (s *Memory) GetItem(_ context.Context, id string) (models.BudgetItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.BudgetItem{}, ErrNotFound
}

func (s *Memory) ListItems(_ context.Context, limit int64) ([]models.BudgetItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := append([]models.BudgetItem(nil), s.items...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && int64(len(items)) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Memory) UpdateItem(_ context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		applyItemFields(&s.items[i], fields)
		return nil
	}
	return ErrNotFound
}

func (s *Memory) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Memory) InsertMember(_ context.Context, member models.FamilyMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, member)
	return nil
}

func (s *Memory) ListMembers(_ context.Context, limit int64) ([]models.FamilyMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := append([]models.FamilyMember(nil), s.members...)
	if limit > 0 && int64(len(members)) > limit {
		members = members[:limit]
	}
	return members, nil
}

func (s *Memory) DeleteMember(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Memory) Close(context.Context) error {
	return nil
}

// applyItemFields mirrors a Mongo $set of a partial document built by
// models.BudgetItemUpdate.Fields.
func applyItemFields(item *models.BudgetItem, fields map[string]any) {
	for name, value := range fields {
		switch name {
		case "item_name":
			item.ItemName = value.(string)
		case "price":
			item.Price = value.(float64)
		case "quantity":
			item.Quantity = value.(int)
		case "recipient":
			item.Recipient = value.(string)
		case "payment_type":
			item.PaymentType = value.(models.PaymentType)
		case "paid_by":
			item.PaidBy = value.(string)
		}
	}
}
