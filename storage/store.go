// Package storage is the record store adapter over the external document
// database. It performs insert/find/update/delete keyed by the
// application-level `id` field, nothing more: no caching, no retries, no
// transactions. Validation happens above this layer.
package storage

import (
	"context"
	"errors"

	"github.com/budgetfly/budgetfly-api/models"
)

// Collection names in the external store.
const (
	ItemCollection   = "budget_items"
	MemberCollection = "family_members"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("record not found")

// Store abstracts the document store so the service layer never sees a
// driver type. Every predicate in this system is equality on `id`.
type Store interface {
	InsertItem(ctx context.Context, item models.BudgetItem) error
	GetItem(ctx context.Context, id string) (models.BudgetItem, error)
	// ListItems returns up to limit items, newest first by created_at.
	ListItems(ctx context.Context, limit int64) ([]models.BudgetItem, error)
	// UpdateItem applies the partial document to the matching record.
	// Returns ErrNotFound when no record matched.
	UpdateItem(ctx context.Context, id string, fields map[string]any) error
	// DeleteItem removes the matching record. Returns ErrNotFound when
	// nothing was deleted.
	DeleteItem(ctx context.Context, id string) error

	InsertMember(ctx context.Context, member models.FamilyMember) error
	// ListMembers returns up to limit members in store order.
	ListMembers(ctx context.Context, limit int64) ([]models.FamilyMember, error)
	DeleteMember(ctx context.Context, id string) error

	Close(ctx context.Context) error
}
