package services

import (
	"context"

	"github.com/budgetfly/budgetfly-api/models"
	"github.com/budgetfly/budgetfly-api/storage"
)

type SummaryService struct {
	store storage.Store
}

func NewSummaryService(store storage.Store) *SummaryService {
	return &SummaryService{store: store}
}

// Compute reduces the current budget items into payment-type totals. It is
// always recomputed from store state, nothing is persisted. The scan shares
// MaxItems with listing, so past that cap the summary is an approximation.
func (s *SummaryService) Compute(ctx context.Context) (*models.BudgetSummary, error) {
	items, err := s.store.ListItems(ctx, MaxItems)
	if err != nil {
		return nil, err
	}

	summary := &models.BudgetSummary{TotalItems: len(items)}
	for _, item := range items {
		total := item.Total()
		summary.TotalAmount += total
		if item.PaymentType == models.PaymentCash {
			summary.CashTotal += total
		} else {
			summary.OnlineTotal += total
		}
	}
	return summary, nil
}
