package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetfly/budgetfly-api/models"
	"github.com/budgetfly/budgetfly-api/services"
	"github.com/budgetfly/budgetfly-api/storage"
)

type BudgetItemHandler struct {
	items   *services.BudgetItemService
	summary *services.SummaryService
}

func NewBudgetItemHandler(items *services.BudgetItemService, summary *services.SummaryService) *BudgetItemHandler {
	return &BudgetItemHandler{items: items, summary: summary}
}

// Create validates and persists a new budget item. Validation failures are
// rejected here, before any store access.
func (h *BudgetItemHandler) Create(c *gin.Context) {
	var req models.BudgetItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationDetail(err)})
		return
	}

	item, err := h.items.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// List returns all items newest first, capped at services.MaxItems.
func (h *BudgetItemHandler) List(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *BudgetItemHandler) Get(c *gin.Context) {
	item, err := h.items.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// Update applies a partial payload to an existing item and returns the full
// updated record. Omitted fields stay unchanged.
func (h *BudgetItemHandler) Update(c *gin.Context) {
	var req models.BudgetItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationDetail(err)})
		return
	}

	item, err := h.items.Update(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *BudgetItemHandler) Delete(c *gin.Context) {
	err := h.items.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// Summary returns the aggregate totals over all items.
func (h *BudgetItemHandler) Summary(c *gin.Context) {
	summary, err := h.summary.Compute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
