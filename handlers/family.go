package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetfly/budgetfly-api/models"
	"github.com/budgetfly/budgetfly-api/services"
	"github.com/budgetfly/budgetfly-api/storage"
)

type FamilyMemberHandler struct {
	members *services.FamilyMemberService
}

func NewFamilyMemberHandler(members *services.FamilyMemberService) *FamilyMemberHandler {
	return &FamilyMemberHandler{members: members}
}

// Create registers a new family member. An empty name is a validation error,
// not a valid record.
func (h *FamilyMemberHandler) Create(c *gin.Context) {
	var req models.FamilyMemberCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationDetail(err)})
		return
	}

	member, err := h.members.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create family member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *FamilyMemberHandler) List(c *gin.Context) {
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch family members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *FamilyMemberHandler) Delete(c *gin.Context) {
	err := h.members.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Family member not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete family member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Family member deleted successfully"})
}
