package models

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMember is a person who can be recorded as having paid for an item.
// Members are create-or-delete only, there is no update.
type FamilyMember struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type FamilyMemberCreate struct {
	Name string `json:"name" binding:"required"`
}

// NewMember builds the full record from a validated create request.
func (r FamilyMemberCreate) NewMember() FamilyMember {
	return FamilyMember{
		ID:        uuid.New().String(),
		Name:      r.Name,
		CreatedAt: time.Now().UTC(),
	}
}
