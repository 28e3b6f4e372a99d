package models

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PaymentType is the closed set of accepted payment methods.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentOnline PaymentType = "online"
)

func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentOnline
}

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report wire names in validation errors, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("payment_type", func(fl validator.FieldLevel) bool {
		return PaymentType(fl.Field().String()).Valid()
	})
}

// BudgetItem is a single logged purchase. ID and CreatedAt are generated at
// creation and never change afterwards.
type BudgetItem struct {
	ID          string      `json:"id" bson:"id"`
	ItemName    string      `json:"item_name" bson:"item_name"`
	Price       float64     `json:"price" bson:"price"`
	Quantity    int         `json:"quantity" bson:"quantity"`
	Recipient   string      `json:"recipient" bson:"recipient"`
	PaymentType PaymentType `json:"payment_type" bson:"payment_type"`
	PaidBy      string      `json:"paid_by" bson:"paid_by"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

// Total is the line total, price times quantity.
func (i BudgetItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

// BudgetItemCreate is the create request shape. Price is a pointer so an
// explicit 0 still satisfies the required check.
type BudgetItemCreate struct {
	ItemName    string      `json:"item_name" binding:"required"`
	Price       *float64    `json:"price" binding:"required,gte=0"`
	Quantity    *int        `json:"quantity"`
	Recipient   string      `json:"recipient" binding:"required"`
	PaymentType PaymentType `json:"payment_type" binding:"required,payment_type"`
	PaidBy      string      `json:"paid_by" binding:"required"`
}

// NewItem builds the full record from a validated create request, generating
// id and created_at. Quantity defaults to 1 when omitted.
func (r BudgetItemCreate) NewItem() BudgetItem {
	quantity := 1
	if r.Quantity != nil {
		quantity = *r.Quantity
	}
	return BudgetItem{
		ID:          uuid.New().String(),
		ItemName:    r.ItemName,
		Price:       *r.Price,
		Quantity:    quantity,
		Recipient:   r.Recipient,
		PaymentType: r.PaymentType,
		PaidBy:      r.PaidBy,
		CreatedAt:   time.Now().UTC(),
	}
}

// BudgetItemUpdate is the partial update shape. Nil means the field was
// omitted and stays unchanged; a non-nil zero value is a real update.
// omitnil (not omitempty) so a present zero value still hits the rules: an
// explicit "" payment_type must fail the enum check, not skip it.
type BudgetItemUpdate struct {
	ItemName    *string      `json:"item_name"`
	Price       *float64     `json:"price" binding:"omitnil,gte=0"`
	Quantity    *int         `json:"quantity"`
	Recipient   *string      `json:"recipient"`
	PaymentType *PaymentType `json:"payment_type" binding:"omitnil,payment_type"`
	PaidBy      *string      `json:"paid_by"`
}

// Fields returns the partial document of fields actually present in the
// request.
func (r BudgetItemUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if r.ItemName != nil {
		fields["item_name"] = *r.ItemName
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.Recipient != nil {
		fields["recipient"] = *r.Recipient
	}
	if r.PaymentType != nil {
		fields["payment_type"] = *r.PaymentType
	}
	if r.PaidBy != nil {
		fields["paid_by"] = *r.PaidBy
	}
	return fields
}

// BudgetSummary is computed on demand from the current items, never persisted.
type BudgetSummary struct {
	TotalAmount float64 `json:"total_amount"`
	TotalItems  int     `json:"total_items"`
	CashTotal   float64 `json:"cash_total"`
	OnlineTotal float64 `json:"online_total"`
}
