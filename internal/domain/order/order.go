// Package order models customer orders across all sales channels and the
// status lifecycle an order moves through from payment to delivery.
package order

import (
	"fmt"
	"time"

	"tailormade/backend/internal/domain/pricing"
)

// Type is the sales channel an order came through.
type Type string

const (
	TypeBulk     Type = "bulk"
	TypePOD      Type = "pod"
	TypeBoutique Type = "boutique"
	TypeFabric   Type = "fabric"
	TypeSouvenir Type = "souvenir"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeBulk, TypePOD, TypeBoutique, TypeFabric, TypeSouvenir:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown order type %q", s)
}

type Status string

const (
	StatusPendingPayment   Status = "pending_payment"
	StatusPaymentSubmitted Status = "payment_submitted"
	StatusPaymentVerified  Status = "payment_verified"
	StatusInProduction     Status = "in_production"
	StatusReadyForDelivery Status = "ready_for_delivery"
	StatusCompleted        Status = "completed"
	StatusDelivered        Status = "delivered"
	StatusCancelled        Status = "cancelled"
)

// transitions is the forward path of the order lifecycle. Cancellation is
// allowed from any state before the order is completed or delivered.
var transitions = map[Status][]Status{
	StatusPendingPayment:   {StatusPaymentSubmitted, StatusPaymentVerified},
	StatusPaymentSubmitted: {StatusPaymentVerified},
	StatusPaymentVerified:  {StatusInProduction},
	StatusInProduction:     {StatusReadyForDelivery},
	StatusReadyForDelivery: {StatusCompleted, StatusDelivered},
	StatusCompleted:        {StatusDelivered},
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusCancelled {
		return s != StatusCompleted && s != StatusDelivered && s != StatusCancelled
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusPendingPayment, StatusPaymentSubmitted, StatusPaymentVerified,
		StatusInProduction, StatusReadyForDelivery, StatusCompleted,
		StatusDelivered, StatusCancelled:
		return Status(v), nil
	}
	return "", fmt.Errorf("unknown order status %q", v)
}

// Order is a persisted customer order. Code is the allocated TM-MMYY-DDNNNN
// identifier and never changes once minted; ID is the internal row key.
type Order struct {
	ID            string
	Code          string
	Type          Type
	Status        Status
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ClothingItem  string
	Quantity      int
	PrintOption   pricing.PrintOption
	FabricQuality string
	SizeBreakdown map[string]int

	Breakdown     pricing.Breakdown
	EstimatedDays int

	DeliveryAddress string
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}
