// Package sequence mints the human-readable codes used as permanent
// identifiers for orders, quotes, invoices and the other back-office
// documents. Each code family keeps an independent counter that resets
// every calendar day (UTC).
package sequence

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sequence identifies one code family: the counter it draws from and the
// prefix its codes carry.
type Sequence struct {
	Name   string
	Prefix string
}

// The closed set of code families. Counters are fully independent between
// families even on the same day.
var (
	Orders       = Sequence{Name: "order", Prefix: "TM"}
	Quotes       = Sequence{Name: "quote", Prefix: "QT"}
	Invoices     = Sequence{Name: "invoice", Prefix: "INV"}
	Refunds      = Sequence{Name: "refund", Prefix: "REF"}
	Procurements = Sequence{Name: "procurement", Prefix: "PRC"}
	Expenses     = Sequence{Name: "expense", Prefix: "EXP"}
	Enquiries    = Sequence{Name: "enquiry", Prefix: "ENQ"}
)

// ErrStorageUnavailable wraps any counter-store failure. The allocator never
// falls back to a non-atomic scheme: a failed request is recoverable, a
// duplicate code is not.
var ErrStorageUnavailable = errors.New("sequence: counter storage unavailable")

// Counter is the atomic increment primitive the allocator depends on.
// Next must increment the counter stored under (name, dayKey) and return the
// new value, creating it at 1 when absent, all in one indivisible step.
// Concurrent callers must never receive the same value.
type Counter interface {
	Next(ctx context.Context, name, dayKey string) (int64, error)
}

// Allocator formats daily-sequential codes on top of a Counter.
type Allocator struct {
	counters Counter
}

func NewAllocator(c Counter) *Allocator {
	return &Allocator{counters: c}
}

// Allocate returns the next code for seq, formatted PREFIX-MMYY-DDNNNN where
// NNNN is the zero-padded daily counter. Day boundaries are computed in UTC
// regardless of the zone attached to now.
//
// The four-digit suffix holds up to 9999 allocations per family per day;
// past that the counter keeps incrementing and the suffix widens to five
// digits. Codes stay unique, only the fixed width is lost.
func (a *Allocator) Allocate(ctx context.Context, seq Sequence, now time.Time) (string, error) {
	now = now.UTC()
	dayKey := now.Format("20060102")

	n, err := a.counters.Next(ctx, seq.Name, dayKey)
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s: %v", ErrStorageUnavailable, seq.Name, dayKey, err)
	}

	return fmt.Sprintf("%s-%s-%s%04d", seq.Prefix, now.Format("0106"), now.Format("02"), n), nil
}
