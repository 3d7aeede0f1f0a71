package document

import (
	"fmt"
	"time"
)

type EnquiryStatus string

const (
	EnquiryNew      EnquiryStatus = "new"
	EnquiryQuoted   EnquiryStatus = "quoted"
	EnquiryAccepted EnquiryStatus = "accepted"
	EnquiryDeclined EnquiryStatus = "declined"
	EnquiryClosed   EnquiryStatus = "closed"
)

func ParseEnquiryStatus(s string) (EnquiryStatus, error) {
	switch EnquiryStatus(s) {
	case EnquiryNew, EnquiryQuoted, EnquiryAccepted, EnquiryDeclined, EnquiryClosed:
		return EnquiryStatus(s), nil
	}
	return "", fmt.Errorf("unknown enquiry status %q", s)
}

// Enquiry is a custom-order request: the customer describes what they need
// and an admin answers with a quote. QuoteCode is set when the admin quote
// is attached.
type Enquiry struct {
	ID   string
	Code string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ItemDescription   string
	Quantity          int
	Specifications    string
	ReferenceImageURL string
	TargetPrice       float64 // 0 when the customer named no target
	Deadline          string
	Notes             string

	Status EnquiryStatus

	// Set by the admin quote.
	QuoteCode         string
	QuotedUnitPrice   float64
	QuotedTotalPrice  float64
	EstimatedProdDays int
	ValidUntil        string
	NotesToClient     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
