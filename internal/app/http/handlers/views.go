package handlers

import (
	"time"

	"tailormade/backend/internal/domain/document"
	"tailormade/backend/internal/domain/order"
	"tailormade/backend/internal/domain/pricing"
)

// Wire representations of the domain records. Domain structs stay free of
// JSON tags; these views own the field names the API exposes.

type orderView struct {
	Code            string            `json:"code"`
	Type            string            `json:"order_type"`
	Status          string            `json:"status"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone,omitempty"`
	ClothingItem    string            `json:"clothing_item,omitempty"`
	Quantity        int               `json:"quantity"`
	PrintType       string            `json:"print_type"`
	FabricQuality   string            `json:"fabric_quality,omitempty"`
	SizeBreakdown   map[string]int    `json:"size_breakdown,omitempty"`
	Breakdown       pricing.Breakdown `json:"breakdown"`
	EstimatedDays   int               `json:"estimated_days"`
	DeliveryAddress string            `json:"delivery_address,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func toOrderView(o order.Order) orderView {
	return orderView{
		Code:            o.Code,
		Type:            string(o.Type),
		Status:          string(o.Status),
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ClothingItem:    o.ClothingItem,
		Quantity:        o.Quantity,
		PrintType:       string(o.PrintOption),
		FabricQuality:   o.FabricQuality,
		SizeBreakdown:   o.SizeBreakdown,
		Breakdown:       o.Breakdown,
		EstimatedDays:   o.EstimatedDays,
		DeliveryAddress: o.DeliveryAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderViews(orders []order.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	return views
}

type documentView struct {
	Code          string              `json:"code"`
	Kind          string              `json:"kind"`
	ClientName    string              `json:"client_name"`
	ClientEmail   string              `json:"client_email,omitempty"`
	ClientPhone   string              `json:"client_phone,omitempty"`
	ClientAddress string              `json:"client_address,omitempty"`
	Items         []document.LineItem `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	Tax           float64             `json:"tax"`
	Discount      float64             `json:"discount"`
	Total         float64             `json:"total"`
	Notes         string              `json:"notes,omitempty"`
	OrderCode     string              `json:"order_code,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func toDocumentView(d document.Document) documentView {
	return documentView{
		Code:          d.Code,
		Kind:          string(d.Kind),
		ClientName:    d.ClientName,
		ClientEmail:   d.ClientEmail,
		ClientPhone:   d.ClientPhone,
		ClientAddress: d.ClientAddress,
		Items:         d.Items,
		Subtotal:      d.Subtotal,
		Tax:           d.Tax,
		Discount:      d.Discount,
		Total:         d.Total,
		Notes:         d.Notes,
		OrderCode:     d.OrderCode,
		CreatedAt:     d.CreatedAt,
	}
}

type enquiryView struct {
	Code              string  `json:"code"`
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	CustomerPhone     string  `json:"customer_phone,omitempty"`
	ItemDescription   string  `json:"item_description"`
	Quantity          int     `json:"quantity"`
	Specifications    string  `json:"specifications,omitempty"`
	ReferenceImageURL string  `json:"reference_image_url,omitempty"`
	TargetPrice       float64 `json:"target_price,omitempty"`
	Deadline          string  `json:"deadline,omitempty"`
	Notes             string  `json:"notes,omitempty"`
	Status            string  `json:"status"`
	QuoteCode         string  `json:"quote_code,omitempty"`
	QuotedUnitPrice   float64 `json:"quoted_unit_price,omitempty"`
	QuotedTotalPrice  float64 `json:"quoted_total_price,omitempty"`
	EstimatedProdDays int     `json:"estimated_production_days,omitempty"`
	ValidUntil        string  `json:"valid_until,omitempty"`
	NotesToClient     string  `json:"notes_to_client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toEnquiryView(e document.Enquiry) enquiryView {
	return enquiryView{
		Code:              e.Code,
		CustomerName:      e.CustomerName,
		CustomerEmail:     e.CustomerEmail,
		CustomerPhone:     e.CustomerPhone,
		ItemDescription:   e.ItemDescription,
		Quantity:          e.Quantity,
		Specifications:    e.Specifications,
		ReferenceImageURL: e.ReferenceImageURL,
		TargetPrice:       e.TargetPrice,
		Deadline:          e.Deadline,
		Notes:             e.Notes,
		Status:            string(e.Status),
		QuoteCode:         e.QuoteCode,
		QuotedUnitPrice:   e.QuotedUnitPrice,
		QuotedTotalPrice:  e.QuotedTotalPrice,
		EstimatedProdDays: e.EstimatedProdDays,
		ValidUntil:        e.ValidUntil,
		NotesToClient:     e.NotesToClient,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
