package domain

import "context"

// Report aggregates recorded payments and donations for the admin panel.
// Amounts are centavos. Only completed payments count toward revenue.
type Report struct {
	Payments  PaymentsSummary  `json:"payments"`
	Donations DonationsSummary `json:"donations"`
}

type PaymentsSummary struct {
	Count     int64            `json:"count"`
	Total     int64            `json:"total"`
	ByService []ServiceRevenue `json:"by_service"`
	ByMethod  []MethodRevenue  `json:"by_method"`
}

type ServiceRevenue struct {
	ServiceKind string `json:"service_kind"`
	Count       int64  `json:"count"`
	Total       int64  `json:"total"`
}

type MethodRevenue struct {
	PaymentMethod string `json:"payment_method"`
	Count         int64  `json:"count"`
	Total         int64  `json:"total"`
}

type DonationsSummary struct {
	Count         int64 `json:"count"`
	MonetaryTotal int64 `json:"monetary_total"`
	ItemCount     int64 `json:"item_count"`
}

type Service interface {
	Summary(ctx context.Context) (*Report, error)
}
