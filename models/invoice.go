package models

import "time"

// Invoice is the synthetic receipt issued when a simulated payment completes.
type Invoice struct {
	InvoiceID string        `json:"invoice_id"` // Unique invoice identifier.
	Amount    float64       `json:"amount"`     // Cart total at the time of payment.
	Currency  string        `json:"currency"`   // Always "INR".
	Method    PaymentMethod `json:"method"`
	Status    string        `json:"status"` // "paid", or "pending" for cash on delivery.
	Items     int           `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
}
