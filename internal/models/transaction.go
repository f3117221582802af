package models

import "time"

// Transaction is the database representation of an imported CNAB record.
// Date and time-of-day are persisted together as a single timestamp; the
// domain layer splits them back apart.
type Transaction struct {
	TransactionID string    `json:"transactionID"`
	StoreID       string    `json:"storeID"`
	Type          int       `json:"type"`        // Validated 1-9 code
	OccurredAt    time.Time `json:"occurredAt"`  // Transaction date + time of day
	AmountCents   int64     `json:"amountCents"` // Minor units, non-negative
	CPF           string    `json:"cpf"`         // 11 digits
	CardNumber    string    `json:"cardNumber"`  // 12 chars, digits or '*'
	CreatedAt     time.Time `json:"createdAt"`
}
