package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store is the merchant entity owning a set of transactions, keyed by its
// unique name. OwnerName follows the most recent import (last-write-wins).
type Store struct {
	StoreID       string        `json:"storeID"` // Primary Key (UUID)
	Name          string        `json:"name"`    // Unique resolution key (max 19 chars from CNAB)
	OwnerName     string        `json:"ownerName"`
	Transactions  []Transaction `json:"transactions,omitempty"` // Back-reference, filled by queries only
	CreatedAt     time.Time     `json:"createdAt"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
}

// Balance is the signed sum of the store's loaded transactions.
func (s Store) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, txn := range s.Transactions {
		total = total.Add(txn.SignedAmount())
	}
	return total
}
