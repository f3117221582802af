package models

import "time"

// Store is the database representation of a merchant store.
type Store struct {
	StoreID       string    `json:"storeID"`
	Name          string    `json:"name"` // Unique
	OwnerName     string    `json:"ownerName"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
