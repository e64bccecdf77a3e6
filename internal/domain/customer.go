package domain

import "time"

// Customer represents a hotel customer (cat owner)
// Name is the natural deduplication key: the customers table keeps at most
// one row per distinct name, enforced by upsert-on-conflict
type Customer struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// CustomerSuggestion is a single autocomplete suggestion
type CustomerSuggestion struct {
	Name string
}

// LastStay holds the most recent booking's cat roster and room tier
// for a customer, used to prefill repeat-customer forms
type LastStay struct {
	CatNames []string
	RoomType RoomType
}
