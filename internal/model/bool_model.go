package model

import "time"

type Bool struct {
	BoolID    int64     `json:"id"`
	Name      string    `json:"name"`
	Value     bool      `json:"value"`
	OwnerID   int64     `json:"owner"`
	CreatedAt time.Time `json:"-"`
}

// View renders the wire form of a boolean. The simple form carries the value only.
func (b *Bool) View(simple bool) map[string]interface{} {
	if simple {
		return map[string]interface{}{"value": b.Value}
	}
	return map[string]interface{}{
		"id":    b.BoolID,
		"name":  b.Name,
		"value": b.Value,
		"owner": b.OwnerID,
	}
}
