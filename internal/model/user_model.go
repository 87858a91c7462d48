package model

import "time"

type User struct {
	UserID       int64     `json:"userid"`
	Key          string    `json:"key"`
	SecretHash   string    `json:"-"` // bcrypt hash, never JSON-encode
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
}
