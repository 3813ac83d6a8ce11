package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entry is one person waiting in a queue. Position is derived from list
// order and recomputed on every mutation; it is not stable identity.
type Entry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Service   string `json:"service"`
	Details   string `json:"details"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Position  int    `json:"position"`
}

// Queue is a named waiting line tied to one service category. The entry
// list is stored as a single JSON column, so a row update replaces the
// whole list at once.
type Queue struct {
	ID                     string                      `gorm:"primaryKey" json:"id"`
	Title                  string                      `gorm:"not null" json:"title"`
	Category               string                      `gorm:"index;not null" json:"category"`
	Services               datatypes.JSONSlice[string] `json:"services"`
	Items                  datatypes.JSONSlice[Entry]  `json:"items"`
	IsActive               bool                        `gorm:"default:true" json:"isActive"` // reserved, never branched on
	CreatedAt              int64                       `gorm:"index;autoCreateTime:false" json:"createdAt"` // epoch milliseconds
	EstimatedTimePerPerson int                         `json:"estimatedTimePerPerson"`
	Version                int64                       `gorm:"default:1" json:"-"`
}

type Admin struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
