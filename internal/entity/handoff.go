package entity

import (
	"database/sql"
	"time"
)

type Handoff struct {
	ID            string `gorm:"primaryKey"`
	SelfPath      string `gorm:"not null"`
	CompanionPath string `gorm:"not null"`
	Interpreter   string `gorm:"not null"`
	PID           int
	Error         sql.NullString
	InsertionDate time.Time `gorm:"autoCreateTime;not null"`
}
