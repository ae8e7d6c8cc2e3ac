package model

import (
	"time"
)

// Fan 影迷用户
type Fan struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	Username  string    `json:"username" db:"username" gorm:"uniqueIndex"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Critic 影评人
type Critic struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	Username  string    `json:"username" db:"username" gorm:"uniqueIndex"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
