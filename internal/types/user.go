package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:50;uniqueIndex;not null;column:email" json:"email"`
	Username  string    `gorm:"size:40;uniqueIndex;not null;column:username" json:"username"`
	FirstName string    `gorm:"size:30;column:first_name" json:"first_name"`
	LastName  string    `gorm:"size:30;column:last_name" json:"last_name"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "user" }
