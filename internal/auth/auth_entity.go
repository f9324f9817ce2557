package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex:uq_users_username;not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}
