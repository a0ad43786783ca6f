package entity

import (
	"internhub/core/entity"
)

type User struct {
	Username     string  `db:"username" json:"username"`
	Email        string  `db:"email" json:"email"`
	PasswordHash string  `db:"password_hash" json:"-"`
	GoogleID     *string `db:"google_id" json:"-"`
	entity.BaseEntity
}
