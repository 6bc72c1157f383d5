package model

import (
	"time"

	"github.com/google/uuid"
)

// List groups tasks under a user-chosen name. Priority is kept as the raw
// text the user typed; it is interpreted numerically only when rendering.
type List struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Priority  string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Owner User `gorm:"foreignKey:UserID"`
}
