package models

import "time"

type User struct {
	BaseModel
	FirstName       string   `gorm:"not null" json:"first_name"`
	LastName        string   `gorm:"not null" json:"last_name"`
	Email           string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string   `gorm:"not null" json:"-"`
	Role            UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsEmailVerified bool     `gorm:"default:false" json:"is_email_verified"`

	// Relations
	Profile       *Profile       `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Companies     []Company      `gorm:"foreignKey:OwnerID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// RefreshToken - долгоживущий отзывной токен сессии, хранится строкой в БД
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

// VerificationToken - одноразовый токен (подтверждение email / сброс пароля)
type VerificationToken struct {
	BaseModel
	UserID    string       `gorm:"not null;index" json:"user_id"`
	Token     string       `gorm:"not null;uniqueIndex" json:"-"`
	Purpose   TokenPurpose `gorm:"type:varchar(32);not null;index" json:"purpose"`
	ExpiresAt time.Time    `gorm:"not null;index" json:"expires_at"`
	UsedAt    *time.Time   `json:"used_at,omitempty"`
}
