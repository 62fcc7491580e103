package entity

import "time"

type User struct {
	Base

	Email             string `gorm:"uniqueIndex"`
	HashedPassword    string
	FullName          string
	Bio               string
	AvatarURL         string
	GithubUsername    string
	IsGithubConnected bool
	IsVerified        bool
}

// Skill is a free-form label a user attaches to their own profile. A user
// never carries the same skill twice.
type Skill struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`
	Name   string `gorm:"primaryKey"`

	CreatedAt time.Time
}

type VerificationToken struct {
	Token     string `gorm:"primaryKey"`
	UserID    string
	User      User `gorm:"foreignKey:UserID"`
	ExpiredAt time.Time

	CreatedAt time.Time
}
