package entity

import "time"

type Project struct {
	Base

	CreatedBy string `gorm:"index"`
	Owner     User   `gorm:"foreignKey:CreatedBy"`

	Title       string
	Description string
	RepoURL     string
}

// Tag labels a project. Tags are stored as entered but matched
// case-insensitively, and a project never carries duplicates.
type Tag struct {
	ProjectID string  `gorm:"primaryKey"`
	Project   Project `gorm:"foreignKey:ProjectID"`
	Name      string  `gorm:"primaryKey"`

	CreatedAt time.Time
}
