package entity

import (
	"time"

	"github.com/forkd-labs/backend/pkg/enum"
)

type IssueStatus string

var (
	IssueOpen   = enum.New(IssueStatus("open"))
	IssueClosed = enum.New(IssueStatus("closed"))
)

type Issue struct {
	Base

	ProjectID string  `gorm:"index"`
	Project   Project `gorm:"foreignKey:ProjectID"`

	Title       string
	Description string
	Status      IssueStatus `gorm:"default:open"`
}

// Collaborator credits a user with work on an issue. The composite key makes
// crediting idempotent.
type Collaborator struct {
	UserID  string `gorm:"primaryKey"`
	User    User   `gorm:"foreignKey:UserID"`
	IssueID string `gorm:"primaryKey"`
	Issue   Issue  `gorm:"foreignKey:IssueID"`

	CreatedAt time.Time
}
