package entity

// Like records that a user likes a project. At most one row exists per
// (user, project) pair; toggling deletes and recreates the row. It carries
// no timestamp, so likes never show up in the activity feed.
type Like struct {
	UserID    string  `gorm:"primaryKey"`
	User      User    `gorm:"foreignKey:UserID"`
	ProjectID string  `gorm:"primaryKey"`
	Project   Project `gorm:"foreignKey:ProjectID"`
}
