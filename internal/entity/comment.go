package entity

type Comment struct {
	Base

	ProjectID string  `gorm:"index"`
	Project   Project `gorm:"foreignKey:ProjectID"`
	UserID    string  `gorm:"index"`
	User      User    `gorm:"foreignKey:UserID"`

	Content string
}
