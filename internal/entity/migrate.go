package entity

import (
	"context"

	"github.com/forkd-labs/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Skill{},
		&VerificationToken{},
		&Project{},
		&Tag{},
		&Issue{},
		&Collaborator{},
		&Like{},
		&Comment{},
	)
}
