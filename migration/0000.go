package migration

import (
	"context"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/pkg/xcontext"
)

// migrate0000 creates the database with the baseline version.
func migrate0000(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Skill{},
		&entity.VerificationToken{},
		&entity.Project{},
		&entity.Tag{},
		&entity.Issue{},
		&entity.Collaborator{},
		&entity.Like{},
		&entity.Comment{},
	)
}
