package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectDomain interface {
	Create(ctx context.Context, req *model.CreateProjectRequest) (*model.CreateProjectResponse, error)
	Get(ctx context.Context, req *model.GetProjectRequest) (*model.GetProjectResponse, error)
	GetMyProjects(ctx context.Context, req *model.GetMyProjectsRequest) (*model.GetMyProjectsResponse, error)
	GetByUser(ctx context.Context, req *model.GetProjectsByUserRequest) (*model.GetProjectsByUserResponse, error)
	Update(ctx context.Context, req *model.UpdateProjectRequest) (*model.UpdateProjectResponse, error)
	Delete(ctx context.Context, req *model.DeleteProjectRequest) (*model.DeleteProjectResponse, error)
}

type projectDomain struct {
	projectRepo      repository.ProjectRepository
	tagRepo          repository.TagRepository
	userRepo         repository.UserRepository
	issueRepo        repository.IssueRepository
	collaboratorRepo repository.CollaboratorRepository
	likeRepo         repository.LikeRepository
	commentRepo      repository.CommentRepository
	statisticRepo    repository.StatisticRepository
}

func NewProjectDomain(
	projectRepo repository.ProjectRepository,
	tagRepo repository.TagRepository,
	userRepo repository.UserRepository,
	issueRepo repository.IssueRepository,
	collaboratorRepo repository.CollaboratorRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	statisticRepo repository.StatisticRepository,
) *projectDomain {
	return &projectDomain{
		projectRepo:      projectRepo,
		tagRepo:          tagRepo,
		userRepo:         userRepo,
		issueRepo:        issueRepo,
		collaboratorRepo: collaboratorRepo,
		likeRepo:         likeRepo,
		commentRepo:      commentRepo,
		statisticRepo:    statisticRepo,
	}
}

func (d *projectDomain) Create(
	ctx context.Context, req *model.CreateProjectRequest,
) (*model.CreateProjectResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	userID := xcontext.RequestUserID(ctx)
	owner, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project owner: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	project := &entity.Project{
		Base:        entity.Base{ID: uuid.NewString()},
		CreatedBy:   userID,
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
	}

	if err := d.projectRepo.Create(ctx, project); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create project: %v", err)
		return nil, errorx.Unknown
	}

	tags := dedupTags(project.ID, req.Tags)
	if err := d.tagRepo.CreateMany(ctx, tags); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create project tags: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.CreateProjectResponse{
		Project: model.ConvertProject(project, owner.FullName, tags),
	}, nil
}

func (d *projectDomain) Get(ctx context.Context, req *model.GetProjectRequest) (*model.GetProjectResponse, error) {
	summaries, err := d.statisticRepo.GetProjectSummaries(ctx, repository.SummaryFilter{
		ProjectIDs: []string{req.ProjectID},
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project summary: %v", err)
		return nil, errorx.Unknown
	}

	if len(summaries) == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found project")
	}

	tags, err := d.tagRepo.GetByProjectID(ctx, req.ProjectID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project tags: %v", err)
		return nil, errorx.Unknown
	}

	names := []string{}
	for _, tag := range tags {
		names = append(names, tag.Name)
	}

	return &model.GetProjectResponse{
		Project: model.ConvertProjectSummary(summaries[0], names, time.Now()),
	}, nil
}

func (d *projectDomain) GetMyProjects(
	ctx context.Context, req *model.GetMyProjectsRequest,
) (*model.GetMyProjectsResponse, error) {
	projects, err := d.listByUser(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	return &model.GetMyProjectsResponse{Projects: projects}, nil
}

func (d *projectDomain) GetByUser(
	ctx context.Context, req *model.GetProjectsByUserRequest,
) (*model.GetProjectsByUserResponse, error) {
	projects, err := d.listByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return &model.GetProjectsByUserResponse{Projects: projects}, nil
}

func (d *projectDomain) Update(
	ctx context.Context, req *model.UpdateProjectRequest,
) (*model.UpdateProjectResponse, error) {
	project, owner, err := d.loadOwned(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.projectRepo.UpdateByID(ctx, project.ID, &entity.Project{
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update project: %v", err)
		return nil, errorx.Unknown
	}

	var tags []entity.Tag
	if req.Tags != nil {
		if err := d.tagRepo.DeleteByProjectID(ctx, project.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete project tags: %v", err)
			return nil, errorx.Unknown
		}

		tags = dedupTags(project.ID, req.Tags)
		if err := d.tagRepo.CreateMany(ctx, tags); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create project tags: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		tags, err = d.tagRepo.GetByProjectID(ctx, project.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get project tags: %v", err)
			return nil, errorx.Unknown
		}
	}

	updated, err := d.projectRepo.GetByID(ctx, project.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated project: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.UpdateProjectResponse{
		Project: model.ConvertProject(updated, owner.FullName, tags),
	}, nil
}

// Delete removes the project and every dependent row as one atomic unit.
func (d *projectDomain) Delete(
	ctx context.Context, req *model.DeleteProjectRequest,
) (*model.DeleteProjectResponse, error) {
	project, _, err := d.loadOwned(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.collaboratorRepo.DeleteByProjectID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project collaborators: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.issueRepo.DeleteByProjectID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project issues: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.likeRepo.DeleteByProjectID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project likes: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.commentRepo.DeleteByProjectID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project comments: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.tagRepo.DeleteByProjectID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project tags: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.projectRepo.DeleteByID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.DeleteProjectResponse{}, nil
}

func (d *projectDomain) listByUser(ctx context.Context, userID string) ([]model.Project, error) {
	owner, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	projects, err := d.projectRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user projects: %v", err)
		return nil, errorx.Unknown
	}

	projectIDs := []string{}
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	tags, err := d.tagRepo.GetByProjectIDs(ctx, projectIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project tags: %v", err)
		return nil, errorx.Unknown
	}

	tagsByProject := map[string][]entity.Tag{}
	for _, tag := range tags {
		tagsByProject[tag.ProjectID] = append(tagsByProject[tag.ProjectID], tag)
	}

	resp := []model.Project{}
	for i := range projects {
		resp = append(resp, model.ConvertProject(
			&projects[i], owner.FullName, tagsByProject[projects[i].ID]))
	}

	return resp, nil
}

func (d *projectDomain) loadOwned(
	ctx context.Context, projectID string,
) (*entity.Project, *entity.User, error) {
	project, err := d.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, nil, errorx.Unknown
	}

	if project.CreatedBy != xcontext.RequestUserID(ctx) {
		return nil, nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	owner, err := d.userRepo.GetByID(ctx, project.CreatedBy)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project owner: %v", err)
		return nil, nil, errorx.Unknown
	}

	return project, owner, nil
}

// dedupTags drops case-insensitive duplicates, keeping the first spelling.
func dedupTags(projectID string, names []string) []entity.Tag {
	seen := map[string]bool{}
	tags := []entity.Tag{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}

		seen[strings.ToLower(name)] = true
		tags = append(tags, entity.Tag{ProjectID: projectID, Name: name})
	}

	return tags
}
