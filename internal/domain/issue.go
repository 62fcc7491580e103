package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/enum"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueDomain interface {
	Create(ctx context.Context, req *model.CreateIssueRequest) (*model.CreateIssueResponse, error)
	UpdateStatus(ctx context.Context, req *model.UpdateIssueStatusRequest) (*model.UpdateIssueStatusResponse, error)
	Close(ctx context.Context, req *model.CloseIssueRequest) (*model.CloseIssueResponse, error)
	GetByProject(ctx context.Context, req *model.GetProjectIssuesRequest) (*model.GetProjectIssuesResponse, error)
}

type issueDomain struct {
	issueRepo        repository.IssueRepository
	projectRepo      repository.ProjectRepository
	collaboratorRepo repository.CollaboratorRepository
	userRepo         repository.UserRepository
}

func NewIssueDomain(
	issueRepo repository.IssueRepository,
	projectRepo repository.ProjectRepository,
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
) *issueDomain {
	return &issueDomain{
		issueRepo:        issueRepo,
		projectRepo:      projectRepo,
		collaboratorRepo: collaboratorRepo,
		userRepo:         userRepo,
	}
}

func (d *issueDomain) Create(ctx context.Context, req *model.CreateIssueRequest) (*model.CreateIssueResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if _, err := d.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	issue := &entity.Issue{
		Base:        entity.Base{ID: uuid.NewString()},
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.IssueOpen,
	}

	if err := d.issueRepo.Create(ctx, issue); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create issue: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateIssueResponse{Issue: model.ConvertIssue(issue)}, nil
}

func (d *issueDomain) UpdateStatus(
	ctx context.Context, req *model.UpdateIssueStatusRequest,
) (*model.UpdateIssueStatusResponse, error) {
	status, err := enum.ToEnum[entity.IssueStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	issue, err := d.loadOwned(ctx, req.IssueID)
	if err != nil {
		return nil, err
	}

	if err := d.issueRepo.UpdateStatusByID(ctx, issue.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update issue status: %v", err)
		return nil, errorx.Unknown
	}

	issue.Status = status
	return &model.UpdateIssueStatusResponse{Issue: model.ConvertIssue(issue)}, nil
}

// Close marks the issue closed and credits collaborators in one transaction,
// a failure partway leaves neither applied.
func (d *issueDomain) Close(ctx context.Context, req *model.CloseIssueRequest) (*model.CloseIssueResponse, error) {
	issue, err := d.loadOwned(ctx, req.IssueID)
	if err != nil {
		return nil, err
	}

	if len(req.CollaboratorIDs) > 0 {
		users, err := d.userRepo.GetByIDs(ctx, req.CollaboratorIDs)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get collaborator users: %v", err)
			return nil, errorx.Unknown
		}

		found := map[string]bool{}
		for _, user := range users {
			found[user.ID] = true
		}

		for _, id := range req.CollaboratorIDs {
			if !found[id] {
				return nil, errorx.New(errorx.NotFound, "Not found collaborator %s", id)
			}
		}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.issueRepo.UpdateStatusByID(ctx, issue.ID, entity.IssueClosed); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot close issue: %v", err)
		return nil, errorx.Unknown
	}

	for _, userID := range req.CollaboratorIDs {
		err := d.collaboratorRepo.Upsert(ctx, &entity.Collaborator{
			UserID:  userID,
			IssueID: issue.ID,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot credit collaborator: %v", err)
			return nil, errorx.Unknown
		}
	}

	collaborators, err := d.collaboratorRepo.GetByIssueID(ctx, issue.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get issue collaborators: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	issue.Status = entity.IssueClosed
	ids := []string{}
	for _, collaborator := range collaborators {
		ids = append(ids, collaborator.UserID)
	}

	return &model.CloseIssueResponse{
		Issue:         model.ConvertIssue(issue),
		Collaborators: ids,
	}, nil
}

func (d *issueDomain) GetByProject(
	ctx context.Context, req *model.GetProjectIssuesRequest,
) (*model.GetProjectIssuesResponse, error) {
	issues, err := d.issueRepo.GetByProjectID(ctx, req.ProjectID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project issues: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetProjectIssuesResponse{Issues: []model.Issue{}}
	for i := range issues {
		resp.Issues = append(resp.Issues, model.ConvertIssue(&issues[i]))
	}

	return resp, nil
}

// loadOwned only allows the owner of the parent project to manage an issue.
func (d *issueDomain) loadOwned(ctx context.Context, issueID string) (*entity.Issue, error) {
	issue, err := d.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found issue")
		}

		xcontext.Logger(ctx).Errorf("Cannot get issue: %v", err)
		return nil, errorx.Unknown
	}

	project, err := d.projectRepo.GetByID(ctx, issue.ProjectID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project of issue: %v", err)
		return nil, errorx.Unknown
	}

	if project.CreatedBy != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return issue, nil
}
