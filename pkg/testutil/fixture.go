package testutil

import (
	"context"
	"time"

	"github.com/forkd-labs/backend/internal/entity"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/crypto"
)

// PlainPassword is the password of every fixture user before hashing.
const PlainPassword = "password"

var (
	User1 entity.User // alice, owns Project1..3, credited on Issue2 and Issue3
	User2 entity.User // bob, owns Project4
	User3 entity.User // carol, owns Project5
	User4 entity.User // dave, no activity, skills python/react
	User5 entity.User // eve, owns Project6
	User6 entity.User // frank, owns Project7, credited on Issue2

	Project1 entity.Project
	Project2 entity.Project
	Project3 entity.Project
	Project4 entity.Project
	Project5 entity.Project
	Project6 entity.Project
	Project7 entity.Project

	Issue1 entity.Issue // open, on Project1
	Issue2 entity.Issue // closed, on Project4
	Issue3 entity.Issue // closed, on Project4

	Comment1 entity.Comment // bob on Project1
	Comment2 entity.Comment // eve on Project2

	Skills        []entity.Skill
	Tags          []entity.Tag
	Likes         []entity.Like
	Collaborators []entity.Collaborator
)

func CreateFixtureDb(ctx context.Context) {
	buildFixture(time.Now())

	insertUsers(ctx)
	insertProjects(ctx)
	insertIssues(ctx)
	insertEngagement(ctx)
}

func buildFixture(now time.Time) {
	hashed, err := crypto.HashPassword(PlainPassword)
	if err != nil {
		panic(err)
	}

	User1 = entity.User{
		Base:           entity.Base{ID: "user1", CreatedAt: now.AddDate(0, 0, -30)},
		Email:          "alice@campus.edu",
		HashedPassword: hashed,
		FullName:       "Alice Nguyen",
		AvatarURL:      "https://example.com/alice.png",
		IsVerified:     true,
	}
	User2 = entity.User{
		Base:           entity.Base{ID: "user2", CreatedAt: now.AddDate(0, 0, -29)},
		Email:          "bob@campus.edu",
		HashedPassword: hashed,
		FullName:       "Bob Tran",
		IsVerified:     true,
	}
	User3 = entity.User{
		Base:           entity.Base{ID: "user3", CreatedAt: now.AddDate(0, 0, -28)},
		Email:          "carol@campus.edu",
		HashedPassword: hashed,
		FullName:       "Carol Le",
		IsVerified:     true,
	}
	User4 = entity.User{
		Base:           entity.Base{ID: "user4", CreatedAt: now.AddDate(0, 0, -27)},
		Email:          "dave@campus.edu",
		HashedPassword: hashed,
		FullName:       "Dave Pham",
		IsVerified:     false,
	}
	User5 = entity.User{
		Base:           entity.Base{ID: "user5", CreatedAt: now.AddDate(0, 0, -26)},
		Email:          "eve@campus.edu",
		HashedPassword: hashed,
		FullName:       "Eve Hoang",
		IsVerified:     true,
	}
	User6 = entity.User{
		Base:           entity.Base{ID: "user6", CreatedAt: now.AddDate(0, 0, -25)},
		Email:          "frank@campus.edu",
		HashedPassword: hashed,
		FullName:       "Frank Vo",
		IsVerified:     true,
	}

	Project1 = entity.Project{
		Base:      entity.Base{ID: "project1", CreatedAt: now.AddDate(0, 0, -10), UpdatedAt: now},
		CreatedBy: User1.ID,
		Title:     "Course Planner",
		RepoURL:   "https://github.com/alice/course-planner",
	}
	Project2 = entity.Project{
		Base:      entity.Base{ID: "project2", CreatedAt: now.AddDate(0, 0, -9), UpdatedAt: now.AddDate(0, 0, -9)},
		CreatedBy: User1.ID,
		Title:     "Dorm Marketplace",
	}
	Project3 = entity.Project{
		Base:      entity.Base{ID: "project3", CreatedAt: now.AddDate(0, 0, -8), UpdatedAt: now.AddDate(0, 0, -8)},
		CreatedBy: User1.ID,
		Title:     "Lab Scheduler",
	}
	Project4 = entity.Project{
		Base:      entity.Base{ID: "project4", CreatedAt: now.AddDate(0, 0, -20), UpdatedAt: now.AddDate(0, 0, -10)},
		CreatedBy: User2.ID,
		Title:     "Campus Map",
	}
	Project5 = entity.Project{
		Base:      entity.Base{ID: "project5", CreatedAt: now.AddDate(0, 0, -7), UpdatedAt: now.AddDate(0, 0, -7)},
		CreatedBy: User3.ID,
		Title:     "Grade Tracker",
	}
	Project6 = entity.Project{
		Base:      entity.Base{ID: "project6", CreatedAt: now.AddDate(0, 0, -6), UpdatedAt: now.AddDate(0, 0, -6)},
		CreatedBy: User5.ID,
		Title:     "Club Finder",
	}
	Project7 = entity.Project{
		Base:      entity.Base{ID: "project7", CreatedAt: now.AddDate(0, 0, -5), UpdatedAt: now.AddDate(0, 0, -5)},
		CreatedBy: User6.ID,
		Title:     "Ride Share Board",
	}

	Issue1 = entity.Issue{
		Base:      entity.Base{ID: "issue1", CreatedAt: now.AddDate(0, 0, -4)},
		ProjectID: Project1.ID,
		Title:     "Timetable overlaps are not detected",
		Status:    entity.IssueOpen,
	}
	Issue2 = entity.Issue{
		Base:      entity.Base{ID: "issue2", CreatedAt: now.AddDate(0, 0, -15)},
		ProjectID: Project4.ID,
		Title:     "Map tiles missing on mobile",
		Status:    entity.IssueClosed,
	}
	Issue3 = entity.Issue{
		Base:      entity.Base{ID: "issue3", CreatedAt: now.AddDate(0, 0, -14)},
		ProjectID: Project4.ID,
		Title:     "Search box crashes on empty query",
		Status:    entity.IssueClosed,
	}

	Comment1 = entity.Comment{
		Base:      entity.Base{ID: "comment1", CreatedAt: now.AddDate(0, 0, -1)},
		ProjectID: Project1.ID,
		UserID:    User2.ID,
		Content:   "Nice idea, does it handle lab sections?",
	}
	Comment2 = entity.Comment{
		Base:      entity.Base{ID: "comment2", CreatedAt: now.AddDate(0, 0, -2)},
		ProjectID: Project2.ID,
		UserID:    User5.ID,
		Content:   "Would love a free-stuff category",
	}

	Skills = []entity.Skill{
		{UserID: User1.ID, Name: "Go"},
		{UserID: User1.ID, Name: "Distributed Systems"},
		{UserID: User4.ID, Name: "python"},
		{UserID: User4.ID, Name: "react"},
	}

	Tags = []entity.Tag{
		{ProjectID: Project1.ID, Name: "Go"},
		{ProjectID: Project1.ID, Name: "Web"},
		{ProjectID: Project5.ID, Name: "Python"},
		{ProjectID: Project6.ID, Name: "go"},
	}

	Likes = []entity.Like{
		{UserID: User2.ID, ProjectID: Project1.ID},
		{UserID: User3.ID, ProjectID: Project1.ID},
		{UserID: User1.ID, ProjectID: Project4.ID},
		{UserID: User3.ID, ProjectID: Project4.ID},
	}

	Collaborators = []entity.Collaborator{
		{UserID: User1.ID, IssueID: Issue2.ID},
		{UserID: User1.ID, IssueID: Issue3.ID},
		{UserID: User6.ID, IssueID: Issue2.ID},
	}
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3, User4, User5, User6} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}

	if err := repository.NewSkillRepository().CreateMany(ctx, Skills); err != nil {
		panic(err)
	}
}

func insertProjects(ctx context.Context) {
	projectRepo := repository.NewProjectRepository()
	projects := []entity.Project{
		Project1, Project2, Project3, Project4, Project5, Project6, Project7,
	}
	for _, project := range projects {
		project := project
		if err := projectRepo.Create(ctx, &project); err != nil {
			panic(err)
		}
	}

	if err := repository.NewTagRepository().CreateMany(ctx, Tags); err != nil {
		panic(err)
	}
}

func insertIssues(ctx context.Context) {
	issueRepo := repository.NewIssueRepository()
	for _, issue := range []entity.Issue{Issue1, Issue2, Issue3} {
		issue := issue
		if err := issueRepo.Create(ctx, &issue); err != nil {
			panic(err)
		}
	}

	collaboratorRepo := repository.NewCollaboratorRepository()
	for _, collaborator := range Collaborators {
		collaborator := collaborator
		if err := collaboratorRepo.Upsert(ctx, &collaborator); err != nil {
			panic(err)
		}
	}
}

func insertEngagement(ctx context.Context) {
	likeRepo := repository.NewLikeRepository()
	for _, like := range Likes {
		like := like
		if err := likeRepo.Create(ctx, &like); err != nil {
			panic(err)
		}
	}

	commentRepo := repository.NewCommentRepository()
	for _, comment := range []entity.Comment{Comment1, Comment2} {
		comment := comment
		if err := commentRepo.Create(ctx, &comment); err != nil {
			panic(err)
		}
	}
}
