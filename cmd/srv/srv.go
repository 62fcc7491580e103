package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/forkd-labs/backend/config"
	"github.com/forkd-labs/backend/internal/domain"
	"github.com/forkd-labs/backend/internal/repository"
	"github.com/forkd-labs/backend/pkg/logger"
	"github.com/forkd-labs/backend/pkg/router"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	userRepo              repository.UserRepository
	skillRepo             repository.SkillRepository
	verificationTokenRepo repository.VerificationTokenRepository
	projectRepo           repository.ProjectRepository
	tagRepo               repository.TagRepository
	issueRepo             repository.IssueRepository
	collaboratorRepo      repository.CollaboratorRepository
	likeRepo              repository.LikeRepository
	commentRepo           repository.CommentRepository
	statisticRepo         repository.StatisticRepository

	authDomain           domain.AuthDomain
	userDomain           domain.UserDomain
	projectDomain        domain.ProjectDomain
	issueDomain          domain.IssueDomain
	commentDomain        domain.CommentDomain
	likeDomain           domain.LikeDomain
	statisticDomain      domain.StatisticDomain
	recommendationDomain domain.RecommendationDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() {
	cfg := config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "forkd"),
			User:     getEnv("MYSQL_USER", "forkd"),
			Password: getEnv("MYSQL_PASSWORD", "forkd"),
		},
		ApiServer: config.APIServerConfigs{
			Host:           getEnv("API_HOST", "localhost"),
			Port:           getEnv("API_PORT", "8080"),
			Cert:           getEnv("API_SERVER_CERT", ""),
			Key:            getEnv("API_SERVER_KEY", ""),
			DefaultLimit:   10,
			MaxLimit:       50,
			AllowedOrigins: []string{getEnv("API_ALLOWED_ORIGIN", "http://localhost:3000")},
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token-secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvDuration("ACCESS_TOKEN_DURATION", time.Hour),
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: getEnvDuration("REFRESH_TOKEN_DURATION", 14*24*time.Hour),
			},
			CampusEmailDomain:         getEnv("CAMPUS_EMAIL_DOMAIN", "nu.edu.pk"),
			VerificationTokenLifetime: getEnvDuration("VERIFICATION_TOKEN_DURATION", 24*time.Hour),
		},
		Session: config.SessionConfigs{
			Secret: getEnv("SESSION_SECRET", "session-secret"),
			Name:   getEnv("SESSION_NAME", "forkd_session"),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			panic(err)
		}
	}

	s.configs = &cfg
	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                      s.configs.Database.ConnectionString(),
		DefaultStringSize:        256,
		DisableDatetimePrecision: true,
		DontSupportRenameIndex:   true,
		DontSupportRenameColumn:  true,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.skillRepo = repository.NewSkillRepository()
	s.verificationTokenRepo = repository.NewVerificationTokenRepository()
	s.projectRepo = repository.NewProjectRepository()
	s.tagRepo = repository.NewTagRepository()
	s.issueRepo = repository.NewIssueRepository()
	s.collaboratorRepo = repository.NewCollaboratorRepository()
	s.likeRepo = repository.NewLikeRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.statisticRepo = repository.NewStatisticRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.skillRepo, s.verificationTokenRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.skillRepo)
	s.projectDomain = domain.NewProjectDomain(
		s.projectRepo, s.tagRepo, s.userRepo, s.issueRepo,
		s.collaboratorRepo, s.likeRepo, s.commentRepo, s.statisticRepo)
	s.issueDomain = domain.NewIssueDomain(s.issueRepo, s.projectRepo, s.collaboratorRepo, s.userRepo)
	s.commentDomain = domain.NewCommentDomain(s.commentRepo, s.projectRepo, s.userRepo)
	s.likeDomain = domain.NewLikeDomain(s.likeRepo, s.projectRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.statisticRepo)
	s.recommendationDomain = domain.NewRecommendationDomain(s.statisticRepo, s.skillRepo, s.tagRepo)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}

	return duration
}
