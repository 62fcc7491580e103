package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/forkd-labs/backend/internal/middleware"
	"github.com/forkd-labs/backend/pkg/router"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowedOrigins,
		AllowCredentials: true,
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: c.Handler(s.router.Handler()),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	{
		router.POST(s.router, "/register", s.authDomain.Register)
		router.POST(s.router, "/verifyEmail", s.authDomain.VerifyEmail)
		router.POST(s.router, "/resendVerification", s.authDomain.ResendVerification)
		router.POST(s.router, "/login", s.authDomain.Login)
		router.POST(s.router, "/refresh", s.authDomain.Refresh)
	}

	// These following APIs need authentication with an Access Token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate)
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.GET(authRouter, "/getUser", s.userDomain.GetUser)
		router.GET(authRouter, "/getListUser", s.userDomain.GetList)
		router.POST(authRouter, "/updateUser", s.userDomain.Update)

		// Project API
		router.POST(authRouter, "/createProject", s.projectDomain.Create)
		router.GET(authRouter, "/getProject", s.projectDomain.Get)
		router.GET(authRouter, "/getMyProjects", s.projectDomain.GetMyProjects)
		router.GET(authRouter, "/getProjectsByUser", s.projectDomain.GetByUser)
		router.POST(authRouter, "/updateProject", s.projectDomain.Update)
		router.POST(authRouter, "/deleteProject", s.projectDomain.Delete)

		// Issue API
		router.POST(authRouter, "/createIssue", s.issueDomain.Create)
		router.POST(authRouter, "/updateIssueStatus", s.issueDomain.UpdateStatus)
		router.POST(authRouter, "/closeIssueWithCollaborators", s.issueDomain.Close)
		router.GET(authRouter, "/getProjectIssues", s.issueDomain.GetByProject)

		// Comment API
		router.POST(authRouter, "/createComment", s.commentDomain.Create)
		router.POST(authRouter, "/deleteComment", s.commentDomain.Delete)
		router.GET(authRouter, "/getProjectComments", s.commentDomain.GetByProject)

		// Like API
		router.POST(authRouter, "/toggleLike", s.likeDomain.Toggle)

		// Statistic API
		router.GET(authRouter, "/getRecommendedProjects", s.recommendationDomain.Get)
		router.GET(authRouter, "/getTopContributors", s.statisticDomain.GetTopContributors)
		router.GET(authRouter, "/getUserStats", s.statisticDomain.GetUserStats)
		router.GET(authRouter, "/getRecentActivity", s.statisticDomain.GetRecentActivity)
	}
}
