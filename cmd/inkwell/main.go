package main

import (
	"context"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"

	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/authz"
	"github.com/inkwell-dev/inkwell/internal/config"
	"github.com/inkwell-dev/inkwell/internal/handlers"
	"github.com/inkwell-dev/inkwell/internal/middleware"
	"github.com/inkwell-dev/inkwell/internal/objectstore"
	"github.com/inkwell-dev/inkwell/internal/router"
	"github.com/inkwell-dev/inkwell/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := config.Load()

	if err := auth.Init(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	awsOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.AWSAccessKeyID != "" {
		awsOpts = append(awsOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsOpts...)

	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg)
	s3Client := s3.NewFromConfig(awsCfg)

	userService := services.NewUserService(dynamoClient)
	teamService := services.NewTeamService(dynamoClient)
	projectService := services.NewProjectService(dynamoClient)
	noteService := services.NewNoteService(dynamoClient)

	resolver := authz.NewResolver(teamService, projectService)
	uploader := objectstore.NewUploader(s3Client, cfg.BucketName, cfg.BucketBaseURL)

	r := router.NewRouter(router.Handlers{
		Users:    handlers.NewUserHandler(userService),
		Teams:    handlers.NewTeamHandler(teamService, resolver),
		Projects: handlers.NewProjectHandler(projectService, resolver),
		Notes:    handlers.NewNoteHandler(noteService, resolver),
		Uploads:  handlers.NewUploadHandler(uploader),
	}, middleware.Identity(userService))

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
