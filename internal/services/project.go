package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/store"
)

type ProjectService struct {
	db store.DynamoAPI
}

func NewProjectService(db store.DynamoAPI) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) CreateProject(ctx context.Context, project models.Project) (string, error) {
	if _, err := s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(models.ProjectTable),
		Item:      project.Item(),
	}); err != nil {
		return "", &apperr.StoreError{Op: "put", Table: models.ProjectTable, Err: err}
	}

	return project.ID, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (models.Project, error) {
	projects, err := store.ScanAll(ctx, s.db, models.ProjectTable,
		map[string]string{"id": projectID}, models.ProjectFromItem, store.DecodeSkip)

	if err != nil {
		return models.Project{}, err
	}

	if len(projects) == 0 {
		return models.Project{}, fmt.Errorf("project %s: %w", projectID, apperr.ErrNotFound)
	}

	return projects[0], nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(models.ProjectTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: projectID},
		},
	}); err != nil {
		return &apperr.StoreError{Op: "delete", Table: models.ProjectTable, Err: err}
	}

	return nil
}

func (s *ProjectService) ListProjectsByTeamID(ctx context.Context, teamID string) ([]models.Project, error) {
	return store.ScanAll(ctx, s.db, models.ProjectTable,
		map[string]string{"team_id": teamID}, models.ProjectFromItem, store.DecodeSkip)
}
