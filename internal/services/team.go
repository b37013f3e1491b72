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

// TeamService owns the team, membership and invite tables.
type TeamService struct {
	db store.DynamoAPI
}

func NewTeamService(db store.DynamoAPI) *TeamService {
	return &TeamService{db: db}
}

func (s *TeamService) CreateTeam(ctx context.Context, team models.Team) (string, error) {
	if _, err := s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(models.TeamTable),
		Item:      team.Item(),
	}); err != nil {
		return "", &apperr.StoreError{Op: "put", Table: models.TeamTable, Err: err}
	}

	return team.ID, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	if _, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(models.TeamTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: teamID},
		},
	}); err != nil {
		return &apperr.StoreError{Op: "delete", Table: models.TeamTable, Err: err}
	}

	return nil
}

func (s *TeamService) GetTeamByID(ctx context.Context, teamID string) (models.Team, error) {
	teams, err := store.ScanAll(ctx, s.db, models.TeamTable,
		map[string]string{"id": teamID}, models.TeamFromItem, store.DecodeSkip)

	if err != nil {
		return models.Team{}, err
	}

	if len(teams) == 0 {
		return models.Team{}, fmt.Errorf("team %s: %w", teamID, apperr.ErrNotFound)
	}

	return teams[0], nil
}

func (s *TeamService) CreateTeamUser(ctx context.Context, teamUser models.TeamUser) error {
	if _, err := s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(models.TeamUserTable),
		Item:      teamUser.Item(),
	}); err != nil {
		return &apperr.StoreError{Op: "put", Table: models.TeamUserTable, Err: err}
	}

	return nil
}

func (s *TeamService) DeleteTeamUser(ctx context.Context, teamID, userID string) error {
	if _, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(models.TeamUserTable),
		Key: map[string]types.AttributeValue{
			"team_id": &types.AttributeValueMemberS{Value: teamID},
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	}); err != nil {
		return &apperr.StoreError{Op: "delete", Table: models.TeamUserTable, Err: err}
	}

	return nil
}

// FindTeamUser returns the caller's membership record or nil when no record
// exists for the (team, user) pair.
func (s *TeamService) FindTeamUser(ctx context.Context, teamID, userID string) (*models.TeamUser, error) {
	memberships, err := store.ScanAll(ctx, s.db, models.TeamUserTable,
		map[string]string{"team_id": teamID, "user_id": userID},
		models.TeamUserFromItem, store.DecodeSkip)

	if err != nil {
		return nil, err
	}

	if len(memberships) == 0 {
		return nil, nil
	}

	return &memberships[0], nil
}

func (s *TeamService) ListTeamUsersByUserID(ctx context.Context, userID string) ([]models.TeamUser, error) {
	return store.ScanAll(ctx, s.db, models.TeamUserTable,
		map[string]string{"user_id": userID}, models.TeamUserFromItem, store.DecodeSkip)
}

func (s *TeamService) ListTeamUsersByTeamID(ctx context.Context, teamID string) ([]models.TeamUser, error) {
	return store.ScanAll(ctx, s.db, models.TeamUserTable,
		map[string]string{"team_id": teamID}, models.TeamUserFromItem, store.DecodeSkip)
}

func (s *TeamService) CreateTeamInvite(ctx context.Context, invite models.TeamInvite) (string, error) {
	if _, err := s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(models.TeamInviteTable),
		Item:      invite.Item(),
	}); err != nil {
		return "", &apperr.StoreError{Op: "put", Table: models.TeamInviteTable, Err: err}
	}

	return invite.Code, nil
}

func (s *TeamService) GetTeamInviteByCode(ctx context.Context, code string) (models.TeamInvite, error) {
	invites, err := store.ScanAll(ctx, s.db, models.TeamInviteTable,
		map[string]string{"code": code}, models.TeamInviteFromItem, store.DecodeSkip)

	if err != nil {
		return models.TeamInvite{}, err
	}

	if len(invites) == 0 {
		return models.TeamInvite{}, fmt.Errorf("invite %s: %w", code, apperr.ErrNotFound)
	}

	return invites[0], nil
}

func (s *TeamService) DeleteTeamInviteByCode(ctx context.Context, code string) error {
	if _, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(models.TeamInviteTable),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	}); err != nil {
		return &apperr.StoreError{Op: "delete", Table: models.TeamInviteTable, Err: err}
	}

	return nil
}
