package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/store"
)

type UserService struct {
	db store.DynamoAPI
}

func NewUserService(db store.DynamoAPI) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (string, error) {
	if _, err := s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(models.UserTable),
		Item:      user.Item(),
	}); err != nil {
		return "", &apperr.StoreError{Op: "put", Table: models.UserTable, Err: err}
	}

	return user.ID, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	users, err := store.ScanAll(ctx, s.db, models.UserTable,
		map[string]string{"id": userID}, models.UserFromItem, store.DecodeSkip)

	if err != nil {
		return models.User{}, err
	}

	if len(users) == 0 {
		return models.User{}, fmt.Errorf("user %s: %w", userID, apperr.ErrNotFound)
	}

	return users[0], nil
}

// FindUserByEmail returns nil when no user carries the email.
func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := store.ScanAll(ctx, s.db, models.UserTable,
		map[string]string{"email": email}, models.UserFromItem, store.DecodeSkip)

	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, nil
	}

	return &users[0], nil
}
