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

type NoteService struct {
	db store.DynamoAPI
}

func NewNoteService(db store.DynamoAPI) *NoteService {
	return &NoteService{db: db}
}

func (s *NoteService) CreateNote(ctx context.Context, note models.Note) (string, error) {
	if _, err := s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(models.NoteTable),
		Item:      note.Item(),
	}); err != nil {
		return "", &apperr.StoreError{Op: "put", Table: models.NoteTable, Err: err}
	}

	return note.ID, nil
}

func (s *NoteService) GetNoteByID(ctx context.Context, noteID string) (models.Note, error) {
	notes, err := store.ScanAll(ctx, s.db, models.NoteTable,
		map[string]string{"id": noteID}, models.NoteFromItem, store.DecodeSkip)

	if err != nil {
		return models.Note{}, err
	}

	if len(notes) == 0 {
		return models.Note{}, fmt.Errorf("note %s: %w", noteID, apperr.ErrNotFound)
	}

	return notes[0], nil
}

func (s *NoteService) DeleteNote(ctx context.Context, noteID string) error {
	if _, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(models.NoteTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: noteID},
		},
	}); err != nil {
		return &apperr.StoreError{Op: "delete", Table: models.NoteTable, Err: err}
	}

	return nil
}

func (s *NoteService) ListNotesByProjectID(ctx context.Context, projectID string) ([]models.Note, error) {
	return store.ScanAll(ctx, s.db, models.NoteTable,
		map[string]string{"project_id": projectID}, models.NoteFromItem, store.DecodeSkip)
}
