package models

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

const NoteTable = "notes"

// Note ids are generated server-side at creation, never caller-supplied.
type Note struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Content   string `json:"content"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

func (n Note) Item() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":         stringValue(n.ID),
		"project_id": stringValue(n.ProjectID),
		"content":    stringValue(n.Content),
		"x":          intValue(n.X),
		"y":          intValue(n.Y),
	}
}

func NoteFromItem(item map[string]types.AttributeValue) (Note, bool) {
	id, ok := stringAttr(item, "id")

	if !ok {
		return Note{}, false
	}

	projectID, ok := stringAttr(item, "project_id")

	if !ok {
		return Note{}, false
	}

	content, ok := stringAttr(item, "content")

	if !ok {
		return Note{}, false
	}

	x, ok := intAttr(item, "x")

	if !ok {
		return Note{}, false
	}

	y, ok := intAttr(item, "y")

	if !ok {
		return Note{}, false
	}

	return Note{
		ID:        id,
		ProjectID: projectID,
		Content:   content,
		X:         x,
		Y:         y,
	}, true
}
