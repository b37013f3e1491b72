package models

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

const ProjectTable = "projects"

// Project belongs to exactly one team; team_id is what authorization
// resolution pivots on.
type Project struct {
	ID           string `json:"id"`
	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (p Project) Item() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":            stringValue(p.ID),
		"team_id":       stringValue(p.TeamID),
		"name":          stringValue(p.Name),
		"description":   stringValue(p.Description),
		"thumbnail_url": stringValue(p.ThumbnailURL),
	}
}

func ProjectFromItem(item map[string]types.AttributeValue) (Project, bool) {
	id, ok := stringAttr(item, "id")

	if !ok {
		return Project{}, false
	}

	teamID, ok := stringAttr(item, "team_id")

	if !ok {
		return Project{}, false
	}

	name, ok := stringAttr(item, "name")

	if !ok {
		return Project{}, false
	}

	description, ok := stringAttr(item, "description")

	if !ok {
		return Project{}, false
	}

	thumbnailURL, ok := stringAttr(item, "thumbnail_url")

	if !ok {
		return Project{}, false
	}

	return Project{
		ID:           id,
		TeamID:       teamID,
		Name:         name,
		Description:  description,
		ThumbnailURL: thumbnailURL,
	}, true
}
