package models

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

const TeamTable = "teams"

type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	OwnerID      string `json:"owner_id"`
}

func (t Team) Item() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":            stringValue(t.ID),
		"name":          stringValue(t.Name),
		"description":   stringValue(t.Description),
		"thumbnail_url": stringValue(t.ThumbnailURL),
		"owner_id":      stringValue(t.OwnerID),
	}
}

func TeamFromItem(item map[string]types.AttributeValue) (Team, bool) {
	id, ok := stringAttr(item, "id")

	if !ok {
		return Team{}, false
	}

	name, ok := stringAttr(item, "name")

	if !ok {
		return Team{}, false
	}

	description, ok := stringAttr(item, "description")

	if !ok {
		return Team{}, false
	}

	thumbnailURL, ok := stringAttr(item, "thumbnail_url")

	if !ok {
		return Team{}, false
	}

	ownerID, ok := stringAttr(item, "owner_id")

	if !ok {
		return Team{}, false
	}

	return Team{
		ID:           id,
		Name:         name,
		Description:  description,
		ThumbnailURL: thumbnailURL,
		OwnerID:      ownerID,
	}, true
}
