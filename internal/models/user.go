package models

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

const UserTable = "users"

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	PasswordHash string `json:"-"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (u User) Item() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":            stringValue(u.ID),
		"email":         stringValue(u.Email),
		"nickname":      stringValue(u.Nickname),
		"password_hash": stringValue(u.PasswordHash),
		"thumbnail_url": stringValue(u.ThumbnailURL),
	}
}

func UserFromItem(item map[string]types.AttributeValue) (User, bool) {
	id, ok := stringAttr(item, "id")

	if !ok {
		return User{}, false
	}

	email, ok := stringAttr(item, "email")

	if !ok {
		return User{}, false
	}

	nickname, ok := stringAttr(item, "nickname")

	if !ok {
		return User{}, false
	}

	passwordHash, ok := stringAttr(item, "password_hash")

	if !ok {
		return User{}, false
	}

	thumbnailURL, ok := stringAttr(item, "thumbnail_url")

	if !ok {
		return User{}, false
	}

	return User{
		ID:           id,
		Email:        email,
		Nickname:     nickname,
		PasswordHash: passwordHash,
		ThumbnailURL: thumbnailURL,
	}, true
}
