package models

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

const TeamInviteTable = "team_invites"

// TeamInvite is consumed on acceptance or revoked explicitly; the code is the
// primary key.
type TeamInvite struct {
	Code      string    `json:"code"`
	TeamID    string    `json:"team_id"`
	Authority Authority `json:"authority"`
}

func (ti TeamInvite) Item() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"code":      stringValue(ti.Code),
		"team_id":   stringValue(ti.TeamID),
		"authority": stringValue(string(ti.Authority)),
	}
}

func TeamInviteFromItem(item map[string]types.AttributeValue) (TeamInvite, bool) {
	code, ok := stringAttr(item, "code")

	if !ok {
		return TeamInvite{}, false
	}

	teamID, ok := stringAttr(item, "team_id")

	if !ok {
		return TeamInvite{}, false
	}

	authority, ok := stringAttr(item, "authority")

	if !ok || !Authority(authority).Valid() {
		return TeamInvite{}, false
	}

	return TeamInvite{
		Code:      code,
		TeamID:    teamID,
		Authority: Authority(authority),
	}, true
}
