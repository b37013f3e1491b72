package models

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

const TeamUserTable = "team_users"

// Authority is a team member's privilege level, totally ordered by Rank.
type Authority string

const (
	AuthorityOwner Authority = "owner"
	AuthorityAdmin Authority = "admin"
	AuthorityWrite Authority = "write"
	AuthorityRead  Authority = "read"
)

// Rank returns the position of the authority in the Owner > Admin > Write >
// Read order. Unknown values rank below every valid authority.
func (a Authority) Rank() int {
	switch a {
	case AuthorityOwner:
		return 4
	case AuthorityAdmin:
		return 3
	case AuthorityWrite:
		return 2
	case AuthorityRead:
		return 1
	default:
		return 0
	}
}

func (a Authority) Valid() bool {
	return a.Rank() > 0
}

// TeamUser is the membership record, composite-keyed by (team_id, user_id).
// The store enforces no uniqueness; creators must not write a second record
// for the same pair.
type TeamUser struct {
	TeamID    string    `json:"team_id"`
	UserID    string    `json:"user_id"`
	Authority Authority `json:"authority"`
}

func (tu TeamUser) Item() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"team_id":   stringValue(tu.TeamID),
		"user_id":   stringValue(tu.UserID),
		"authority": stringValue(string(tu.Authority)),
	}
}

func TeamUserFromItem(item map[string]types.AttributeValue) (TeamUser, bool) {
	teamID, ok := stringAttr(item, "team_id")

	if !ok {
		return TeamUser{}, false
	}

	userID, ok := stringAttr(item, "user_id")

	if !ok {
		return TeamUser{}, false
	}

	authority, ok := stringAttr(item, "authority")

	if !ok || !Authority(authority).Valid() {
		return TeamUser{}, false
	}

	return TeamUser{
		TeamID:    teamID,
		UserID:    userID,
		Authority: Authority(authority),
	}, true
}
