// Package authz resolves a caller's authority over a team or project and
// gates every mutating operation. No write path may bypass it.
package authz

import (
	"context"
	"errors"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/services"
)

// Action is the class of operation being requested. The minimum authority per
// class lives here so policy stays in one place.
type Action int

const (
	ActionRead Action = iota
	ActionWrite
	ActionAdmin
)

func (a Action) Required() models.Authority {
	switch a {
	case ActionAdmin:
		return models.AuthorityAdmin
	case ActionWrite:
		return models.AuthorityWrite
	default:
		return models.AuthorityRead
	}
}

// Permit reports whether the held authority satisfies the required one under
// the Owner > Admin > Write > Read order.
func Permit(held, required models.Authority) bool {
	return held.Rank() >= required.Rank()
}

type Reason int

const (
	ReasonPermitted Reason = iota
	ReasonProjectNotFound
	ReasonNotMember
	ReasonInsufficientAuthority
	ReasonTransient
)

// Decision is derived per request and never persisted.
type Decision struct {
	Permitted bool
	Reason    Reason
	TeamID    string
	Authority models.Authority
	Err       error
}

type Resolver struct {
	teams    *services.TeamService
	projects *services.ProjectService
}

func NewResolver(teams *services.TeamService, projects *services.ProjectService) *Resolver {
	return &Resolver{teams: teams, projects: projects}
}

// ResolveProject composes two scans: the project lookup yields the owning
// team, the membership lookup yields the caller's authority within it.
//
// The decision holds only at resolution time. A membership revoked between
// this check and the write it gates is not detected; the store offers no
// conditional write to close that window, and the gap is accepted.
func (r *Resolver) ResolveProject(ctx context.Context, userID, projectID string, action Action) Decision {
	project, err := r.projects.GetProjectByID(ctx, projectID)

	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Decision{Reason: ReasonProjectNotFound}
		}

		return Decision{Reason: ReasonTransient, Err: err}
	}

	return r.ResolveTeam(ctx, userID, project.TeamID, action)
}

// ResolveTeam decides whether userID may perform action against teamID.
func (r *Resolver) ResolveTeam(ctx context.Context, userID, teamID string, action Action) Decision {
	membership, err := r.teams.FindTeamUser(ctx, teamID, userID)

	if err != nil {
		return Decision{Reason: ReasonTransient, TeamID: teamID, Err: err}
	}

	if membership == nil {
		return Decision{Reason: ReasonNotMember, TeamID: teamID}
	}

	if !Permit(membership.Authority, action.Required()) {
		return Decision{
			Reason:    ReasonInsufficientAuthority,
			TeamID:    teamID,
			Authority: membership.Authority,
		}
	}

	return Decision{
		Permitted: true,
		Reason:    ReasonPermitted,
		TeamID:    teamID,
		Authority: membership.Authority,
	}
}
