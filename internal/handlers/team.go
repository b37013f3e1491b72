package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/authz"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/services"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateInviteRequest struct {
	Authority models.Authority `json:"authority" binding:"required"`
}

type AcceptInviteRequest struct {
	Code string `json:"code" binding:"required"`
}

type TeamHandler struct {
	teams    *services.TeamService
	resolver *authz.Resolver
}

func NewTeamHandler(teams *services.TeamService, resolver *authz.Resolver) *TeamHandler {
	return &TeamHandler{teams: teams, resolver: resolver}
}

// CreateTeam writes the team and the creator's owner membership. The two puts
// are not transactional; a failed membership write leaves an ownerless team
// record behind.
func (h *TeamHandler) CreateTeam(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var body CreateTeamRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	team := models.Team{
		ID:          uuid.NewString(),
		Name:        body.Name,
		Description: body.Description,
		OwnerID:     currentUser.User.ID,
	}

	teamID, err := h.teams.CreateTeam(ctx.Request.Context(), team)

	if err != nil {
		log.Printf("Failed to create team: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	membership := models.TeamUser{
		TeamID:    teamID,
		UserID:    currentUser.User.ID,
		Authority: models.AuthorityOwner,
	}

	if err := h.teams.CreateTeamUser(ctx.Request.Context(), membership); err != nil {
		log.Printf("Failed to create owner membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "team_id": teamID})
}

// ListMyTeams resolves the caller's memberships, then each team record.
// Memberships pointing at deleted teams are skipped.
func (h *TeamHandler) ListMyTeams(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	memberships, err := h.teams.ListTeamUsersByUserID(ctx.Request.Context(), currentUser.User.ID)

	if err != nil {
		log.Printf("Failed to list memberships: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	teams := make([]models.Team, 0, len(memberships))

	for _, membership := range memberships {
		team, err := h.teams.GetTeamByID(ctx.Request.Context(), membership.TeamID)

		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				continue
			}

			log.Printf("Failed to fetch team %s: %v", membership.TeamID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		teams = append(teams, team)
	}

	ctx.JSON(http.StatusOK, teams)
}

func (h *TeamHandler) ListTeamUsers(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	teamID := ctx.Param("team_id")

	decision := h.resolver.ResolveTeam(ctx.Request.Context(), currentUser.User.ID, teamID, authz.ActionRead)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	members, err := h.teams.ListTeamUsersByTeamID(ctx.Request.Context(), teamID)

	if err != nil {
		log.Printf("Failed to list team members: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, members)
}

func (h *TeamHandler) DeleteTeam(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	teamID := ctx.Param("team_id")

	decision := h.resolver.ResolveTeam(ctx.Request.Context(), currentUser.User.ID, teamID, authz.ActionAdmin)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	if err := h.teams.DeleteTeam(ctx.Request.Context(), teamID); err != nil {
		log.Printf("Failed to delete team: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *TeamHandler) CreateInvite(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var body CreateInviteRequest

	if err := ctx.BindJSON(&body); err != nil || !body.Authority.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	teamID := ctx.Param("team_id")

	decision := h.resolver.ResolveTeam(ctx.Request.Context(), currentUser.User.ID, teamID, authz.ActionAdmin)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	invite := models.TeamInvite{
		Code:      uuid.NewString(),
		TeamID:    teamID,
		Authority: body.Authority,
	}

	code, err := h.teams.CreateTeamInvite(ctx.Request.Context(), invite)

	if err != nil {
		log.Printf("Failed to create invite: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "code": code})
}

// AcceptInvite consumes the code: the membership is written with the invite's
// authority and the invite deleted. An existing membership is left untouched
// so an invite cannot demote or promote a member.
func (h *TeamHandler) AcceptInvite(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var body AcceptInviteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	invite, err := h.teams.GetTeamInviteByCode(ctx.Request.Context(), body.Code)

	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Invite not found"})
		} else {
			log.Printf("Failed to fetch invite: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	existing, err := h.teams.FindTeamUser(ctx.Request.Context(), invite.TeamID, currentUser.User.ID)

	if err != nil {
		log.Printf("Failed to check membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if existing != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "Already a team member"})
		return
	}

	membership := models.TeamUser{
		TeamID:    invite.TeamID,
		UserID:    currentUser.User.ID,
		Authority: invite.Authority,
	}

	if err := h.teams.CreateTeamUser(ctx.Request.Context(), membership); err != nil {
		log.Printf("Failed to create membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.teams.DeleteTeamInviteByCode(ctx.Request.Context(), invite.Code); err != nil {
		log.Printf("Failed to consume invite %s: %v", invite.Code, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "team_id": invite.TeamID})
}

func (h *TeamHandler) RevokeInvite(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	code := ctx.Param("code")

	invite, err := h.teams.GetTeamInviteByCode(ctx.Request.Context(), code)

	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Invite not found"})
		} else {
			log.Printf("Failed to fetch invite: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	decision := h.resolver.ResolveTeam(ctx.Request.Context(), currentUser.User.ID, invite.TeamID, authz.ActionAdmin)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	if err := h.teams.DeleteTeamInviteByCode(ctx.Request.Context(), code); err != nil {
		log.Printf("Failed to revoke invite: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// LeaveTeam removes the caller's own membership. Owners cannot leave; the
// team must be deleted instead.
func (h *TeamHandler) LeaveTeam(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	teamID := ctx.Param("team_id")

	membership, err := h.teams.FindTeamUser(ctx.Request.Context(), teamID, currentUser.User.ID)

	if err != nil {
		log.Printf("Failed to check membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if membership == nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not a team member"})
		return
	}

	if membership.Authority == models.AuthorityOwner {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Owner cannot leave the team"})
		return
	}

	if err := h.teams.DeleteTeamUser(ctx.Request.Context(), teamID, currentUser.User.ID); err != nil {
		log.Printf("Failed to remove membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
