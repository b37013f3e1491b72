package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/services"
	"github.com/inkwell-dev/inkwell/internal/store/storetest"
)

func TestTeamService(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and fetches a team by id", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		teams := services.NewTeamService(fake)

		team := models.Team{ID: "T1", Name: "Platform", OwnerID: "U1"}

		teamID, err := teams.CreateTeam(ctx, team)

		require.NoError(t, err)
		assert.Equal(t, "T1", teamID)

		fetched, err := teams.GetTeamByID(ctx, "T1")

		require.NoError(t, err)
		assert.Equal(t, team, fetched)
	})

	t.Run("get by id reports not found", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		teams := services.NewTeamService(fake)

		_, err := teams.GetTeamByID(ctx, "missing")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("creating with the same id overwrites", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		teams := services.NewTeamService(fake)

		_, err := teams.CreateTeam(ctx, models.Team{ID: "T1", Name: "old"})
		require.NoError(t, err)

		_, err = teams.CreateTeam(ctx, models.Team{ID: "T1", Name: "new"})
		require.NoError(t, err)

		fetched, err := teams.GetTeamByID(ctx, "T1")

		require.NoError(t, err)
		assert.Equal(t, "new", fetched.Name)
		assert.Len(t, fake.Items(models.TeamTable), 1)
	})

	t.Run("deleting an absent team succeeds and leaves nothing behind", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		teams := services.NewTeamService(fake)

		require.NoError(t, teams.DeleteTeam(ctx, "missing"))
		assert.Empty(t, fake.Items(models.TeamTable))
	})

	t.Run("finds a membership across pages", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		fake.PageSize = 1
		teams := services.NewTeamService(fake)

		require.NoError(t, teams.CreateTeamUser(ctx, models.TeamUser{TeamID: "T1", UserID: "U1", Authority: models.AuthorityRead}))
		require.NoError(t, teams.CreateTeamUser(ctx, models.TeamUser{TeamID: "T1", UserID: "U2", Authority: models.AuthorityWrite}))
		require.NoError(t, teams.CreateTeamUser(ctx, models.TeamUser{TeamID: "T2", UserID: "U1", Authority: models.AuthorityOwner}))

		membership, err := teams.FindTeamUser(ctx, "T1", "U2")

		require.NoError(t, err)
		require.NotNil(t, membership)
		assert.Equal(t, models.AuthorityWrite, membership.Authority)
	})

	t.Run("find returns nil for an absent membership", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		teams := services.NewTeamService(fake)

		membership, err := teams.FindTeamUser(ctx, "T1", "ghost")

		require.NoError(t, err)
		assert.Nil(t, membership)
	})

	t.Run("membership delete removes exactly the pair", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		teams := services.NewTeamService(fake)

		require.NoError(t, teams.CreateTeamUser(ctx, models.TeamUser{TeamID: "T1", UserID: "U1", Authority: models.AuthorityRead}))
		require.NoError(t, teams.CreateTeamUser(ctx, models.TeamUser{TeamID: "T1", UserID: "U2", Authority: models.AuthorityRead}))

		require.NoError(t, teams.DeleteTeamUser(ctx, "T1", "U1"))

		remaining, err := teams.ListTeamUsersByTeamID(ctx, "T1")

		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "U2", remaining[0].UserID)
	})

	t.Run("invites are consumed by delete", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		teams := services.NewTeamService(fake)

		code, err := teams.CreateTeamInvite(ctx, models.TeamInvite{Code: "C1", TeamID: "T1", Authority: models.AuthorityWrite})

		require.NoError(t, err)

		invite, err := teams.GetTeamInviteByCode(ctx, code)

		require.NoError(t, err)
		assert.Equal(t, models.AuthorityWrite, invite.Authority)

		require.NoError(t, teams.DeleteTeamInviteByCode(ctx, code))

		_, err = teams.GetTeamInviteByCode(ctx, code)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("point lookup skips corrupt records and reports not found", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		teams := services.NewTeamService(fake)

		corrupt := models.Team{ID: "T1", Name: "broken"}.Item()
		delete(corrupt, "owner_id")
		fake.Seed(models.TeamTable, corrupt)

		_, err := teams.GetTeamByID(ctx, "T1")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
