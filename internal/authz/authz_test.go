package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/authz"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/services"
	"github.com/inkwell-dev/inkwell/internal/store/storetest"
)

func newResolver(fake *storetest.Fake) *authz.Resolver {
	return authz.NewResolver(services.NewTeamService(fake), services.NewProjectService(fake))
}

func TestPermitMonotonicity(t *testing.T) {
	authorities := []models.Authority{
		models.AuthorityOwner,
		models.AuthorityAdmin,
		models.AuthorityWrite,
		models.AuthorityRead,
	}

	for _, held := range authorities {
		for _, required := range authorities {
			want := held.Rank() >= required.Rank()
			assert.Equal(t, want, authz.Permit(held, required), "held=%s required=%s", held, required)
		}
	}

	assert.True(t, authz.Permit(models.AuthorityWrite, authz.ActionWrite.Required()))
	assert.False(t, authz.Permit(models.AuthorityRead, authz.ActionWrite.Required()))
}

func TestResolveProject(t *testing.T) {
	ctx := context.Background()

	seed := func(authority models.Authority) *storetest.Fake {
		fake := storetest.New(storetest.EntityKeys())
		fake.Seed(models.ProjectTable, models.Project{ID: "P1", TeamID: "T1", Name: "erd"}.Item())
		fake.Seed(models.TeamUserTable, models.TeamUser{TeamID: "T1", UserID: "U1", Authority: authority}.Item())
		return fake
	}

	t.Run("permits a member at the threshold", func(t *testing.T) {
		decision := newResolver(seed(models.AuthorityWrite)).ResolveProject(ctx, "U1", "P1", authz.ActionWrite)

		require.True(t, decision.Permitted)
		assert.Equal(t, authz.ReasonPermitted, decision.Reason)
		assert.Equal(t, "T1", decision.TeamID)
		assert.Equal(t, models.AuthorityWrite, decision.Authority)
	})

	t.Run("permits above the threshold", func(t *testing.T) {
		for _, authority := range []models.Authority{models.AuthorityOwner, models.AuthorityAdmin} {
			decision := newResolver(seed(authority)).ResolveProject(ctx, "U1", "P1", authz.ActionWrite)

			assert.True(t, decision.Permitted, "authority=%s", authority)
		}
	})

	t.Run("denies below the threshold", func(t *testing.T) {
		decision := newResolver(seed(models.AuthorityRead)).ResolveProject(ctx, "U1", "P1", authz.ActionWrite)

		require.False(t, decision.Permitted)
		assert.Equal(t, authz.ReasonInsufficientAuthority, decision.Reason)
		assert.Equal(t, models.AuthorityRead, decision.Authority)
	})

	t.Run("denies a non-member, never permits", func(t *testing.T) {
		decision := newResolver(seed(models.AuthorityOwner)).ResolveProject(ctx, "stranger", "P1", authz.ActionRead)

		require.False(t, decision.Permitted)
		assert.Equal(t, authz.ReasonNotMember, decision.Reason)
	})

	t.Run("denies when the project does not exist", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())

		decision := newResolver(fake).ResolveProject(ctx, "U1", "ghost", authz.ActionWrite)

		require.False(t, decision.Permitted)
		assert.Equal(t, authz.ReasonProjectNotFound, decision.Reason)
	})

	t.Run("denies transiently on a store failure", func(t *testing.T) {
		fake := seed(models.AuthorityOwner)
		fake.Err = errors.New("connection reset")

		decision := newResolver(fake).ResolveProject(ctx, "U1", "P1", authz.ActionWrite)

		require.False(t, decision.Permitted)
		assert.Equal(t, authz.ReasonTransient, decision.Reason)
		assert.Error(t, decision.Err)
	})
}
