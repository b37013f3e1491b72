package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/store/storetest"
)

func doJSON(server *gin.Engine, method, path, authorization string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func TestTeamLifecycle(t *testing.T) {
	t.Run("creating a team records the owner membership", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		fake.Seed(models.UserTable, models.User{ID: "U1", Email: "u1@example.com", Nickname: "u1", PasswordHash: "x"}.Item())
		server := newServer(t, fake)

		recorder := doJSON(server, http.MethodPost, "/team", bearer(t, "U1", "u1@example.com"),
			map[string]any{"name": "Platform", "description": "infra"})

		require.Equal(t, http.StatusCreated, recorder.Code)

		var response struct {
			TeamID string `json:"team_id"`
		}

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

		memberships := fake.Items(models.TeamUserTable)

		require.Len(t, memberships, 1)

		membership, ok := models.TeamUserFromItem(memberships[0])

		require.True(t, ok)
		assert.Equal(t, response.TeamID, membership.TeamID)
		assert.Equal(t, "U1", membership.UserID)
		assert.Equal(t, models.AuthorityOwner, membership.Authority)
	})

	t.Run("invite is minted by an admin and consumed on acceptance", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		seedWorkspace(fake, models.AuthorityAdmin)
		fake.Seed(models.UserTable, models.User{ID: "U2", Email: "u2@example.com", Nickname: "u2", PasswordHash: "x"}.Item())
		server := newServer(t, fake)

		recorder := doJSON(server, http.MethodPost, "/team/T1/invite", bearer(t, "U1", "u1@example.com"),
			map[string]any{"authority": "write"})

		require.Equal(t, http.StatusCreated, recorder.Code)

		var minted struct {
			Code string `json:"code"`
		}

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &minted))
		require.NotEmpty(t, minted.Code)

		recorder = doJSON(server, http.MethodPost, "/invite/accept", bearer(t, "U2", "u2@example.com"),
			map[string]any{"code": minted.Code})

		require.Equal(t, http.StatusOK, recorder.Code)

		// The invite is gone and U2 holds the granted authority.
		assert.Empty(t, fake.Items(models.TeamInviteTable))

		memberships := fake.Items(models.TeamUserTable)
		require.Len(t, memberships, 2)

		joined, ok := models.TeamUserFromItem(memberships[1])

		require.True(t, ok)
		assert.Equal(t, "U2", joined.UserID)
		assert.Equal(t, models.AuthorityWrite, joined.Authority)
	})

	t.Run("a write member cannot mint invites", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		seedWorkspace(fake, models.AuthorityWrite)
		server := newServer(t, fake)

		recorder := doJSON(server, http.MethodPost, "/team/T1/invite", bearer(t, "U1", "u1@example.com"),
			map[string]any{"authority": "read"})

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Empty(t, fake.Items(models.TeamInviteTable))
	})

	t.Run("accepting an unknown code answers 404", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		seedWorkspace(fake, models.AuthorityWrite)
		server := newServer(t, fake)

		recorder := doJSON(server, http.MethodPost, "/invite/accept", bearer(t, "U1", "u1@example.com"),
			map[string]any{"code": "ghost"})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("an existing member cannot consume an invite", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		seedWorkspace(fake, models.AuthorityRead)
		fake.Seed(models.TeamInviteTable, models.TeamInvite{Code: "C1", TeamID: "T1", Authority: models.AuthorityOwner}.Item())
		server := newServer(t, fake)

		recorder := doJSON(server, http.MethodPost, "/invite/accept", bearer(t, "U1", "u1@example.com"),
			map[string]any{"code": "C1"})

		assert.Equal(t, http.StatusConflict, recorder.Code)

		// The caller keeps the read membership; the invite survives.
		require.Len(t, fake.Items(models.TeamInviteTable), 1)

		memberships := fake.Items(models.TeamUserTable)
		require.Len(t, memberships, 1)

		membership, ok := models.TeamUserFromItem(memberships[0])

		require.True(t, ok)
		assert.Equal(t, models.AuthorityRead, membership.Authority)
	})

	t.Run("only admins delete teams", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		seedWorkspace(fake, models.AuthorityWrite)
		server := newServer(t, fake)

		recorder := doJSON(server, http.MethodDelete, "/team/T1", bearer(t, "U1", "u1@example.com"), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		require.Len(t, fake.Items(models.TeamTable), 1)
	})

	t.Run("listing my teams follows memberships", func(t *testing.T) {
		fake := storetest.New(storetest.EntityKeys())
		seedWorkspace(fake, models.AuthorityRead)
		fake.Seed(models.TeamTable, models.Team{ID: "T2", Name: "Design", OwnerID: "U9"}.Item())
		fake.Seed(models.TeamUserTable, models.TeamUser{TeamID: "T2", UserID: "U1", Authority: models.AuthorityWrite}.Item())
		// Dangling membership: its team was deleted.
		fake.Seed(models.TeamUserTable, models.TeamUser{TeamID: "T9", UserID: "U1", Authority: models.AuthorityRead}.Item())
		server := newServer(t, fake)

		recorder := doJSON(server, http.MethodGet, "/team", bearer(t, "U1", "u1@example.com"), nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var teams []models.Team

		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &teams))
		assert.Len(t, teams, 2)
	})
}
