package integration_test

import (
	"net/http"
	"testing"

	"contest_backend/internal/models"
	"contest_backend/internal/services/dto"
	"contest_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVote_SelfVoteRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, profile := ts.LoginAs(t, models.UserRoleUser)
	contest := helpers.CreateContest(t, ts.DB, "Self")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/votes", token, map[string]any{
		"voterId":   profile.ID,
		"voteeId":   profile.ID,
		"contestId": contest.ID,
		"type":      "FREE",
	})
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)
	assert.Contains(t, decodeError(t, body).Error.Details, "voteeId")

	var count int64
	ts.DB.Model(&models.Vote{}).Count(&count)
	assert.Zero(t, count)
}

func TestVote_InvalidType(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, voter := ts.LoginAs(t, models.UserRoleUser)
	_, votee := helpers.CreateUserWithProfile(t, ts.DB, models.UserRoleUser)
	contest := helpers.CreateContest(t, ts.DB, "Types")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/votes", token, map[string]any{
		"voterId":   voter.ID,
		"voteeId":   votee.ID,
		"contestId": contest.ID,
		"type":      "GOLD",
	})
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)
	assert.Equal(t, "Must be one of: FREE, PAID", decodeError(t, body).Error.Details["type"])
}

func TestVote_Leaderboard(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, voter := ts.LoginAs(t, models.UserRoleUser)
	_, second := helpers.CreateUserWithProfile(t, ts.DB, models.UserRoleUser)
	_, leader := helpers.CreateUserWithProfile(t, ts.DB, models.UserRoleUser)
	contest := helpers.CreateContest(t, ts.DB, "Board")

	cast := func(voterID, voteeID, voteType string) {
		t.Helper()
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/votes", token, map[string]any{
			"voterId":   voterID,
			"voteeId":   voteeID,
			"contestId": contest.ID,
			"type":      voteType,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}
	cast(voter.ID, leader.ID, "FREE")
	cast(second.ID, leader.ID, "PAID")
	cast(voter.ID, second.ID, "FREE")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/contests/"+contest.ID+"/leaderboard", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var board page[dto.LeaderboardEntry]
	helpers.DecodeJSON(t, body, &board)
	require.Len(t, board.Data, 2)
	assert.Equal(t, leader.ID, board.Data[0].ProfileID)
	assert.Equal(t, int64(2), board.Data[0].TotalVotes)
	assert.Equal(t, int64(1), board.Data[0].FreeVotes)
	assert.Equal(t, int64(1), board.Data[0].PaidVotes)
	assert.Equal(t, int64(2), board.Meta.Total)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/contests/missing/leaderboard", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestVote_UpdateChangesTypeOnly(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, voter := ts.LoginAs(t, models.UserRoleUser)
	_, votee := helpers.CreateUserWithProfile(t, ts.DB, models.UserRoleUser)
	contest := helpers.CreateContest(t, ts.DB, "Update")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/votes", token, map[string]any{
		"voterId":   voter.ID,
		"voteeId":   votee.ID,
		"contestId": contest.ID,
		"type":      "FREE",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var vote dto.VoteResponse
	helpers.DecodeJSON(t, body, &vote)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/votes/"+vote.ID, token, map[string]any{
		"type":    "PAID",
		"voterId": votee.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated dto.VoteResponse
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "PAID", string(updated.Type))
	assert.Equal(t, voter.ID, updated.VoterID)
}
