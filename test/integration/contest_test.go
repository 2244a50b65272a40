package integration_test

import (
	"net/http"
	"testing"
	"time"

	"contest_backend/internal/models"
	"contest_backend/internal/services/dto"
	"contest_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContest_ModeratorFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	modToken, _, _ := ts.LoginAs(t, models.UserRoleModerator)
	userToken, _, _ := ts.LoginAs(t, models.UserRoleUser)

	start := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	payload := map[string]any{
		"name":      "Summer Photo",
		"prizePool": "2500.50",
		"startDate": start,
		"endDate":   start.Add(72 * time.Hour),
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contests", userToken, payload)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/contests", modToken, payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var contest dto.ContestResponse
	helpers.DecodeJSON(t, body, &contest)
	assert.Equal(t, "2500.5", contest.PrizePool.String())

	// конец раньше начала
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/contests/"+contest.ID, modToken, map[string]any{
		"endDate": start.Add(-time.Hour),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/contests/"+contest.ID, modToken, map[string]any{
		"name": "Summer Photo 2026",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated dto.ContestResponse
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "Summer Photo 2026", updated.Name)
	assert.True(t, updated.EndDate.Equal(contest.EndDate))

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/contests?active=true&q=Summer", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var list page[dto.ContestResponse]
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, contest.ID, list.Data[0].ID)
}

func TestContest_CreateValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, _ := ts.LoginAs(t, models.UserRoleAdmin)

	start := time.Now().UTC()
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contests", token, map[string]any{
		"name":      "",
		"prizePool": -1,
		"startDate": start,
		"endDate":   start,
	})
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)

	details := decodeError(t, body).Error.Details
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "prizePool")
	assert.Contains(t, details, "endDate")
}

func TestContest_AwardsAndParticipations(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken, _, _ := ts.LoginAs(t, models.UserRoleAdmin)
	userToken, _, profile := ts.LoginAs(t, models.UserRoleUser)
	contest := helpers.CreateContest(t, ts.DB, "Autumn")

	// награда создается в контексте конкурса
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contests/"+contest.ID+"/awards", adminToken, map[string]any{
		"name": "Best Photography",
		"icon": "📸",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var award dto.AwardResponse
	helpers.DecodeJSON(t, body, &award)
	assert.Equal(t, contest.ID, award.ContestID)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/contests/missing/awards", adminToken, map[string]any{
		"name": "Ghost",
		"icon": "👻",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Equal(t, "Contest not found", decodeError(t, body).Error.Message)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/contests/"+contest.ID+"/awards", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var awards page[dto.AwardResponse]
	helpers.DecodeJSON(t, body, &awards)
	require.Len(t, awards.Data, 1)
	assert.Equal(t, award.ID, awards.Data[0].ID)

	// участие: повтор дает 409
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/contests/"+contest.ID+"/participations", userToken, map[string]any{
		"profileId": profile.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var participation dto.ParticipationResponse
	helpers.DecodeJSON(t, body, &participation)
	assert.Equal(t, contest.ID, participation.ContestID)
	assert.True(t, participation.IsParticipating)
	assert.False(t, participation.IsApproved)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/contests/"+contest.ID+"/participations", userToken, map[string]any{
		"profileId": profile.ID,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/participations/"+participation.ID, userToken, map[string]any{
		"isApproved": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &participation)
	assert.True(t, participation.IsApproved)
	assert.True(t, participation.IsParticipating)
}

func TestContest_DeleteThenNotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _, _ := ts.LoginAs(t, models.UserRoleAdmin)
	contest := helpers.CreateContest(t, ts.DB, "Short lived")

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/contests/"+contest.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var deleted dto.ContestResponse
	helpers.DecodeJSON(t, body, &deleted)
	assert.Equal(t, contest.ID, deleted.ID)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/contests/"+contest.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/contests/"+contest.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
