package validator

import (
	"testing"
	"time"

	"contest_backend/internal/services/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return vErr.Errors
}

func TestVoteRejectsSelfVote(t *testing.T) {
	v := New()

	errs := validationErrors(t, v.Validate(&dto.CreateVoteRequest{
		VoterID:   "p1",
		VoteeID:   "p1",
		ContestID: "c1",
		Type:      "FREE",
	}))
	assert.Equal(t, "Must differ from voterId", errs["voteeId"])

	assert.NoError(t, v.Validate(&dto.CreateVoteRequest{
		VoterID:   "p1",
		VoteeID:   "p2",
		ContestID: "c1",
		Type:      "PAID",
	}))
}

func TestReportsEveryViolatingField(t *testing.T) {
	v := New()

	errs := validationErrors(t, v.Validate(&dto.CreateVoteRequest{Type: "GOLD"}))
	assert.Contains(t, errs, "voterId")
	assert.Contains(t, errs, "voteeId")
	assert.Contains(t, errs, "contestId")
	assert.Equal(t, "Must be one of: FREE, PAID", errs["type"])
}

func TestNotificationRequiresMessage(t *testing.T) {
	v := New()

	errs := validationErrors(t, v.Validate(&dto.CreateNotificationRequest{UserID: "u1"}))
	assert.Equal(t, "This field is required", errs["message"])

	assert.NoError(t, v.Validate(&dto.CreateNotificationRequest{UserID: "u1", Message: "hi"}))
}

func TestContestDatesAndPrizePool(t *testing.T) {
	v := New()
	start := time.Now()

	errs := validationErrors(t, v.Validate(&dto.CreateContestRequest{
		Name:      "Spring",
		PrizePool: decimal.NewFromInt(-5),
		StartDate: start,
		EndDate:   start.Add(-time.Hour),
	}))
	assert.Equal(t, "Must be at least 0", errs["prizePool"])
	assert.Equal(t, "Must be after startDate", errs["endDate"])

	assert.NoError(t, v.Validate(&dto.CreateContestRequest{
		Name:      "Spring",
		PrizePool: decimal.RequireFromString("1500.50"),
		StartDate: start,
		EndDate:   start.Add(24 * time.Hour),
	}))
}

func TestUpdateShapesAreOptional(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.UpdateContestRequest{}))
	assert.NoError(t, v.Validate(&dto.UpdateProfileRequest{}))

	bad := "Robot"
	errs := validationErrors(t, v.Validate(&dto.UpdateProfileRequest{Gender: &bad}))
	assert.Contains(t, errs, "gender")

	empty := ""
	errs = validationErrors(t, v.Validate(&dto.UpdateAwardRequest{Name: &empty}))
	assert.Contains(t, errs, "name")
}

func TestPaginationQueryFieldNames(t *testing.T) {
	v := New()

	errs := validationErrors(t, v.Validate(&dto.ListNotificationsQuery{
		PaginationQuery: dto.PaginationQuery{Page: 0, Limit: 0},
	}))
	assert.Contains(t, errs, "page")
	assert.Contains(t, errs, "limit")
}

func TestCustomEnums(t *testing.T) {
	v := New()

	errs := validationErrors(t, v.Validate(&dto.CreateUserRequest{
		Email: "not-an-email",
		Name:  "Ann",
		Role:  "ROOT",
	}))
	assert.Equal(t, "Must be a valid email address", errs["email"])
	assert.Equal(t, "Must be one of: USER, MODERATOR, ADMIN", errs["role"])

	errs = validationErrors(t, v.Validate(&dto.ListMediaQuery{
		PaginationQuery: dto.PaginationQuery{Page: 1, Limit: 10},
		Status:          "DONE",
	}))
	assert.Contains(t, errs, "status")
}
