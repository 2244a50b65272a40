package routes

import (
	"net/http"

	"contest_backend/internal/auth"
	"contest_backend/internal/handlers"
	"contest_backend/internal/openapi"
	"contest_backend/internal/services/dto"
)

func contestRoutes(h *handlers.ContestHandler) []openapi.Route {
	tags := []string{"Contests"}
	return []openapi.Route{
		{
			Method:      http.MethodGet,
			Path:        "/contests",
			Summary:     "Get Contests",
			Description: "Get paginated list of contests. `q` filters by name, `active` by the current date.",
			Tags:        tags,
			Query:       dto.ListContestsQuery{},
			Responses:   listResponses("Paginated contests", dto.Paginated[dto.ContestResponse]{}),
			Handler:     h.ListContests,
		},
		{
			Method:      http.MethodPost,
			Path:        "/contests",
			Summary:     "Create Contest",
			Description: "Create a new contest. The end date must be after the start date.",
			Tags:        tags,
			Body:        dto.CreateContestRequest{},
			Responses:   createResponses("Created contest", dto.ContestResponse{}),
			Handler:     h.CreateContest,
			Permission:  auth.PermContestsWrite,
		},
		{
			Method:      http.MethodGet,
			Path:        "/contests/{id}",
			Summary:     "Get Contest",
			Description: "Get a specific contest by ID.",
			Tags:        tags,
			Params:      idParam("Contest"),
			Responses:   oneResponses("Contest", "Contest", dto.ContestResponse{}),
			Handler:     h.GetContest,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/contests/{id}",
			Summary:     "Update Contest",
			Description: "Update a contest by ID.",
			Tags:        tags,
			Params:      idParam("Contest"),
			Body:        dto.UpdateContestRequest{},
			Responses:   oneResponses("Updated contest", "Contest", dto.ContestResponse{}),
			Handler:     h.UpdateContest,
			Permission:  auth.PermContestsWrite,
		},
		{
			Method:      http.MethodDelete,
			Path:        "/contests/{id}",
			Summary:     "Delete Contest",
			Description: "Delete a contest by ID together with its awards and participations.",
			Tags:        tags,
			Params:      idParam("Contest"),
			Responses:   oneResponses("Deleted contest", "Contest", dto.ContestResponse{}),
			Handler:     h.DeleteContest,
			Permission:  auth.PermContestsWrite,
		},
		{
			Method:      http.MethodGet,
			Path:        "/contests/{id}/leaderboard",
			Summary:     "Get Contest Leaderboard",
			Description: "Votes received per profile in the contest, most voted first.",
			Tags:        tags,
			Params:      idParam("Contest"),
			Query:       dto.PaginationQuery{},
			Responses:   oneResponses("Leaderboard", "Contest", dto.Paginated[dto.LeaderboardEntry]{}),
			Handler:     h.GetLeaderboard,
		},
	}
}

func awardRoutes(h *handlers.AwardHandler) []openapi.Route {
	tags := []string{"Awards"}
	contestParam := map[string]string{"contestId": "Contest ID"}
	return []openapi.Route{
		{
			Method:      http.MethodGet,
			Path:        "/awards",
			Summary:     "Get Awards",
			Description: "Get paginated list of awards.",
			Tags:        tags,
			Query:       dto.ListAwardsQuery{},
			Responses:   listResponses("Paginated awards", dto.Paginated[dto.AwardResponse]{}),
			Handler:     h.ListAwards,
		},
		{
			Method:      http.MethodGet,
			Path:        "/contests/{contestId}/awards",
			Summary:     "Get Contest Awards",
			Description: "Get paginated list of awards of a contest.",
			Tags:        tags,
			Params:      contestParam,
			Query:       dto.ListAwardsQuery{},
			Responses:   listResponses("Paginated awards", dto.Paginated[dto.AwardResponse]{}),
			Handler:     h.ListContestAwards,
		},
		{
			Method:      http.MethodPost,
			Path:        "/contests/{contestId}/awards",
			Summary:     "Create Award",
			Description: "Create a new award for a contest.",
			Tags:        tags,
			Params:      contestParam,
			Body:        dto.CreateAwardRequest{},
			Responses:   createResponses("Created award", dto.AwardResponse{}, http.StatusNotFound),
			Handler:     h.CreateAward,
			Permission:  auth.PermContestsWrite,
		},
		{
			Method:      http.MethodGet,
			Path:        "/awards/{id}",
			Summary:     "Get Award",
			Description: "Get a specific award by ID.",
			Tags:        tags,
			Params:      idParam("Award"),
			Responses:   oneResponses("Award", "Award", dto.AwardResponse{}),
			Handler:     h.GetAward,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/awards/{id}",
			Summary:     "Update Award",
			Description: "Update an award by ID.",
			Tags:        tags,
			Params:      idParam("Award"),
			Body:        dto.UpdateAwardRequest{},
			Responses:   oneResponses("Updated award", "Award", dto.AwardResponse{}),
			Handler:     h.UpdateAward,
			Permission:  auth.PermContestsWrite,
		},
		{
			Method:      http.MethodDelete,
			Path:        "/awards/{id}",
			Summary:     "Delete Award",
			Description: "Delete an award by ID.",
			Tags:        tags,
			Params:      idParam("Award"),
			Responses:   oneResponses("Deleted award", "Award", dto.AwardResponse{}),
			Handler:     h.DeleteAward,
			Permission:  auth.PermContestsWrite,
		},
	}
}

func participationRoutes(h *handlers.ParticipationHandler) []openapi.Route {
	tags := []string{"Participations"}
	return []openapi.Route{
		{
			Method:      http.MethodGet,
			Path:        "/participations",
			Summary:     "Get Participations",
			Description: "Get paginated list of contest participations.",
			Tags:        tags,
			Query:       dto.ListParticipationsQuery{},
			Responses:   listResponses("Paginated participations", dto.Paginated[dto.ParticipationResponse]{}),
			Handler:     h.ListParticipations,
		},
		{
			Method:      http.MethodPost,
			Path:        "/contests/{contestId}/participations",
			Summary:     "Join Contest",
			Description: "Register a profile as a participant of the contest.",
			Tags:        tags,
			Params:      map[string]string{"contestId": "Contest ID"},
			Body:        dto.CreateParticipationRequest{},
			Responses:   createResponses("Created participation", dto.ParticipationResponse{}, http.StatusNotFound, http.StatusConflict),
			Handler:     h.CreateParticipation,
		},
		{
			Method:      http.MethodGet,
			Path:        "/participations/{id}",
			Summary:     "Get Participation",
			Description: "Get a specific participation by ID.",
			Tags:        tags,
			Params:      idParam("Participation"),
			Responses:   oneResponses("Participation", "Participation", dto.ParticipationResponse{}),
			Handler:     h.GetParticipation,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/participations/{id}",
			Summary:     "Update Participation",
			Description: "Update a participation by ID (approval, cover image).",
			Tags:        tags,
			Params:      idParam("Participation"),
			Body:        dto.UpdateParticipationRequest{},
			Responses:   oneResponses("Updated participation", "Participation", dto.ParticipationResponse{}),
			Handler:     h.UpdateParticipation,
		},
		{
			Method:      http.MethodDelete,
			Path:        "/participations/{id}",
			Summary:     "Delete Participation",
			Description: "Delete a participation by ID.",
			Tags:        tags,
			Params:      idParam("Participation"),
			Responses:   oneResponses("Deleted participation", "Participation", dto.ParticipationResponse{}),
			Handler:     h.DeleteParticipation,
		},
	}
}

func voteRoutes(h *handlers.VoteHandler) []openapi.Route {
	tags := []string{"Votes"}
	return []openapi.Route{
		{
			Method:      http.MethodGet,
			Path:        "/votes",
			Summary:     "Get Votes",
			Description: "Get paginated list of votes.",
			Tags:        tags,
			Query:       dto.ListVotesQuery{},
			Responses:   listResponses("Paginated votes", dto.Paginated[dto.VoteResponse]{}),
			Handler:     h.ListVotes,
		},
		{
			Method:      http.MethodPost,
			Path:        "/votes",
			Summary:     "Create Vote",
			Description: "Cast a vote for a profile in a contest. A profile cannot vote for itself.",
			Tags:        tags,
			Body:        dto.CreateVoteRequest{},
			Responses:   createResponses("Created vote", dto.VoteResponse{}, http.StatusNotFound),
			Handler:     h.CreateVote,
		},
		{
			Method:      http.MethodGet,
			Path:        "/votes/{id}",
			Summary:     "Get Vote",
			Description: "Get a specific vote by ID.",
			Tags:        tags,
			Params:      idParam("Vote"),
			Responses:   oneResponses("Vote", "Vote", dto.VoteResponse{}),
			Handler:     h.GetVote,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/votes/{id}",
			Summary:     "Update Vote",
			Description: "Change the type of a vote.",
			Tags:        tags,
			Params:      idParam("Vote"),
			Body:        dto.UpdateVoteRequest{},
			Responses:   oneResponses("Updated vote", "Vote", dto.VoteResponse{}),
			Handler:     h.UpdateVote,
		},
		{
			Method:      http.MethodDelete,
			Path:        "/votes/{id}",
			Summary:     "Delete Vote",
			Description: "Delete a vote by ID.",
			Tags:        tags,
			Params:      idParam("Vote"),
			Responses:   oneResponses("Deleted vote", "Vote", dto.VoteResponse{}),
			Handler:     h.DeleteVote,
		},
	}
}
