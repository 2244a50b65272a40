package models

type UserRole string
type Gender string
type VoteType string
type MediaStatus string

const (
	UserRoleUser      UserRole = "USER"
	UserRoleModerator UserRole = "MODERATOR"
	UserRoleAdmin     UserRole = "ADMIN"

	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-binary"

	VoteTypeFree VoteType = "FREE"
	VoteTypePaid VoteType = "PAID"

	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
	MediaStatusFailed     MediaStatus = "FAILED"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary:
		return true
	}
	return false
}

func (t VoteType) IsValid() bool {
	return t == VoteTypeFree || t == VoteTypePaid
}

func (s MediaStatus) IsValid() bool {
	switch s {
	case MediaStatusProcessing, MediaStatusCompleted, MediaStatusFailed:
		return true
	}
	return false
}
