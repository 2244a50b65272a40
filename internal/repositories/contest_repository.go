package repositories

import (
	"strings"
	"time"

	"contest_backend/internal/models"

	"gorm.io/gorm"
)

// likeEscaper экранирует спецсимволы LIKE, чтобы q искался как подстрока
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ContestFilter struct {
	Q      string
	Active *bool
	Now    time.Time
}

func (f ContestFilter) Scope() Scope {
	return func(db *gorm.DB) *gorm.DB {
		if q := strings.TrimSpace(f.Q); q != "" {
			db = db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(q))+"%")
		}
		if f.Active != nil {
			if *f.Active {
				db = db.Where("start_date <= ? AND end_date > ?", f.Now, f.Now)
			} else {
				db = db.Where("(start_date > ? OR end_date <= ?)", f.Now, f.Now)
			}
		}
		return db
	}
}

type ContestRepository interface {
	Create(db *gorm.DB, contest *models.Contest) error
	FindByID(db *gorm.DB, id string) (*models.Contest, error)
	Exists(db *gorm.DB, id string) (bool, error)
	List(db *gorm.DB, scope Scope, page, limit int) ([]models.Contest, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) (*models.Contest, error)
	Delete(db *gorm.DB, id string) (*models.Contest, error)
}

type ContestRepositoryImpl struct {
	CRUD[models.Contest]
}

func NewContestRepository() ContestRepository {
	return &ContestRepositoryImpl{}
}

// ---------------- Award ----------------

type AwardFilter struct {
	ContestID string
}

func (f AwardFilter) Scope() Scope {
	return eq("contest_id", f.ContestID)
}

type AwardRepository interface {
	Create(db *gorm.DB, award *models.Award) error
	FindByID(db *gorm.DB, id string) (*models.Award, error)
	List(db *gorm.DB, scope Scope, page, limit int) ([]models.Award, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) (*models.Award, error)
	Delete(db *gorm.DB, id string) (*models.Award, error)
}

type AwardRepositoryImpl struct {
	CRUD[models.Award]
}

func NewAwardRepository() AwardRepository {
	return &AwardRepositoryImpl{}
}

// ---------------- Participation ----------------

type ParticipationFilter struct {
	ContestID       string
	ProfileID       string
	IsApproved      *bool
	IsParticipating *bool
}

func (f ParticipationFilter) Scope() Scope {
	return chain(
		eq("contest_id", f.ContestID),
		eq("profile_id", f.ProfileID),
		eqBool("is_approved", f.IsApproved),
		eqBool("is_participating", f.IsParticipating),
	)
}

type ParticipationRepository interface {
	Create(db *gorm.DB, p *models.ContestParticipation) error
	FindByID(db *gorm.DB, id string) (*models.ContestParticipation, error)
	List(db *gorm.DB, scope Scope, page, limit int) ([]models.ContestParticipation, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) (*models.ContestParticipation, error)
	Delete(db *gorm.DB, id string) (*models.ContestParticipation, error)
}

type ParticipationRepositoryImpl struct {
	CRUD[models.ContestParticipation]
}

func NewParticipationRepository() ParticipationRepository {
	return &ParticipationRepositoryImpl{}
}
