package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("referenced record does not exist")
)

// Scope - фильтр списка, применяется и к выборке, и к подсчету total
type Scope func(*gorm.DB) *gorm.DB

// CRUD - общие операции над таблицей модели T.
// Как и остальные репозитории, не хранит *gorm.DB: соединение (или транзакция) передается в каждый вызов.
type CRUD[T any] struct{}

func (CRUD[T]) Create(db *gorm.DB, m *T) error {
	return translate(db.Create(m).Error)
}

func (CRUD[T]) FindByID(db *gorm.DB, id string) (*T, error) {
	var m T
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (CRUD[T]) Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	var m T
	if err := db.Model(&m).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List возвращает страницу и общее количество строк, подходящих под scope
func (CRUD[T]) List(db *gorm.DB, scope Scope, page, limit int) ([]T, int64, error) {
	var (
		items []T
		total int64
		m     T
	)

	query := db.Model(&m)
	if scope != nil {
		query = scope(query)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	offset := (page - 1) * limit
	err := query.
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update применяет только переданные колонки и возвращает обновленную строку
func (r CRUD[T]) Update(db *gorm.DB, id string, updates map[string]interface{}) (*T, error) {
	var result *T
	err := db.Transaction(func(tx *gorm.DB) error {
		m, err := r.FindByID(tx, id)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(m).Updates(updates).Error; err != nil {
				return translate(err)
			}
			if m, err = r.FindByID(tx, id); err != nil {
				return err
			}
		}
		result = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete удаляет строку и возвращает ее состояние до удаления
func (r CRUD[T]) Delete(db *gorm.DB, id string) (*T, error) {
	var deleted *T
	err := db.Transaction(func(tx *gorm.DB) error {
		m, err := r.FindByID(tx, id)
		if err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(m)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		deleted = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// translate переводит ошибки GORM (с TranslateError) в ошибки репозитория
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	default:
		return err
	}
}

func eq(column string, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

func eqBool(column string, value *bool) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

func chain(scopes ...Scope) Scope {
	return func(db *gorm.DB) *gorm.DB {
		for _, s := range scopes {
			db = s(db)
		}
		return db
	}
}
