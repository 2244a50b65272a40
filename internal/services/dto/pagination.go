package dto

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	defaultLimit = DefaultLimit
	maxLimit     = MaxLimit
)

// ConfigureLimits переопределяет лимиты из конфигурации
func ConfigureLimits(def, max int) {
	if def > 0 {
		defaultLimit = def
	}
	if max > 0 {
		maxLimit = max
	}
}

// PaginationQuery - общие query-параметры постраничного списка
type PaginationQuery struct {
	Page  int `form:"page,default=1" json:"page" validate:"min=1"`
	Limit int `form:"limit,default=10" json:"limit" validate:"min=1"`
}

// Normalize подставляет значения по умолчанию и ограничивает limit сверху
func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}

func (q PaginationQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Paginated - конверт постраничного ответа: { data: [...], meta: {...} }
type Paginated[T any] struct {
	Data []T           `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func NewPaginated[T any](data []T, page, limit int, total int64) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	return Paginated[T]{
		Data: data,
		Meta: PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: TotalPages(total, limit),
		},
	}
}

// TotalPages = ceil(total/limit), 0 для пустой выборки
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// MapSlice строит ответы из моделей
func MapSlice[M any, R any](items []M, fn func(*M) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
