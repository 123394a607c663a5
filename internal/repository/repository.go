package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the shared data access for one entity type. Each
// entity gets one instance, parameterized with its search clause and
// the associations its reads preload. Soft-deleted rows are excluded
// everywhere through gorm.DeletedAt.
type Repository[E any] struct {
	db       *gorm.DB
	search   string
	args     int
	preloads []string
}

func New[E any](db *gorm.DB, search string, preloads ...string) *Repository[E] {
	return &Repository[E]{
		db:       db,
		search:   search,
		args:     strings.Count(search, "?"),
		preloads: preloads,
	}
}

// DB exposes the underlying connection for transaction boundaries.
func (r *Repository[E]) DB() *gorm.DB {
	return r.db
}

// WithTx rebinds the repository to a running transaction.
func (r *Repository[E]) WithTx(tx *gorm.DB) *Repository[E] {
	return &Repository[E]{db: tx, search: r.search, args: r.args, preloads: r.preloads}
}

// searchPattern turns a user term into the lower-cased LIKE argument.
// A blank term means no filter and returns "".
func searchPattern(term string) string {
	t := strings.TrimSpace(term)
	if t == "" {
		return ""
	}
	return "%" + strings.ToLower(t) + "%"
}

func (r *Repository[E]) query(term string) *gorm.DB {
	q := r.db.Model(new(E))
	if pattern := searchPattern(term); pattern != "" {
		args := make([]any, r.args)
		for i := range args {
			args[i] = pattern
		}
		q = q.Where(r.search, args...)
	}
	return q
}

func (r *Repository[E]) Count(term string) (int64, error) {
	var n int64
	err := r.query(term).Count(&n).Error
	return n, err
}

func (r *Repository[E]) List(page, size int, term string) ([]E, error) {
	rows := make([]E, 0, size)
	q := r.query(term).Order("id").Offset(page * size).Limit(size)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *Repository[E]) FindByID(id int64) (*E, error) {
	var row E
	q := r.db
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	if err := q.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create and Save write the entity's own columns only; association
// rows are managed explicitly by the services that own them.
func (r *Repository[E]) Create(e *E) error {
	return r.db.Omit(clause.Associations).Create(e).Error
}

func (r *Repository[E]) Save(e *E) error {
	return r.db.Omit(clause.Associations).Save(e).Error
}

// Delete sets deleted_at; the row stays behind but no read sees it.
func (r *Repository[E]) Delete(e *E) error {
	return r.db.Delete(e).Error
}
