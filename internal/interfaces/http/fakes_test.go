package http_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/tablesprint/catalog-api/internal/domain"
	"github.com/tablesprint/catalog-api/internal/domain/entity"
)

// Repositorios en memoria que emulan las restricciones de la DB:
// UNIQUE(email), NOT NULL y el enum catalog_status.

var (
	errStorage = errors.New(`invalid input value for enum catalog_status`)
	errNotNull = errors.New(`null value in column violates not-null constraint`)
)

func validStatus(s string) bool {
	return s == entity.StatusActive || s == entity.StatusInactive
}

type memUsers struct {
	mu     sync.Mutex
	byMail map[string]entity.User
	nextID int64
	err    error
}

func newMemUsers() *memUsers { return &memUsers{byMail: map[string]entity.User{}} }

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byMail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.byMail[u.Email] = *u
	return nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byMail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type memCategories struct {
	mu     sync.Mutex
	rows   map[int64]entity.Category
	nextID int64
	err    error
}

func newMemCategories() *memCategories { return &memCategories{rows: map[int64]entity.Category{}} }

func (r *memCategories) List(context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Category, 0, len(r.rows))
	for _, c := range r.rows {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCategories) Create(_ context.Context, c *entity.Category) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	if c.Name == nil || c.Sequence == nil {
		return 0, errNotNull
	}
	if !validStatus(c.Status) {
		return 0, errStorage
	}
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	r.rows[c.ID] = *c
	return c.ID, nil
}

func (r *memCategories) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validStatus(c.Status) {
		return errStorage
	}
	if old, ok := r.rows[c.ID]; ok {
		if c.Name == nil || c.Sequence == nil {
			return errNotNull
		}
		c.CreatedAt = old.CreatedAt
		r.rows[c.ID] = *c
	}
	return nil
}

func (r *memCategories) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type memSubcategories struct {
	mu     sync.Mutex
	rows   map[int64]entity.Subcategory
	nextID int64
}

func newMemSubcategories() *memSubcategories {
	return &memSubcategories{rows: map[int64]entity.Subcategory{}}
}

func (r *memSubcategories) List(context.Context) ([]*entity.Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Subcategory, 0, len(r.rows))
	for _, s := range r.rows {
		s := s
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memSubcategories) Create(_ context.Context, s *entity.Subcategory) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.Subname == nil || s.Name == nil || s.Sequence == nil {
		return 0, errNotNull
	}
	if !validStatus(s.Status) {
		return 0, errStorage
	}
	r.nextID++
	s.ID = r.nextID
	r.rows[s.ID] = *s
	return s.ID, nil
}

func (r *memSubcategories) Update(_ context.Context, s *entity.Subcategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validStatus(s.Status) {
		return errStorage
	}
	if _, ok := r.rows[s.ID]; ok {
		if s.Subname == nil || s.Name == nil || s.Sequence == nil {
			return errNotNull
		}
		r.rows[s.ID] = *s
	}
	return nil
}

func (r *memSubcategories) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type memProducts struct {
	mu     sync.Mutex
	rows   map[int64]entity.Product
	nextID int64
}

func newMemProducts() *memProducts { return &memProducts{rows: map[int64]entity.Product{}} }

func (r *memProducts) List(context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.rows))
	for _, p := range r.rows {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProducts) Create(_ context.Context, p *entity.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.Proname == nil || p.Subname == nil || p.Name == nil || p.Sequence == nil {
		return 0, errNotNull
	}
	if !validStatus(p.Status) {
		return 0, errStorage
	}
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = *p
	return p.ID, nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validStatus(p.Status) {
		return errStorage
	}
	if _, ok := r.rows[p.ID]; ok {
		if p.Proname == nil || p.Subname == nil || p.Name == nil || p.Sequence == nil {
			return errNotNull
		}
		r.rows[p.ID] = *p
	}
	return nil
}

func (r *memProducts) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}
