package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
)

// MaxPageSize bounds the `first` argument of list queries. Requests asking
// for more are clamped to this value.
const MaxPageSize = 100

// ListOptions narrows a list query: a free-text search term, optional exact
// filters, then skip/first pagination applied in that order. Gender and
// Active apply to person kinds; ClassRoomID applies to students only.
type ListOptions struct {
	Search      string
	Gender      *models.Gender
	Active      *bool
	ClassRoomID *uuid.UUID
	Skip        int
	First       int
}

// filterPerson applies the exact-match filters shared by the person kinds.
func filterPerson(q *gorm.DB, opts ListOptions) *gorm.DB {
	if opts.Gender != nil {
		q = q.Where("gender = ?", *opts.Gender)
	}
	if opts.Active != nil {
		q = q.Where("active = ?", *opts.Active)
	}
	return q
}

// paginate applies skip/first on top of insertion ordering.
func paginate(q *gorm.DB, opts ListOptions) *gorm.DB {
	q = q.Order("created_at").Order("id")
	if opts.Skip > 0 {
		q = q.Offset(opts.Skip)
	}
	first := opts.First
	if first <= 0 || first > MaxPageSize {
		first = MaxPageSize
	}
	return q.Limit(first)
}

// likeTerm prepares a case-insensitive containment pattern.
func likeTerm(search string) string {
	return "%" + strings.ToLower(search) + "%"
}
