package repository

import (
	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectPatch lists the mutable subject fields.
type SubjectPatch struct {
	Name *string
}

// SubjectRepository persists subject records.
type SubjectRepository interface {
	Create(subject *models.Subject) error
	GetByID(id uuid.UUID) (*models.Subject, error)
	Update(id uuid.UUID, patch SubjectPatch) (*models.Subject, error)
	Delete(id uuid.UUID) (*models.Subject, error)
	List(opts ListOptions) ([]models.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a subject repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *models.Subject) error {
	if subject.ID == uuid.Nil {
		subject.ID = uuid.New()
	}
	if err := r.db.Create(subject).Error; err != nil {
		return apperrors.FromDB(err, "subject")
	}
	return nil
}

func (r *subjectRepository) GetByID(id uuid.UUID) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.Preload("Teachers").First(&subject, "id = ?", id).Error
	if err != nil {
		return nil, apperrors.FromDB(err, "subject")
	}
	return &subject, nil
}

func (r *subjectRepository) Update(id uuid.UUID, patch SubjectPatch) (*models.Subject, error) {
	var subject models.Subject
	if err := r.db.First(&subject, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "subject")
	}
	if patch.Name != nil {
		if err := r.db.Model(&subject).Update("name", *patch.Name).Error; err != nil {
			return nil, apperrors.FromDB(err, "subject")
		}
	}
	return r.GetByID(id)
}

func (r *subjectRepository) Delete(id uuid.UUID) (*models.Subject, error) {
	subject, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(subject).Association("Teachers").Clear(); err != nil {
			return apperrors.FromDB(err, "subject")
		}
		if err := tx.Delete(&models.Subject{}, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "subject")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return subject, nil
}

func (r *subjectRepository) List(opts ListOptions) ([]models.Subject, error) {
	q := r.db.Model(&models.Subject{}).Preload("Teachers")
	if opts.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likeTerm(opts.Search))
	}

	var subjects []models.Subject
	if err := paginate(q, opts).Find(&subjects).Error; err != nil {
		return nil, apperrors.FromDB(err, "subject")
	}
	return subjects, nil
}
