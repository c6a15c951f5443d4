package repository

import (
	"time"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuardianPatch lists the mutable guardian fields; only non-nil fields are
// written on update.
type GuardianPatch struct {
	FullName   *string
	Phone      *string
	Email      *string
	IDNumber   *string
	Religion   *string
	DOB        *time.Time
	Gender     *models.Gender
	Profession *string
	Active     *bool
}

// GuardianRepository persists guardian records.
type GuardianRepository interface {
	Create(guardian *models.Guardian) error
	GetByID(id uuid.UUID) (*models.Guardian, error)
	Update(id uuid.UUID, patch GuardianPatch) (*models.Guardian, error)
	Delete(id uuid.UUID) (*models.Guardian, error)
	List(opts ListOptions) ([]models.Guardian, error)
}

type guardianRepository struct {
	db *gorm.DB
}

// NewGuardianRepository creates a guardian repository.
func NewGuardianRepository(db *gorm.DB) GuardianRepository {
	return &guardianRepository{db: db}
}

func (r *guardianRepository) Create(guardian *models.Guardian) error {
	if guardian.ID == uuid.Nil {
		guardian.ID = uuid.New()
	}
	if err := r.db.Create(guardian).Error; err != nil {
		return apperrors.FromDB(err, "guardian")
	}
	return nil
}

func (r *guardianRepository) GetByID(id uuid.UUID) (*models.Guardian, error) {
	var guardian models.Guardian
	err := r.db.Preload("Students").First(&guardian, "id = ?", id).Error
	if err != nil {
		return nil, apperrors.FromDB(err, "guardian")
	}
	return &guardian, nil
}

func (r *guardianRepository) Update(id uuid.UUID, patch GuardianPatch) (*models.Guardian, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var guardian models.Guardian
		if err := tx.First(&guardian, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "guardian")
		}

		fields := map[string]interface{}{}
		if patch.FullName != nil {
			fields["full_name"] = *patch.FullName
		}
		if patch.Phone != nil {
			fields["phone"] = *patch.Phone
		}
		if patch.Email != nil {
			fields["email"] = *patch.Email
		}
		if patch.IDNumber != nil {
			fields["id_number"] = *patch.IDNumber
		}
		if patch.Religion != nil {
			fields["religion"] = *patch.Religion
		}
		if patch.DOB != nil {
			fields["dob"] = *patch.DOB
		}
		if patch.Gender != nil {
			fields["gender"] = *patch.Gender
		}
		if patch.Profession != nil {
			fields["profession"] = *patch.Profession
		}
		if patch.Active != nil {
			fields["active"] = *patch.Active
		}
		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&guardian).Updates(fields).Error; err != nil {
			return apperrors.FromDB(err, "guardian")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *guardianRepository) Delete(id uuid.UUID) (*models.Guardian, error) {
	guardian, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	// Clearing associations drops the join rows; linked students stay.
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(guardian).Association("Students").Clear(); err != nil {
			return apperrors.FromDB(err, "guardian")
		}
		if err := tx.Delete(&models.Guardian{}, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "guardian")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return guardian, nil
}

func (r *guardianRepository) List(opts ListOptions) ([]models.Guardian, error) {
	q := r.db.Model(&models.Guardian{}).Preload("Students")
	if opts.Search != "" {
		like := likeTerm(opts.Search)
		q = q.Where(
			`LOWER(full_name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?
			OR LOWER(gender) LIKE ? OR LOWER(id_number) LIKE ?
			OR LOWER(profession) LIKE ? OR LOWER(CAST(dob AS TEXT)) LIKE ?`,
			like, like, like, like, like, like, like,
		)
	}
	q = filterPerson(q, opts)

	var guardians []models.Guardian
	if err := paginate(q, opts).Find(&guardians).Error; err != nil {
		return nil, apperrors.FromDB(err, "guardian")
	}
	return guardians, nil
}
