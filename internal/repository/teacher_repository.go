package repository

import (
	"time"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherPatch lists the mutable teacher fields.
type TeacherPatch struct {
	FullName *string
	Phone    *string
	Email    *string
	IDNumber *string
	Religion *string
	Gender   *models.Gender
	DOB      *time.Time
	JoinedAt *time.Time
	Active   *bool
}

// TeacherRepository persists teacher records and their subject links.
type TeacherRepository interface {
	// Create stores the teacher and links the given subjects. An unknown
	// subject id fails the whole mutation.
	Create(teacher *models.Teacher, subjectIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Teacher, error)
	// Update patches non-nil fields and appends the given subjects to the
	// existing set.
	Update(id uuid.UUID, patch TeacherPatch, subjectIDs []uuid.UUID) (*models.Teacher, error)
	Delete(id uuid.UUID) (*models.Teacher, error)
	List(opts ListOptions) ([]models.Teacher, error)
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository creates a teacher repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(teacher *models.Teacher, subjectIDs []uuid.UUID) error {
	if teacher.ID == uuid.Nil {
		teacher.ID = uuid.New()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(teacher).Error; err != nil {
			return apperrors.FromDB(err, "teacher")
		}
		return appendSubjects(tx, teacher, subjectIDs)
	})
	if err != nil {
		return err
	}
	reloaded, err := r.GetByID(teacher.ID)
	if err != nil {
		return err
	}
	*teacher = *reloaded
	return nil
}

func (r *teacherRepository) GetByID(id uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.Preload("Subjects").First(&teacher, "id = ?", id).Error
	if err != nil {
		return nil, apperrors.FromDB(err, "teacher")
	}
	return &teacher, nil
}

func (r *teacherRepository) Update(id uuid.UUID, patch TeacherPatch, subjectIDs []uuid.UUID) (*models.Teacher, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var teacher models.Teacher
		if err := tx.First(&teacher, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "teacher")
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
		if patch.Gender != nil {
			fields["gender"] = *patch.Gender
		}
		if patch.DOB != nil {
			fields["dob"] = *patch.DOB
		}
		if patch.JoinedAt != nil {
			fields["joined_at"] = *patch.JoinedAt
		}
		if patch.Active != nil {
			fields["active"] = *patch.Active
		}

		if len(fields) > 0 {
			if err := tx.Model(&teacher).Updates(fields).Error; err != nil {
				return apperrors.FromDB(err, "teacher")
			}
		}
		return appendSubjects(tx, &teacher, subjectIDs)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *teacherRepository) Delete(id uuid.UUID) (*models.Teacher, error) {
	teacher, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	// Deleting a class teacher cascades to the classroom and its students.
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(teacher).Association("Subjects").Clear(); err != nil {
			return apperrors.FromDB(err, "teacher")
		}
		if err := tx.Delete(&models.Teacher{}, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "teacher")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

func (r *teacherRepository) List(opts ListOptions) ([]models.Teacher, error) {
	q := r.db.Model(&models.Teacher{}).Preload("Subjects")
	if opts.Search != "" {
		like := likeTerm(opts.Search)
		q = q.Where(
			`LOWER(full_name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?
			OR LOWER(gender) LIKE ? OR LOWER(id_number) LIKE ?
			OR LOWER(CAST(joined_at AS TEXT)) LIKE ? OR LOWER(CAST(dob AS TEXT)) LIKE ?`,
			like, like, like, like, like, like, like,
		)
	}
	q = filterPerson(q, opts)

	var teachers []models.Teacher
	if err := paginate(q, opts).Find(&teachers).Error; err != nil {
		return nil, apperrors.FromDB(err, "teacher")
	}
	return teachers, nil
}

// appendSubjects resolves each id to a live subject and links it. Links are
// appended, never replaced.
func appendSubjects(tx *gorm.DB, teacher *models.Teacher, subjectIDs []uuid.UUID) error {
	for _, sid := range subjectIDs {
		var subject models.Subject
		if err := tx.First(&subject, "id = ?", sid).Error; err != nil {
			return apperrors.FromDB(err, "subject")
		}
		if err := tx.Model(teacher).Association("Subjects").Append(&subject); err != nil {
			return apperrors.FromDB(err, "teacher subjects")
		}
	}
	return nil
}
