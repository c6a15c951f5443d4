package repository

import (
	"time"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentPatch lists the mutable student fields. ClassRoomID is re-resolved
// against a live classroom before being applied.
type StudentPatch struct {
	FullName           *string
	ClassRoomID        *uuid.UUID
	RegistrationNumber *string
	Phone              *string
	Email              *string
	DOB                *time.Time
	JoinedAt           *time.Time
	Gender             *models.Gender
	Religion           *string
	Active             *bool
}

// StudentRepository persists student records and their guardian links.
type StudentRepository interface {
	// Create resolves the classroom id, stores the student and links the
	// given guardians. Any unknown id fails the whole mutation.
	Create(student *models.Student, guardianIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Student, error)
	// Update patches non-nil fields and appends the given guardians to the
	// existing set.
	Update(id uuid.UUID, patch StudentPatch, guardianIDs []uuid.UUID) (*models.Student, error)
	Delete(id uuid.UUID) (*models.Student, error)
	List(opts ListOptions) ([]models.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *models.Student, guardianIDs []uuid.UUID) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var classRoom models.ClassRoom
		if err := tx.First(&classRoom, "id = ?", student.ClassRoomID).Error; err != nil {
			return apperrors.FromDB(err, "classroom")
		}
		if err := tx.Omit("ClassRoom", "Guardians").Create(student).Error; err != nil {
			return apperrors.FromDB(err, "student")
		}
		return appendGuardians(tx, student, guardianIDs)
	})
	if err != nil {
		return err
	}
	reloaded, err := r.GetByID(student.ID)
	if err != nil {
		return err
	}
	*student = *reloaded
	return nil
}

func (r *studentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("ClassRoom.ClassTeacher").Preload("Guardians").
		First(&student, "id = ?", id).Error
	if err != nil {
		return nil, apperrors.FromDB(err, "student")
	}
	return &student, nil
}

func (r *studentRepository) Update(id uuid.UUID, patch StudentPatch, guardianIDs []uuid.UUID) (*models.Student, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "student")
		}

		fields := map[string]interface{}{}
		if patch.FullName != nil {
			fields["full_name"] = *patch.FullName
		}
		if patch.ClassRoomID != nil {
			var classRoom models.ClassRoom
			if err := tx.First(&classRoom, "id = ?", *patch.ClassRoomID).Error; err != nil {
				return apperrors.FromDB(err, "classroom")
			}
			fields["class_room_id"] = *patch.ClassRoomID
		}
		if patch.RegistrationNumber != nil {
			fields["registration_number"] = *patch.RegistrationNumber
		}
		if patch.Phone != nil {
			fields["phone"] = *patch.Phone
		}
		if patch.Email != nil {
			fields["email"] = *patch.Email
		}
		if patch.DOB != nil {
			fields["dob"] = *patch.DOB
		}
		if patch.JoinedAt != nil {
			fields["joined_at"] = *patch.JoinedAt
		}
		if patch.Gender != nil {
			fields["gender"] = *patch.Gender
		}
		if patch.Religion != nil {
			fields["religion"] = *patch.Religion
		}
		if patch.Active != nil {
			fields["active"] = *patch.Active
		}

		if len(fields) > 0 {
			if err := tx.Model(&student).Updates(fields).Error; err != nil {
				return apperrors.FromDB(err, "student")
			}
		}
		return appendGuardians(tx, &student, guardianIDs)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *studentRepository) Delete(id uuid.UUID) (*models.Student, error) {
	student, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	// Clearing associations drops the join rows; linked guardians stay.
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(student).Association("Guardians").Clear(); err != nil {
			return apperrors.FromDB(err, "student")
		}
		if err := tx.Delete(&models.Student{}, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "student")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *studentRepository) List(opts ListOptions) ([]models.Student, error) {
	q := r.db.Model(&models.Student{}).
		Preload("ClassRoom.ClassTeacher").Preload("Guardians")
	if opts.Search != "" {
		like := likeTerm(opts.Search)
		// Direct fields plus one hop into linked guardian names/id numbers.
		q = q.Where(
			`LOWER(full_name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?
			OR LOWER(registration_number) LIKE ? OR LOWER(gender) LIKE ?
			OR LOWER(CAST(joined_at AS TEXT)) LIKE ? OR LOWER(CAST(dob AS TEXT)) LIKE ?
			OR id IN (
				SELECT student_guardians.student_id FROM student_guardians
				JOIN guardians ON guardians.id = student_guardians.guardian_id
				WHERE LOWER(guardians.full_name) LIKE ? OR LOWER(guardians.id_number) LIKE ?
			)`,
			like, like, like, like, like, like, like, like, like,
		)
	}
	q = filterPerson(q, opts)
	if opts.ClassRoomID != nil {
		q = q.Where("class_room_id = ?", *opts.ClassRoomID)
	}

	var students []models.Student
	if err := paginate(q, opts).Find(&students).Error; err != nil {
		return nil, apperrors.FromDB(err, "student")
	}
	return students, nil
}

// appendGuardians resolves each id to a live guardian and links it. Links
// are appended, never replaced.
func appendGuardians(tx *gorm.DB, student *models.Student, guardianIDs []uuid.UUID) error {
	for _, gid := range guardianIDs {
		var guardian models.Guardian
		if err := tx.First(&guardian, "id = ?", gid).Error; err != nil {
			return apperrors.FromDB(err, "guardian")
		}
		if err := tx.Model(student).Association("Guardians").Append(&guardian); err != nil {
			return apperrors.FromDB(err, "student guardians")
		}
	}
	return nil
}
