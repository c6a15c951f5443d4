package repository

import (
	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassRoomPatch lists the mutable classroom fields. ClassTeacherID is
// re-resolved against a live teacher before being applied.
type ClassRoomPatch struct {
	Name           *string
	ClassTeacherID *uuid.UUID
}

// ClassRoomRepository persists classroom records.
type ClassRoomRepository interface {
	// Create resolves the class teacher id to a live record, then stores
	// the classroom.
	Create(classRoom *models.ClassRoom) error
	GetByID(id uuid.UUID) (*models.ClassRoom, error)
	Update(id uuid.UUID, patch ClassRoomPatch) (*models.ClassRoom, error)
	// Delete removes the classroom; its students go with it.
	Delete(id uuid.UUID) (*models.ClassRoom, error)
	List(opts ListOptions) ([]models.ClassRoom, error)
}

type classRoomRepository struct {
	db *gorm.DB
}

// NewClassRoomRepository creates a classroom repository.
func NewClassRoomRepository(db *gorm.DB) ClassRoomRepository {
	return &classRoomRepository{db: db}
}

func (r *classRoomRepository) Create(classRoom *models.ClassRoom) error {
	if classRoom.ID == uuid.Nil {
		classRoom.ID = uuid.New()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var teacher models.Teacher
		if err := tx.First(&teacher, "id = ?", classRoom.ClassTeacherID).Error; err != nil {
			return apperrors.FromDB(err, "teacher")
		}
		if err := tx.Omit("ClassTeacher").Create(classRoom).Error; err != nil {
			return apperrors.FromDB(err, "classroom")
		}
		return nil
	})
	if err != nil {
		return err
	}
	reloaded, err := r.GetByID(classRoom.ID)
	if err != nil {
		return err
	}
	*classRoom = *reloaded
	return nil
}

func (r *classRoomRepository) GetByID(id uuid.UUID) (*models.ClassRoom, error) {
	var classRoom models.ClassRoom
	err := r.db.Preload("ClassTeacher").Preload("Students").First(&classRoom, "id = ?", id).Error
	if err != nil {
		return nil, apperrors.FromDB(err, "classroom")
	}
	return &classRoom, nil
}

func (r *classRoomRepository) Update(id uuid.UUID, patch ClassRoomPatch) (*models.ClassRoom, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var classRoom models.ClassRoom
		if err := tx.First(&classRoom, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "classroom")
		}

		fields := map[string]interface{}{}
		if patch.Name != nil {
			fields["name"] = *patch.Name
		}
		if patch.ClassTeacherID != nil {
			var teacher models.Teacher
			if err := tx.First(&teacher, "id = ?", *patch.ClassTeacherID).Error; err != nil {
				return apperrors.FromDB(err, "teacher")
			}
			fields["class_teacher_id"] = *patch.ClassTeacherID
		}
		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&classRoom).Updates(fields).Error; err != nil {
			return apperrors.FromDB(err, "classroom")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *classRoomRepository) Delete(id uuid.UUID) (*models.ClassRoom, error) {
	classRoom, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.ClassRoom{}, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "classroom")
	}
	return classRoom, nil
}

func (r *classRoomRepository) List(opts ListOptions) ([]models.ClassRoom, error) {
	q := r.db.Model(&models.ClassRoom{}).Preload("ClassTeacher").Preload("Students")
	if opts.Search != "" {
		like := likeTerm(opts.Search)
		q = q.Where(
			`LOWER(name) LIKE ? OR class_teacher_id IN (
				SELECT id FROM teachers WHERE LOWER(full_name) LIKE ?
			)`,
			like, like,
		)
	}

	var classRooms []models.ClassRoom
	if err := paginate(q, opts).Find(&classRooms).Error; err != nil {
		return nil, apperrors.FromDB(err, "classroom")
	}
	return classRooms, nil
}
