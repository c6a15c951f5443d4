package repository

import (
	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPatch lists the mutable user fields. PasswordHash carries an
// already-hashed password; plaintext never reaches the store.
type UserPatch struct {
	Username     *string
	Email        *string
	FirstName    *string
	LastName     *string
	PasswordHash *string
	Active       *bool
}

// UserRepository persists API accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(id uuid.UUID, patch UserPatch) (*models.User, error)
	Delete(id uuid.UUID) (*models.User, error)
	List(opts ListOptions) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if err := r.db.Create(user).Error; err != nil {
		return apperrors.FromDB(err, "user")
	}
	return nil
}

func (r *userRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "user")
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, apperrors.FromDB(err, "user")
	}
	return &user, nil
}

func (r *userRepository) Update(id uuid.UUID, patch UserPatch) (*models.User, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "user")
		}

		fields := map[string]interface{}{}
		if patch.Username != nil {
			fields["username"] = *patch.Username
		}
		if patch.Email != nil {
			fields["email"] = *patch.Email
		}
		if patch.FirstName != nil {
			fields["first_name"] = *patch.FirstName
		}
		if patch.LastName != nil {
			fields["last_name"] = *patch.LastName
		}
		if patch.PasswordHash != nil {
			fields["password_hash"] = *patch.PasswordHash
		}
		if patch.Active != nil {
			fields["active"] = *patch.Active
		}
		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&user).Updates(fields).Error; err != nil {
			return apperrors.FromDB(err, "user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *userRepository) Delete(id uuid.UUID) (*models.User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "user")
	}
	return user, nil
}

func (r *userRepository) List(opts ListOptions) ([]models.User, error) {
	q := r.db.Model(&models.User{})
	if opts.Search != "" {
		like := likeTerm(opts.Search)
		q = q.Where(
			`LOWER(username) LIKE ? OR LOWER(email) LIKE ?
			OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?`,
			like, like, like, like,
		)
	}

	var users []models.User
	if err := paginate(q, opts).Find(&users).Error; err != nil {
		return nil, apperrors.FromDB(err, "user")
	}
	return users, nil
}
