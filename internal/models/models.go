package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the set of accepted gender values.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Valid reports whether g is one of the accepted values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User is an API account. PasswordHash is write-only and never serialized.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"not null"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Active       bool      `json:"active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Guardian is an adult responsible for one or more students.
type Guardian struct {
	ID         uuid.UUID  `json:"id" gorm:"type:text;primary_key"`
	FullName   string     `json:"full_name" gorm:"not null"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	IDNumber   *string    `json:"id_number" gorm:"uniqueIndex"`
	Religion   string     `json:"religion"`
	DOB        *time.Time `json:"dob"`
	Gender     Gender     `json:"gender"`
	Profession string     `json:"profession"`
	Active     bool       `json:"active" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Students []Student `json:"students,omitempty" gorm:"many2many:student_guardians;constraint:OnDelete:CASCADE"`
}

// Subject is a taught discipline, e.g. Math.
type Subject struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Teachers []Teacher `json:"teachers,omitempty" gorm:"many2many:teacher_subjects;constraint:OnDelete:CASCADE"`
}

// Teacher shares the Guardian bio fields minus profession and adds a join
// date plus the subjects taught.
type Teacher struct {
	ID        uuid.UUID  `json:"id" gorm:"type:text;primary_key"`
	FullName  string     `json:"full_name" gorm:"not null"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	IDNumber  *string    `json:"id_number" gorm:"uniqueIndex"`
	Religion  string     `json:"religion"`
	Gender    Gender     `json:"gender"`
	DOB       *time.Time `json:"dob"`
	JoinedAt  *time.Time `json:"joined_at"`
	Active    bool       `json:"active" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Subjects []Subject `json:"subjects,omitempty" gorm:"many2many:teacher_subjects;constraint:OnDelete:CASCADE"`
}

// ClassRoom is a named group of students supervised by exactly one teacher.
// Deleting the class teacher removes the classroom.
type ClassRoom struct {
	ID             uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	Name           string    `json:"name" gorm:"uniqueIndex;not null"`
	ClassTeacherID uuid.UUID `json:"class_teacher_id" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	ClassTeacher Teacher   `json:"class_teacher" gorm:"foreignKey:ClassTeacherID;constraint:OnDelete:CASCADE"`
	Students     []Student `json:"students,omitempty" gorm:"foreignKey:ClassRoomID;constraint:OnDelete:CASCADE"`
}

// Student always belongs to exactly one classroom; deleting the classroom
// removes its students.
type Student struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:text;primary_key"`
	FullName           string     `json:"full_name" gorm:"not null"`
	ClassRoomID        uuid.UUID  `json:"class_room_id" gorm:"type:text;not null"`
	RegistrationNumber *string    `json:"registration_number" gorm:"uniqueIndex"`
	Phone              string     `json:"phone"`
	Email              string     `json:"email"`
	DOB                *time.Time `json:"dob"`
	JoinedAt           *time.Time `json:"joined_at"`
	Gender             Gender     `json:"gender"`
	Religion           string     `json:"religion"`
	Active             bool       `json:"active" gorm:"not null"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	ClassRoom ClassRoom  `json:"class_room" gorm:"foreignKey:ClassRoomID;constraint:OnDelete:CASCADE"`
	Guardians []Guardian `json:"guardians,omitempty" gorm:"many2many:student_guardians;constraint:OnDelete:CASCADE"`
}
