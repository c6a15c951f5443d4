package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/pkg/database"
)

// setupDB opens a fresh sqlite database for one test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "school_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db.DB
}

func createTestTeacher(t *testing.T, db *gorm.DB, fullName string) *models.Teacher {
	t.Helper()
	teacher := &models.Teacher{FullName: fullName, Active: true}
	require.NoError(t, NewTeacherRepository(db).Create(teacher, nil))
	return teacher
}

func createTestClassRoom(t *testing.T, db *gorm.DB, name string, teacher *models.Teacher) *models.ClassRoom {
	t.Helper()
	classRoom := &models.ClassRoom{Name: name, ClassTeacherID: teacher.ID}
	require.NoError(t, NewClassRoomRepository(db).Create(classRoom))
	return classRoom
}

func createTestStudent(t *testing.T, db *gorm.DB, fullName string, classRoom *models.ClassRoom) *models.Student {
	t.Helper()
	student := &models.Student{FullName: fullName, ClassRoomID: classRoom.ID, Active: true}
	require.NoError(t, NewStudentRepository(db).Create(student, nil))
	return student
}

func createTestGuardian(t *testing.T, db *gorm.DB, fullName string) *models.Guardian {
	t.Helper()
	guardian := &models.Guardian{FullName: fullName, Active: true}
	require.NoError(t, NewGuardianRepository(db).Create(guardian))
	return guardian
}

func createTestSubject(t *testing.T, db *gorm.DB, name string) *models.Subject {
	t.Helper()
	subject := &models.Subject{Name: name}
	require.NoError(t, NewSubjectRepository(db).Create(subject))
	return subject
}
