package graph

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
	"github.com/lennykioko/School-Mngmt-Backend/internal/services"
	"github.com/lennykioko/School-Mngmt-Backend/pkg/database"
)

func setupSchema(t *testing.T) (*Schema, *gorm.DB, *services.AuthService) {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "graph_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repository.NewUserRepository(db.DB)
	auth := services.NewAuthService(userRepo, "graph-test-secret", time.Hour)

	schema, err := New(Deps{
		Users:      userRepo,
		Guardians:  repository.NewGuardianRepository(db.DB),
		Teachers:   repository.NewTeacherRepository(db.DB),
		Students:   repository.NewStudentRepository(db.DB),
		Subjects:   repository.NewSubjectRepository(db.DB),
		ClassRooms: repository.NewClassRoomRepository(db.DB),
		Auth:       auth,
	})
	require.NoError(t, err)
	return schema, db.DB, auth
}

// authedCtx simulates a request whose bearer token already resolved.
func authedCtx(t *testing.T, db *gorm.DB) context.Context {
	t.Helper()
	repo := repository.NewUserRepository(db)
	hash, err := services.HashPassword("tester-pass")
	require.NoError(t, err)
	user := &models.User{Username: "tester", Email: "tester@school.local", PasswordHash: hash, Active: true}
	require.NoError(t, repo.Create(user))
	return WithUser(context.Background(), user)
}

func exec(t *testing.T, s *Schema, ctx context.Context, query string, vars map[string]interface{}) *graphql.Result {
	t.Helper()
	return s.Exec(ctx, query, vars, "")
}

func execOK(t *testing.T, s *Schema, ctx context.Context, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	result := exec(t, s, ctx, query, vars)
	require.Empty(t, result.Errors, "unexpected errors: %v", result.Errors)
	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func objectOf(t *testing.T, data map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	obj, ok := data[key].(map[string]interface{})
	require.True(t, ok, "field %q missing or not an object: %v", key, data[key])
	return obj
}

func listOf(t *testing.T, data map[string]interface{}, key string) []interface{} {
	t.Helper()
	list, ok := data[key].([]interface{})
	require.True(t, ok, "field %q missing or not a list: %v", key, data[key])
	return list
}

func TestOperationsRequireAuthentication(t *testing.T) {
	s, db, _ := setupSchema(t)
	anon := context.Background()

	tests := []struct {
		name  string
		query string
	}{
		{"list query", `{ students { id } }`},
		{"single query", `{ subject(id: "b4b8d0b0-0000-0000-0000-000000000000") { id } }`},
		{"create mutation", `mutation { createSubject(name: "Sneaky") { id } }`},
		{"delete mutation", `mutation { deleteSubject(id: "b4b8d0b0-0000-0000-0000-000000000000") { id } }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := exec(t, s, anon, tt.query, nil)
			require.NotEmpty(t, result.Errors)
			assert.Contains(t, result.Errors[0].Message, "unauthorized")
		})
	}

	// The rejected create left no state behind.
	var count int64
	db.Model(&models.Subject{}).Count(&count)
	assert.Zero(t, count)
}

func TestCurrentUser(t *testing.T) {
	s, db, auth := setupSchema(t)
	ctx := authedCtx(t, db)

	t.Run("with session", func(t *testing.T) {
		data := execOK(t, s, ctx, `{ currentUser { username } }`, nil)
		assert.Equal(t, "tester", objectOf(t, data, "currentUser")["username"])
	})

	t.Run("with explicit token", func(t *testing.T) {
		user, token, err := auth.Authenticate("tester", "tester-pass")
		require.NoError(t, err)
		data := execOK(t, s, context.Background(),
			`query($token: String) { currentUser(token: $token) { username } }`,
			map[string]interface{}{"token": token})
		assert.Equal(t, user.Username, objectOf(t, data, "currentUser")["username"])
	})

	t.Run("empty token falls back to session", func(t *testing.T) {
		data := execOK(t, s, ctx, `{ currentUser(token: "") { username } }`, nil)
		assert.Equal(t, "tester", objectOf(t, data, "currentUser")["username"])
	})

	t.Run("empty token without session", func(t *testing.T) {
		result := exec(t, s, context.Background(), `{ currentUser(token: "") { username } }`, nil)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "not logged in")
	})

	t.Run("with bad token", func(t *testing.T) {
		result := exec(t, s, context.Background(),
			`{ currentUser(token: "garbage") { username } }`, nil)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "token")
	})

	t.Run("anonymous without token", func(t *testing.T) {
		result := exec(t, s, context.Background(), `{ currentUser { username } }`, nil)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "not logged in")
	})
}

func TestTokenAuth(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, context.Background(),
		`mutation { tokenAuth(username: "tester", password: "tester-pass") { token user { username } } }`, nil)
	payload := objectOf(t, data, "tokenAuth")
	assert.NotEmpty(t, payload["token"])
	assert.Equal(t, "tester", objectOf(t, payload, "user")["username"])

	result := exec(t, s, ctx,
		`mutation { tokenAuth(username: "tester", password: "wrong") { token } }`, nil)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "invalid credentials")
}

func TestTeacherSubjectScenario(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx, `mutation { createSubject(name: "Math") { id name } }`, nil)
	mathID := objectOf(t, data, "createSubject")["id"].(string)

	data = execOK(t, s, ctx,
		`mutation($subjects: [ID]) {
			createTeacher(fullName: "A", idNumber: "1", phone: "1", subjects: $subjects) {
				id fullName subjects { name }
			}
		}`,
		map[string]interface{}{"subjects": []interface{}{mathID}})
	teacher := objectOf(t, data, "createTeacher")
	assert.Equal(t, "A", teacher["fullName"])
	subjects := listOf(t, teacher, "subjects")
	require.Len(t, subjects, 1)
	assert.Equal(t, "Math", subjects[0].(map[string]interface{})["name"])
}

func TestClassRoomStudentScenario(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx, `mutation { createTeacher(fullName: "Class Owner") { id } }`, nil)
	teacherID := objectOf(t, data, "createTeacher")["id"].(string)

	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createClassRoom(name: "5A", classTeacher: %q) { id name classTeacher { fullName } } }`, teacherID), nil)
	classRoom := objectOf(t, data, "createClassRoom")
	assert.Equal(t, "5A", classRoom["name"])
	assert.Equal(t, "Class Owner", objectOf(t, classRoom, "classTeacher")["fullName"])
	classRoomID := classRoom["id"].(string)

	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createStudent(fullName: "B", classRoom: %q) { id classRoom { name } } }`, classRoomID), nil)
	student := objectOf(t, data, "createStudent")
	assert.Equal(t, "5A", objectOf(t, student, "classRoom")["name"])
	studentID := student["id"].(string)

	execOK(t, s, ctx,
		fmt.Sprintf(`mutation { deleteClassRoom(id: %q) { name } }`, classRoomID), nil)

	result := exec(t, s, ctx, fmt.Sprintf(`{ student(id: %q) { id } }`, studentID), nil)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "not found")
	if result.Errors[0].Extensions != nil {
		assert.Equal(t, "NOT_FOUND", result.Errors[0].Extensions["code"])
	}
}

func TestUpdateStudentPartial(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx, `mutation { createTeacher(fullName: "T") { id } }`, nil)
	teacherID := objectOf(t, data, "createTeacher")["id"].(string)
	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createClassRoom(name: "4B", classTeacher: %q) { id } }`, teacherID), nil)
	classRoomID := objectOf(t, data, "createClassRoom")["id"].(string)
	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createStudent(fullName: "Before", phone: "0711", classRoom: %q, gender: FEMALE) { id } }`, classRoomID), nil)
	studentID := objectOf(t, data, "createStudent")["id"].(string)

	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { updateStudent(id: %q, phone: "0799") { fullName phone gender } }`, studentID), nil)
	student := objectOf(t, data, "updateStudent")
	assert.Equal(t, "Before", student["fullName"])
	assert.Equal(t, "0799", student["phone"])
	assert.Equal(t, "FEMALE", student["gender"])
}

func TestStudentsSearchSpansGuardians(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx, `mutation { createTeacher(fullName: "T") { id } }`, nil)
	teacherID := objectOf(t, data, "createTeacher")["id"].(string)
	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createClassRoom(name: "3A", classTeacher: %q) { id } }`, teacherID), nil)
	classRoomID := objectOf(t, data, "createClassRoom")["id"].(string)

	data = execOK(t, s, ctx, `mutation { createGuardian(fullName: "Jane Muthoni") { id } }`, nil)
	janeID := objectOf(t, data, "createGuardian")["id"].(string)

	execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createStudent(fullName: "Jane Junior", classRoom: %q) { id } }`, classRoomID), nil)
	execOK(t, s, ctx,
		fmt.Sprintf(`mutation($guardians: [ID]) { createStudent(fullName: "Paul Kioko", classRoom: %q, guardians: $guardians) { id } }`, classRoomID),
		map[string]interface{}{"guardians": []interface{}{janeID}})
	execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createStudent(fullName: "Unrelated Kid", classRoom: %q) { id } }`, classRoomID), nil)

	data = execOK(t, s, ctx, `{ students(search: "Jane") { fullName } }`, nil)
	students := listOf(t, data, "students")
	names := make([]string, 0, len(students))
	for _, raw := range students {
		names = append(names, raw.(map[string]interface{})["fullName"].(string))
	}
	assert.ElementsMatch(t, []string{"Jane Junior", "Paul Kioko"}, names)
}

func TestStudentsPagination(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx, `mutation { createTeacher(fullName: "T") { id } }`, nil)
	teacherID := objectOf(t, data, "createTeacher")["id"].(string)
	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createClassRoom(name: "1A", classTeacher: %q) { id } }`, teacherID), nil)
	classRoomID := objectOf(t, data, "createClassRoom")["id"].(string)

	for i := 1; i <= 10; i++ {
		execOK(t, s, ctx,
			fmt.Sprintf(`mutation { createStudent(fullName: "Student %02d", classRoom: %q) { id } }`, i, classRoomID), nil)
	}

	data = execOK(t, s, ctx, `{ students(skip: 3, first: 4) { fullName } }`, nil)
	students := listOf(t, data, "students")
	require.Len(t, students, 4)
	assert.Equal(t, "Student 04", students[0].(map[string]interface{})["fullName"])
	assert.Equal(t, "Student 07", students[3].(map[string]interface{})["fullName"])
}

func TestStudentsExactFilters(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx, `mutation { createTeacher(fullName: "T") { id } }`, nil)
	teacherID := objectOf(t, data, "createTeacher")["id"].(string)
	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createClassRoom(name: "2A", classTeacher: %q) { id } }`, teacherID), nil)
	roomA := objectOf(t, data, "createClassRoom")["id"].(string)
	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createClassRoom(name: "2B", classTeacher: %q) { id } }`, teacherID), nil)
	roomB := objectOf(t, data, "createClassRoom")["id"].(string)

	execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createStudent(fullName: "Ann", classRoom: %q, gender: FEMALE) { id } }`, roomA), nil)
	execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createStudent(fullName: "Ben", classRoom: %q, gender: MALE) { id } }`, roomA), nil)
	execOK(t, s, ctx,
		fmt.Sprintf(`mutation { createStudent(fullName: "Cleo", classRoom: %q, gender: FEMALE, active: false) { id } }`, roomB), nil)

	names := func(data map[string]interface{}) []string {
		out := []string{}
		for _, raw := range listOf(t, data, "students") {
			out = append(out, raw.(map[string]interface{})["fullName"].(string))
		}
		return out
	}

	data = execOK(t, s, ctx, `{ students(gender: FEMALE) { fullName } }`, nil)
	assert.ElementsMatch(t, []string{"Ann", "Cleo"}, names(data))

	data = execOK(t, s, ctx, fmt.Sprintf(`{ students(classRoom: %q) { fullName } }`, roomA), nil)
	assert.ElementsMatch(t, []string{"Ann", "Ben"}, names(data))

	data = execOK(t, s, ctx, `{ students(active: false) { fullName } }`, nil)
	assert.ElementsMatch(t, []string{"Cleo"}, names(data))

	data = execOK(t, s, ctx, fmt.Sprintf(`{ students(gender: FEMALE, classRoom: %q, active: true) { fullName } }`, roomA), nil)
	assert.ElementsMatch(t, []string{"Ann"}, names(data))
}

func TestCreateStudentUnknownClassRoom(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	result := exec(t, s, ctx,
		`mutation { createStudent(fullName: "Lost", classRoom: "b4b8d0b0-0000-0000-0000-000000000000") { id } }`, nil)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "classroom not found")
}

func TestUserMutationsHidePassword(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx,
		`mutation { createUser(username: "newbie", email: "newbie@school.local", password: "pass-1234") { id username email } }`, nil)
	created := objectOf(t, data, "createUser")
	assert.Equal(t, "newbie", created["username"])
	assert.NotContains(t, created, "password")

	// The stored credential round-trips through tokenAuth.
	data = execOK(t, s, context.Background(),
		`mutation { tokenAuth(username: "newbie", password: "pass-1234") { token } }`, nil)
	assert.NotEmpty(t, objectOf(t, data, "tokenAuth")["token"])

	// Password change on update takes effect.
	userID := created["id"].(string)
	execOK(t, s, ctx,
		fmt.Sprintf(`mutation { updateUser(id: %q, password: "changed-1234") { id } }`, userID), nil)
	result := exec(t, s, context.Background(),
		`mutation { tokenAuth(username: "newbie", password: "pass-1234") { token } }`, nil)
	require.NotEmpty(t, result.Errors)
	data = execOK(t, s, context.Background(),
		`mutation { tokenAuth(username: "newbie", password: "changed-1234") { token } }`, nil)
	assert.NotEmpty(t, objectOf(t, data, "tokenAuth")["token"])
}

func TestCreateUserValidation(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	result := exec(t, s, ctx,
		`mutation { createUser(username: "bademail", email: "not-an-email", password: "pass-1234") { id } }`, nil)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "invalid user input")
}

func TestDeleteReturnsLastKnownValues(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx,
		`mutation { createGuardian(fullName: "Bye Bye", profession: "Baker") { id } }`, nil)
	guardianID := objectOf(t, data, "createGuardian")["id"].(string)

	data = execOK(t, s, ctx,
		fmt.Sprintf(`mutation { deleteGuardian(id: %q) { fullName profession } }`, guardianID), nil)
	deleted := objectOf(t, data, "deleteGuardian")
	assert.Equal(t, "Bye Bye", deleted["fullName"])
	assert.Equal(t, "Baker", deleted["profession"])

	result := exec(t, s, ctx, fmt.Sprintf(`{ guardian(id: %q) { id } }`, guardianID), nil)
	require.NotEmpty(t, result.Errors)
}

func TestGuardianDatesRoundTrip(t *testing.T) {
	s, db, _ := setupSchema(t)
	ctx := authedCtx(t, db)

	data := execOK(t, s, ctx,
		`mutation { createGuardian(fullName: "Dated", dob: "1980-07-01", gender: OTHER) { dob gender active } }`, nil)
	guardian := objectOf(t, data, "createGuardian")
	assert.Equal(t, "1980-07-01", guardian["dob"])
	assert.Equal(t, "OTHER", guardian["gender"])
	assert.Equal(t, true, guardian["active"])
}
