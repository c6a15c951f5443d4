// Package graph is the query/mutation resolution layer: it maps the named
// GraphQL operations onto repository reads and writes.
package graph

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"

	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
	"github.com/lennykioko/School-Mngmt-Backend/internal/services"
)

// Deps are the collaborators the resolvers call into.
type Deps struct {
	Users      repository.UserRepository
	Guardians  repository.GuardianRepository
	Teachers   repository.TeacherRepository
	Students   repository.StudentRepository
	Subjects   repository.SubjectRepository
	ClassRooms repository.ClassRoomRepository
	Auth       *services.AuthService
}

// Schema holds the executable GraphQL schema and its collaborators.
type Schema struct {
	schema     graphql.Schema
	users      repository.UserRepository
	guardians  repository.GuardianRepository
	teachers   repository.TeacherRepository
	students   repository.StudentRepository
	subjects   repository.SubjectRepository
	classRooms repository.ClassRoomRepository
	auth       *services.AuthService
	validate   *validator.Validate

	userType        *graphql.Object
	authPayloadType *graphql.Object
	guardianType    *graphql.Object
	subjectType     *graphql.Object
	teacherType     *graphql.Object
	classRoomType   *graphql.Object
	studentType     *graphql.Object
}

// New builds the executable schema.
func New(deps Deps) (*Schema, error) {
	s := &Schema{
		users:      deps.Users,
		guardians:  deps.Guardians,
		teachers:   deps.Teachers,
		students:   deps.Students,
		subjects:   deps.Subjects,
		classRooms: deps.ClassRooms,
		auth:       deps.Auth,
		validate:   validator.New(),
	}

	s.userType = s.defineUserType()
	s.authPayloadType = s.defineAuthPayloadType(s.userType)
	s.guardianType = s.defineGuardianType()
	s.subjectType = s.defineSubjectType()
	s.teacherType = s.defineTeacherType()
	s.classRoomType = s.defineClassRoomType(s.teacherType)
	s.studentType = s.defineStudentType(s.classRoomType, s.guardianType)
	s.wireTypeCycles()

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    s.defineQuery(),
		Mutation: s.defineMutation(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	s.schema = schema
	return s, nil
}

// Exec runs one GraphQL request against the schema.
func (s *Schema) Exec(ctx context.Context, query string, variables map[string]interface{}, operationName string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  query,
		VariableValues: variables,
		OperationName:  operationName,
		Context:        ctx,
	})
}

// idOnlyArgs is the argument set of single-record queries and deletes.
func idOnlyArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{
			Type:        graphql.NewNonNull(graphql.ID),
			Description: "Record identifier",
		},
	}
}

// listArgs is the argument set shared by every list query.
func listArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"search": &graphql.ArgumentConfig{
			Type:        graphql.String,
			Description: "Case-insensitive substring matched across the kind's searchable fields",
		},
		"first": &graphql.ArgumentConfig{
			Type:         graphql.Int,
			DefaultValue: repository.MaxPageSize,
			Description:  fmt.Sprintf("Number of records to return, applied after skip (default and maximum: %d)", repository.MaxPageSize),
		},
		"skip": &graphql.ArgumentConfig{
			Type:         graphql.Int,
			DefaultValue: 0,
			Description:  "Number of records to drop from the front",
		},
	}
}

// personListArgs extends listArgs with the admin-style exact filters shared
// by guardians, teachers and students.
func personListArgs() graphql.FieldConfigArgument {
	args := listArgs()
	args["gender"] = &graphql.ArgumentConfig{Type: genderEnum}
	args["active"] = &graphql.ArgumentConfig{Type: graphql.Boolean}
	return args
}

func studentListArgs() graphql.FieldConfigArgument {
	args := personListArgs()
	args["classRoom"] = &graphql.ArgumentConfig{Type: graphql.ID, Description: "Restrict to one classroom"}
	return args
}

func (s *Schema) defineQuery() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type:    s.userType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveUser,
			},
			"users": &graphql.Field{
				Type:    graphql.NewList(s.userType),
				Args:    listArgs(),
				Resolve: s.resolveUsers,
			},
			"currentUser": &graphql.Field{
				Type: s.userType,
				Args: graphql.FieldConfigArgument{
					"token": &graphql.ArgumentConfig{
						Type:        graphql.String,
						Description: "Bearer token; optional when a session is already authenticated",
					},
				},
				Resolve: s.resolveCurrentUser,
			},
			"guardian": &graphql.Field{
				Type:    s.guardianType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveGuardian,
			},
			"guardians": &graphql.Field{
				Type:    graphql.NewList(s.guardianType),
				Args:    personListArgs(),
				Resolve: s.resolveGuardians,
			},
			"teacher": &graphql.Field{
				Type:    s.teacherType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveTeacher,
			},
			"teachers": &graphql.Field{
				Type:    graphql.NewList(s.teacherType),
				Args:    personListArgs(),
				Resolve: s.resolveTeachers,
			},
			"student": &graphql.Field{
				Type:    s.studentType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveStudent,
			},
			"students": &graphql.Field{
				Type:    graphql.NewList(s.studentType),
				Args:    studentListArgs(),
				Resolve: s.resolveStudents,
			},
			"subject": &graphql.Field{
				Type:    s.subjectType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveSubject,
			},
			"subjects": &graphql.Field{
				Type:    graphql.NewList(s.subjectType),
				Args:    listArgs(),
				Resolve: s.resolveSubjects,
			},
			"classRoom": &graphql.Field{
				Type:    s.classRoomType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveClassRoom,
			},
			"classRooms": &graphql.Field{
				Type:    graphql.NewList(s.classRoomType),
				Args:    listArgs(),
				Resolve: s.resolveClassRooms,
			},
		},
	})
}

func (s *Schema) defineMutation() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"tokenAuth": &graphql.Field{
				Type: s.authPayloadType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: s.resolveTokenAuth,
			},

			"createUser": &graphql.Field{
				Type:    s.userType,
				Args:    createUserArgs(),
				Resolve: s.resolveCreateUser,
			},
			"updateUser": &graphql.Field{
				Type:    s.userType,
				Args:    updateUserArgs(),
				Resolve: s.resolveUpdateUser,
			},
			"deleteUser": &graphql.Field{
				Type:    s.userType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveDeleteUser,
			},

			"createGuardian": &graphql.Field{
				Type:    s.guardianType,
				Args:    createGuardianArgs(),
				Resolve: s.resolveCreateGuardian,
			},
			"updateGuardian": &graphql.Field{
				Type:    s.guardianType,
				Args:    updateGuardianArgs(),
				Resolve: s.resolveUpdateGuardian,
			},
			"deleteGuardian": &graphql.Field{
				Type:    s.guardianType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveDeleteGuardian,
			},

			"createTeacher": &graphql.Field{
				Type:    s.teacherType,
				Args:    createTeacherArgs(),
				Resolve: s.resolveCreateTeacher,
			},
			"updateTeacher": &graphql.Field{
				Type:    s.teacherType,
				Args:    updateTeacherArgs(),
				Resolve: s.resolveUpdateTeacher,
			},
			"deleteTeacher": &graphql.Field{
				Type:    s.teacherType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveDeleteTeacher,
			},

			"createStudent": &graphql.Field{
				Type:    s.studentType,
				Args:    createStudentArgs(),
				Resolve: s.resolveCreateStudent,
			},
			"updateStudent": &graphql.Field{
				Type:    s.studentType,
				Args:    updateStudentArgs(),
				Resolve: s.resolveUpdateStudent,
			},
			"deleteStudent": &graphql.Field{
				Type:    s.studentType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveDeleteStudent,
			},

			"createSubject": &graphql.Field{
				Type: s.subjectType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: s.resolveCreateSubject,
			},
			"updateSubject": &graphql.Field{
				Type: s.subjectType,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: s.resolveUpdateSubject,
			},
			"deleteSubject": &graphql.Field{
				Type:    s.subjectType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveDeleteSubject,
			},

			"createClassRoom": &graphql.Field{
				Type: s.classRoomType,
				Args: graphql.FieldConfigArgument{
					"name":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"classTeacher": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID), Description: "Teacher id"},
				},
				Resolve: s.resolveCreateClassRoom,
			},
			"updateClassRoom": &graphql.Field{
				Type: s.classRoomType,
				Args: graphql.FieldConfigArgument{
					"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":         &graphql.ArgumentConfig{Type: graphql.String},
					"classTeacher": &graphql.ArgumentConfig{Type: graphql.ID, Description: "Teacher id"},
				},
				Resolve: s.resolveUpdateClassRoom,
			},
			"deleteClassRoom": &graphql.Field{
				Type:    s.classRoomType,
				Args:    idOnlyArgs(),
				Resolve: s.resolveDeleteClassRoom,
			},
		},
	})
}
