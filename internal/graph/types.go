package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
)

const dateLayout = "2006-01-02"

// dateScalar carries calendar dates (birth dates, join dates) as
// YYYY-MM-DD strings.
var dateScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "A calendar date in YYYY-MM-DD form.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return v.Format(dateLayout)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.Format(dateLayout)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil
		}
		return t
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if sv, ok := valueAST.(*ast.StringValue); ok {
			t, err := time.Parse(dateLayout, sv.Value)
			if err != nil {
				return nil
			}
			return t
		}
		return nil
	},
})

var genderEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Gender",
	Values: graphql.EnumValueConfigMap{
		"MALE":   &graphql.EnumValueConfig{Value: models.GenderMale},
		"FEMALE": &graphql.EnumValueConfig{Value: models.GenderFemale},
		"OTHER":  &graphql.EnumValueConfig{Value: models.GenderOther},
	},
})

func (s *Schema) defineUserType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "An API account. The password is write-only and never exposed.",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"firstName": &graphql.Field{Type: graphql.String},
			"lastName":  &graphql.Field{Type: graphql.String},
			"active":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func (s *Schema) defineAuthPayloadType(userType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})
}

func (s *Schema) defineGuardianType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Guardian",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"fullName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone":      &graphql.Field{Type: graphql.String},
			"email":      &graphql.Field{Type: graphql.String},
			"idNumber":   &graphql.Field{Type: graphql.String},
			"religion":   &graphql.Field{Type: graphql.String},
			"dob":        &graphql.Field{Type: dateScalar},
			"gender":     &graphql.Field{Type: genderEnum},
			"profession": &graphql.Field{Type: graphql.String},
			"active":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt":  &graphql.Field{Type: graphql.DateTime},
			"updatedAt":  &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func (s *Schema) defineSubjectType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Subject",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func (s *Schema) defineTeacherType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Teacher",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"fullName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.Field{Type: graphql.String},
			"email":     &graphql.Field{Type: graphql.String},
			"idNumber":  &graphql.Field{Type: graphql.String},
			"religion":  &graphql.Field{Type: graphql.String},
			"gender":    &graphql.Field{Type: genderEnum},
			"dob":       &graphql.Field{Type: dateScalar},
			"joinedAt":  &graphql.Field{Type: dateScalar},
			"active":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func (s *Schema) defineClassRoomType(teacherType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "ClassRoom",
		Description: "A named group of students supervised by one class teacher.",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"classTeacher": &graphql.Field{Type: graphql.NewNonNull(teacherType)},
			"createdAt":    &graphql.Field{Type: graphql.DateTime},
			"updatedAt":    &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func (s *Schema) defineStudentType(classRoomType, guardianType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Student",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"fullName":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"classRoom":          &graphql.Field{Type: graphql.NewNonNull(classRoomType)},
			"registrationNumber": &graphql.Field{Type: graphql.String},
			"phone":              &graphql.Field{Type: graphql.String},
			"email":              &graphql.Field{Type: graphql.String},
			"dob":                &graphql.Field{Type: dateScalar},
			"joinedAt":           &graphql.Field{Type: dateScalar},
			"gender":             &graphql.Field{Type: genderEnum},
			"religion":           &graphql.Field{Type: graphql.String},
			"active":             &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"guardians":          &graphql.Field{Type: graphql.NewList(guardianType)},
			"createdAt":          &graphql.Field{Type: graphql.DateTime},
			"updatedAt":          &graphql.Field{Type: graphql.DateTime},
		},
	})
}

// wireTypeCycles adds the relation edges that would otherwise form
// construction cycles between the object types.
func (s *Schema) wireTypeCycles() {
	s.teacherType.AddFieldConfig("subjects", &graphql.Field{
		Type: graphql.NewList(s.subjectType),
	})
	s.subjectType.AddFieldConfig("teachers", &graphql.Field{
		Type: graphql.NewList(s.teacherType),
	})
	s.guardianType.AddFieldConfig("students", &graphql.Field{
		Type: graphql.NewList(s.studentType),
	})
	s.classRoomType.AddFieldConfig("students", &graphql.Field{
		Type: graphql.NewList(s.studentType),
	})
}
