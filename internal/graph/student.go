package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
)

type createStudentInput struct {
	FullName string `validate:"required"`
	Email    string `validate:"omitempty,email"`
}

func (s *Schema) resolveStudent(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.students.GetByID(id)
}

func (s *Schema) resolveStudents(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	opts, err := listOptions(p.Args)
	if err != nil {
		return nil, err
	}
	return s.students.List(opts)
}

func (s *Schema) resolveCreateStudent(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}

	input := createStudentInput{FullName: argString(p.Args, "fullName")}
	if v := optStringArg(p.Args, "email"); v != nil {
		input.Email = *v
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalid, err, "invalid student input")
	}

	classRoomID, err := argID(p.Args, "classRoom")
	if err != nil {
		return nil, err
	}
	guardianIDs, err := idListArg(p.Args, "guardians")
	if err != nil {
		return nil, err
	}

	student := models.Student{
		FullName:           input.FullName,
		Email:              input.Email,
		ClassRoomID:        classRoomID,
		RegistrationNumber: optStringArg(p.Args, "registrationNumber"),
		DOB:                optDateArg(p.Args, "dob"),
		JoinedAt:           optDateArg(p.Args, "joinedAt"),
		Active:             true,
	}
	if v := optStringArg(p.Args, "phone"); v != nil {
		student.Phone = *v
	}
	if v := optStringArg(p.Args, "religion"); v != nil {
		student.Religion = *v
	}
	if v := optGenderArg(p.Args, "gender"); v != nil {
		student.Gender = *v
	}
	if v := optBoolArg(p.Args, "active"); v != nil {
		student.Active = *v
	}

	if err := s.students.Create(&student, guardianIDs); err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *Schema) resolveUpdateStudent(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	classRoomID, err := optIDArg(p.Args, "classRoom")
	if err != nil {
		return nil, err
	}
	guardianIDs, err := idListArg(p.Args, "guardians")
	if err != nil {
		return nil, err
	}

	patch := repository.StudentPatch{
		FullName:           optStringArg(p.Args, "fullName"),
		ClassRoomID:        classRoomID,
		RegistrationNumber: optStringArg(p.Args, "registrationNumber"),
		Phone:              optStringArg(p.Args, "phone"),
		Email:              optStringArg(p.Args, "email"),
		DOB:                optDateArg(p.Args, "dob"),
		JoinedAt:           optDateArg(p.Args, "joinedAt"),
		Gender:             optGenderArg(p.Args, "gender"),
		Religion:           optStringArg(p.Args, "religion"),
		Active:             optBoolArg(p.Args, "active"),
	}
	return s.students.Update(id, patch, guardianIDs)
}

func (s *Schema) resolveDeleteStudent(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.students.Delete(id)
}
