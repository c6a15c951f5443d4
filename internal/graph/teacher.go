package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
)

type createTeacherInput struct {
	FullName string `validate:"required"`
	Email    string `validate:"omitempty,email"`
}

func (s *Schema) resolveTeacher(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.teachers.GetByID(id)
}

func (s *Schema) resolveTeachers(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	opts, err := listOptions(p.Args)
	if err != nil {
		return nil, err
	}
	return s.teachers.List(opts)
}

func (s *Schema) resolveCreateTeacher(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}

	input := createTeacherInput{FullName: argString(p.Args, "fullName")}
	if v := optStringArg(p.Args, "email"); v != nil {
		input.Email = *v
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalid, err, "invalid teacher input")
	}

	subjectIDs, err := idListArg(p.Args, "subjects")
	if err != nil {
		return nil, err
	}

	teacher := models.Teacher{
		FullName: input.FullName,
		Email:    input.Email,
		IDNumber: optStringArg(p.Args, "idNumber"),
		DOB:      optDateArg(p.Args, "dob"),
		JoinedAt: optDateArg(p.Args, "joinedAt"),
		Active:   true,
	}
	if v := optStringArg(p.Args, "phone"); v != nil {
		teacher.Phone = *v
	}
	if v := optStringArg(p.Args, "religion"); v != nil {
		teacher.Religion = *v
	}
	if v := optGenderArg(p.Args, "gender"); v != nil {
		teacher.Gender = *v
	}
	if v := optBoolArg(p.Args, "active"); v != nil {
		teacher.Active = *v
	}

	if err := s.teachers.Create(&teacher, subjectIDs); err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *Schema) resolveUpdateTeacher(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	subjectIDs, err := idListArg(p.Args, "subjects")
	if err != nil {
		return nil, err
	}

	patch := repository.TeacherPatch{
		FullName: optStringArg(p.Args, "fullName"),
		Phone:    optStringArg(p.Args, "phone"),
		Email:    optStringArg(p.Args, "email"),
		IDNumber: optStringArg(p.Args, "idNumber"),
		Religion: optStringArg(p.Args, "religion"),
		Gender:   optGenderArg(p.Args, "gender"),
		DOB:      optDateArg(p.Args, "dob"),
		JoinedAt: optDateArg(p.Args, "joinedAt"),
		Active:   optBoolArg(p.Args, "active"),
	}
	return s.teachers.Update(id, patch, subjectIDs)
}

func (s *Schema) resolveDeleteTeacher(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.teachers.Delete(id)
}
