package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
)

type createGuardianInput struct {
	FullName string `validate:"required"`
	Email    string `validate:"omitempty,email"`
}

func (s *Schema) resolveGuardian(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.guardians.GetByID(id)
}

func (s *Schema) resolveGuardians(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	opts, err := listOptions(p.Args)
	if err != nil {
		return nil, err
	}
	return s.guardians.List(opts)
}

func (s *Schema) resolveCreateGuardian(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}

	input := createGuardianInput{FullName: argString(p.Args, "fullName")}
	if v := optStringArg(p.Args, "email"); v != nil {
		input.Email = *v
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalid, err, "invalid guardian input")
	}

	guardian := models.Guardian{
		FullName: input.FullName,
		Email:    input.Email,
		IDNumber: optStringArg(p.Args, "idNumber"),
		DOB:      optDateArg(p.Args, "dob"),
		Active:   true,
	}
	if v := optStringArg(p.Args, "phone"); v != nil {
		guardian.Phone = *v
	}
	if v := optStringArg(p.Args, "religion"); v != nil {
		guardian.Religion = *v
	}
	if v := optGenderArg(p.Args, "gender"); v != nil {
		guardian.Gender = *v
	}
	if v := optStringArg(p.Args, "profession"); v != nil {
		guardian.Profession = *v
	}
	if v := optBoolArg(p.Args, "active"); v != nil {
		guardian.Active = *v
	}

	if err := s.guardians.Create(&guardian); err != nil {
		return nil, err
	}
	return &guardian, nil
}

func (s *Schema) resolveUpdateGuardian(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}

	patch := repository.GuardianPatch{
		FullName:   optStringArg(p.Args, "fullName"),
		Phone:      optStringArg(p.Args, "phone"),
		Email:      optStringArg(p.Args, "email"),
		IDNumber:   optStringArg(p.Args, "idNumber"),
		Religion:   optStringArg(p.Args, "religion"),
		DOB:        optDateArg(p.Args, "dob"),
		Gender:     optGenderArg(p.Args, "gender"),
		Profession: optStringArg(p.Args, "profession"),
		Active:     optBoolArg(p.Args, "active"),
	}
	return s.guardians.Update(id, patch)
}

func (s *Schema) resolveDeleteGuardian(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.guardians.Delete(id)
}
