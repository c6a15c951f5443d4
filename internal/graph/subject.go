package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
)

func (s *Schema) resolveSubject(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.subjects.GetByID(id)
}

func (s *Schema) resolveSubjects(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	opts, err := listOptions(p.Args)
	if err != nil {
		return nil, err
	}
	return s.subjects.List(opts)
}

func (s *Schema) resolveCreateSubject(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	name := argString(p.Args, "name")
	if name == "" {
		return nil, apperrors.New(apperrors.KindInvalid, "invalid subject input: name is required")
	}

	subject := models.Subject{Name: name}
	if err := s.subjects.Create(&subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *Schema) resolveUpdateSubject(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	patch := repository.SubjectPatch{Name: optStringArg(p.Args, "name")}
	return s.subjects.Update(id, patch)
}

func (s *Schema) resolveDeleteSubject(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.subjects.Delete(id)
}
