package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
)

func (s *Schema) resolveClassRoom(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.classRooms.GetByID(id)
}

func (s *Schema) resolveClassRooms(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	opts, err := listOptions(p.Args)
	if err != nil {
		return nil, err
	}
	return s.classRooms.List(opts)
}

func (s *Schema) resolveCreateClassRoom(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	name := argString(p.Args, "name")
	if name == "" {
		return nil, apperrors.New(apperrors.KindInvalid, "invalid classroom input: name is required")
	}
	teacherID, err := argID(p.Args, "classTeacher")
	if err != nil {
		return nil, err
	}

	classRoom := models.ClassRoom{
		Name:           name,
		ClassTeacherID: teacherID,
	}
	if err := s.classRooms.Create(&classRoom); err != nil {
		return nil, err
	}
	return &classRoom, nil
}

func (s *Schema) resolveUpdateClassRoom(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	teacherID, err := optIDArg(p.Args, "classTeacher")
	if err != nil {
		return nil, err
	}

	patch := repository.ClassRoomPatch{
		Name:           optStringArg(p.Args, "name"),
		ClassTeacherID: teacherID,
	}
	return s.classRooms.Update(id, patch)
}

func (s *Schema) resolveDeleteClassRoom(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.classRooms.Delete(id)
}
