package graph

import (
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
)

// Argument sets for the CRUD mutations. Create lists required fields as
// non-null; update takes the target id plus every field as optional.

func createUserArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"username":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"firstName": &graphql.ArgumentConfig{Type: graphql.String},
		"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
		"active":    &graphql.ArgumentConfig{Type: graphql.Boolean},
	}
}

func updateUserArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		"username":  &graphql.ArgumentConfig{Type: graphql.String},
		"email":     &graphql.ArgumentConfig{Type: graphql.String},
		"password":  &graphql.ArgumentConfig{Type: graphql.String},
		"firstName": &graphql.ArgumentConfig{Type: graphql.String},
		"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
		"active":    &graphql.ArgumentConfig{Type: graphql.Boolean},
	}
}

func createGuardianArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"fullName":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":      &graphql.ArgumentConfig{Type: graphql.String},
		"email":      &graphql.ArgumentConfig{Type: graphql.String},
		"idNumber":   &graphql.ArgumentConfig{Type: graphql.String},
		"religion":   &graphql.ArgumentConfig{Type: graphql.String},
		"dob":        &graphql.ArgumentConfig{Type: dateScalar},
		"gender":     &graphql.ArgumentConfig{Type: genderEnum},
		"profession": &graphql.ArgumentConfig{Type: graphql.String},
		"active":     &graphql.ArgumentConfig{Type: graphql.Boolean},
	}
}

func updateGuardianArgs() graphql.FieldConfigArgument {
	args := createGuardianArgs()
	args["fullName"] = &graphql.ArgumentConfig{Type: graphql.String}
	args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	return args
}

func createTeacherArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"fullName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":    &graphql.ArgumentConfig{Type: graphql.String},
		"email":    &graphql.ArgumentConfig{Type: graphql.String},
		"idNumber": &graphql.ArgumentConfig{Type: graphql.String},
		"religion": &graphql.ArgumentConfig{Type: graphql.String},
		"gender":   &graphql.ArgumentConfig{Type: genderEnum},
		"dob":      &graphql.ArgumentConfig{Type: dateScalar},
		"joinedAt": &graphql.ArgumentConfig{Type: dateScalar},
		"subjects": &graphql.ArgumentConfig{
			Type:        graphql.NewList(graphql.ID),
			Description: "Subject ids to link; appended to any existing links",
		},
		"active": &graphql.ArgumentConfig{Type: graphql.Boolean},
	}
}

func updateTeacherArgs() graphql.FieldConfigArgument {
	args := createTeacherArgs()
	args["fullName"] = &graphql.ArgumentConfig{Type: graphql.String}
	args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	return args
}

func createStudentArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"fullName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"classRoom": &graphql.ArgumentConfig{
			Type:        graphql.NewNonNull(graphql.ID),
			Description: "ClassRoom id",
		},
		"registrationNumber": &graphql.ArgumentConfig{Type: graphql.String},
		"phone":              &graphql.ArgumentConfig{Type: graphql.String},
		"email":              &graphql.ArgumentConfig{Type: graphql.String},
		"dob":                &graphql.ArgumentConfig{Type: dateScalar},
		"joinedAt":           &graphql.ArgumentConfig{Type: dateScalar},
		"gender":             &graphql.ArgumentConfig{Type: genderEnum},
		"religion":           &graphql.ArgumentConfig{Type: graphql.String},
		"guardians": &graphql.ArgumentConfig{
			Type:        graphql.NewList(graphql.ID),
			Description: "Guardian ids to link; appended to any existing links",
		},
		"active": &graphql.ArgumentConfig{Type: graphql.Boolean},
	}
}

func updateStudentArgs() graphql.FieldConfigArgument {
	args := createStudentArgs()
	args["fullName"] = &graphql.ArgumentConfig{Type: graphql.String}
	args["classRoom"] = &graphql.ArgumentConfig{Type: graphql.ID, Description: "ClassRoom id"}
	args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	return args
}

// Extraction helpers. graphql-go hands coerced argument values over as
// interface{}; these narrow them back down.

func argString(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func optStringArg(args map[string]interface{}, key string) *string {
	if s, ok := args[key].(string); ok {
		return &s
	}
	return nil
}

func optBoolArg(args map[string]interface{}, key string) *bool {
	if b, ok := args[key].(bool); ok {
		return &b
	}
	return nil
}

func optDateArg(args map[string]interface{}, key string) *time.Time {
	if t, ok := args[key].(time.Time); ok {
		return &t
	}
	return nil
}

func optGenderArg(args map[string]interface{}, key string) *models.Gender {
	if g, ok := args[key].(models.Gender); ok {
		return &g
	}
	return nil
}

func argID(args map[string]interface{}, key string) (uuid.UUID, error) {
	s, ok := args[key].(string)
	if !ok {
		return uuid.Nil, apperrors.New(apperrors.KindInvalid, "%s is required", key)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperrors.New(apperrors.KindInvalid, "%s is not a valid id", key)
	}
	return id, nil
}

func optIDArg(args map[string]interface{}, key string) (*uuid.UUID, error) {
	if _, ok := args[key]; !ok {
		return nil, nil
	}
	id, err := argID(args, key)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func idListArg(args map[string]interface{}, key string) ([]uuid.UUID, error) {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, apperrors.New(apperrors.KindInvalid, "%s contains a non-id value", key)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, apperrors.New(apperrors.KindInvalid, "%s contains an invalid id", key)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// listOptions reads the shared search/first/skip arguments plus whichever
// exact filters the field declares (gender, active, classRoom).
func listOptions(args map[string]interface{}) (repository.ListOptions, error) {
	opts := repository.ListOptions{
		Search: argString(args, "search"),
		Gender: optGenderArg(args, "gender"),
		Active: optBoolArg(args, "active"),
	}
	classRoomID, err := optIDArg(args, "classRoom")
	if err != nil {
		return opts, err
	}
	opts.ClassRoomID = classRoomID
	if skip, ok := args["skip"].(int); ok {
		if skip < 0 {
			return opts, apperrors.New(apperrors.KindInvalid, "skip must be non-negative")
		}
		opts.Skip = skip
	}
	if first, ok := args["first"].(int); ok {
		if first < 0 {
			return opts, apperrors.New(apperrors.KindInvalid, "first must be non-negative")
		}
		opts.First = first
	}
	return opts, nil
}
