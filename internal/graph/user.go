package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
	"github.com/lennykioko/School-Mngmt-Backend/internal/services"
)

// requireUser is the access gate: every operation except currentUser and
// tokenAuth needs an authenticated caller before any other logic runs.
func (s *Schema) requireUser(p graphql.ResolveParams) error {
	if UserFromContext(p.Context) == nil {
		return apperrors.Unauthorized()
	}
	return nil
}

type createUserInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (s *Schema) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(id)
}

func (s *Schema) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	opts, err := listOptions(p.Args)
	if err != nil {
		return nil, err
	}
	return s.users.List(opts)
}

// resolveCurrentUser accepts an explicit token or falls back to the
// already-authenticated session. An empty token counts as not supplied.
func (s *Schema) resolveCurrentUser(p graphql.ResolveParams) (interface{}, error) {
	if token := optStringArg(p.Args, "token"); token != nil && *token != "" {
		user, err := s.auth.ValidateToken(*token)
		if err != nil {
			return nil, err
		}
		return user, nil
	}

	user := UserFromContext(p.Context)
	if user == nil {
		return nil, apperrors.New(apperrors.KindNotAuthenticated, "not logged in and user token not provided")
	}
	return user, nil
}

func (s *Schema) resolveTokenAuth(p graphql.ResolveParams) (interface{}, error) {
	user, token, err := s.auth.Authenticate(argString(p.Args, "username"), argString(p.Args, "password"))
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"token": token,
		"user":  user,
	}, nil
}

func (s *Schema) resolveCreateUser(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}

	input := createUserInput{
		Username: argString(p.Args, "username"),
		Email:    argString(p.Args, "email"),
		Password: argString(p.Args, "password"),
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalid, err, "invalid user input")
	}

	hash, err := services.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Active:       true,
	}
	if v := optStringArg(p.Args, "firstName"); v != nil {
		user.FirstName = *v
	}
	if v := optStringArg(p.Args, "lastName"); v != nil {
		user.LastName = *v
	}
	if v := optBoolArg(p.Args, "active"); v != nil {
		user.Active = *v
	}

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Schema) resolveUpdateUser(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}

	patch := repository.UserPatch{
		Username:  optStringArg(p.Args, "username"),
		Email:     optStringArg(p.Args, "email"),
		FirstName: optStringArg(p.Args, "firstName"),
		LastName:  optStringArg(p.Args, "lastName"),
		Active:    optBoolArg(p.Args, "active"),
	}
	if password := optStringArg(p.Args, "password"); password != nil {
		hash, err := services.HashPassword(*password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	return s.users.Update(id, patch)
}

func (s *Schema) resolveDeleteUser(p graphql.ResolveParams) (interface{}, error) {
	if err := s.requireUser(p); err != nil {
		return nil, err
	}
	id, err := argID(p.Args, "id")
	if err != nil {
		return nil, err
	}
	return s.users.Delete(id)
}
