package usecase

import (
	"context"
	"errors"
	"strings"

	"jobswipe/internal/domain/swipe"
	"jobswipe/internal/domain/tags"
	"jobswipe/internal/domain/user"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Bare addresses only; display-name forms like "Eve <eve@x.io>" fail the email tag.
var emailValidator = validator.New()

type PreferencesInput struct {
	JobTypes     []string
	LocationType string
	MinSalary    *int
}

type CreateUserInput struct {
	Email       string
	Name        string
	Skills      []string
	Preferences *PreferencesInput
}

type UpdateUserInput struct {
	Email  *string
	Name   *string
	Skills *[]string
}

type UserUsecase interface {
	Create(ctx context.Context, in CreateUserInput) (user.User, error)
	Get(ctx context.Context, id uuid.UUID) (user.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (user.User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, in PreferencesInput) (user.User, error)
	ListSwipes(ctx context.Context, id uuid.UUID, limit int) ([]swipe.Swipe, error)
}

type User struct {
	users  user.Repository
	swipes swipe.Repository
}

func NewUserUsecase(users user.Repository, swipes swipe.Repository) *User {
	return &User{users: users, swipes: swipes}
}

func (u *User) Create(ctx context.Context, in CreateUserInput) (user.User, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return user.User{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return user.User{}, invalidInput("name is required")
	}

	prefs := user.DefaultPreferences()
	if in.Preferences != nil {
		prefs, err = buildPreferences(*in.Preferences)
		if err != nil {
			return user.User{}, err
		}
	}

	if err := u.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return user.User{}, err
	}

	created, err := u.users.Create(ctx, user.User{
		Email:       email,
		Name:        name,
		Skills:      tags.Normalize(in.Skills),
		Preferences: prefs,
	})
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return created, nil
}

func (u *User) Get(ctx context.Context, id uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return usr, nil
}

func (u *User) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (user.User, error) {
	var upd user.Update
	if in.Email != nil {
		email, err := normalizeEmail(*in.Email)
		if err != nil {
			return user.User{}, err
		}
		if err := u.ensureEmailFree(ctx, email, id); err != nil {
			return user.User{}, err
		}
		upd.Email = &email
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, invalidInput("name must not be empty")
		}
		upd.Name = &name
	}
	if in.Skills != nil {
		skills := tags.Normalize(*in.Skills)
		upd.Skills = &skills
	}

	updated, err := u.users.Update(ctx, id, upd)
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return updated, nil
}

func (u *User) UpdatePreferences(ctx context.Context, id uuid.UUID, in PreferencesInput) (user.User, error) {
	prefs, err := buildPreferences(in)
	if err != nil {
		return user.User{}, err
	}
	updated, err := u.users.UpdatePreferences(ctx, id, prefs)
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return updated, nil
}

func (u *User) ListSwipes(ctx context.Context, id uuid.UUID, limit int) ([]swipe.Swipe, error) {
	if limit < 0 || limit > 500 {
		return nil, invalidInput("limit must be between 0 and 500")
	}
	if _, err := u.users.GetByID(ctx, id); err != nil {
		return nil, mapUserError(err)
	}
	items, err := u.swipes.ListByUser(ctx, id, limit)
	if err != nil {
		return nil, storageError(err)
	}
	return items, nil
}

func buildPreferences(in PreferencesInput) (user.Preferences, error) {
	lt, ok := user.ParseLocationType(in.LocationType)
	if !ok {
		return user.Preferences{}, invalidInput("location_type must be one of remote, hybrid, onsite")
	}
	if in.MinSalary != nil && *in.MinSalary < 0 {
		return user.Preferences{}, invalidInput("min_salary must not be negative")
	}
	return user.Preferences{
		JobTypes:     tags.Normalize(in.JobTypes),
		LocationType: lt,
		MinSalary:    in.MinSalary,
	}, nil
}

// ensureEmailFree reports ErrEmailTaken when another user owns email. The
// unique index still decides concurrent writers.
func (u *User) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	owner, err := u.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return nil
	case err != nil:
		return mapUserError(err)
	case owner.ID == self:
		return nil
	default:
		return ErrEmailTaken
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", invalidInput("email is required")
	}
	if err := emailValidator.Var(email, "email,max=254"); err != nil {
		return "", invalidInput("email is not valid")
	}
	return email, nil
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, user.ErrEmailTaken):
		return ErrEmailTaken
	default:
		return storageError(err)
	}
}
