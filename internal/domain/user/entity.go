package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
	LocationOnsite LocationType = "onsite"
)

func ParseLocationType(s string) (LocationType, bool) {
	lt := LocationType(strings.ToLower(strings.TrimSpace(s)))
	switch lt {
	case LocationRemote, LocationHybrid, LocationOnsite:
		return lt, true
	}
	return "", false
}

type Preferences struct {
	JobTypes     []string
	LocationType LocationType
	MinSalary    *int
}

// DefaultPreferences mirrors what a freshly registered user gets when the
// client sends no preference block.
func DefaultPreferences() Preferences {
	minSalary := 50000
	return Preferences{
		JobTypes:     []string{"full-time"},
		LocationType: LocationRemote,
		MinSalary:    &minSalary,
	}
}

type User struct {
	ID          uuid.UUID
	Email       string
	Name        string
	Skills      []string
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Update enumerates the fields a caller may change on an existing user.
// Nil means "leave as is". ID and timestamps are not part of it on purpose.
type Update struct {
	Email  *string
	Name   *string
	Skills *[]string
}

func (u Update) Empty() bool {
	return u.Email == nil && u.Name == nil && u.Skills == nil
}
