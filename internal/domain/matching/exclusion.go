package matching

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// ExclusionSet holds the jobs a user already swiped, whatever the action.
type ExclusionSet map[uuid.UUID]struct{}

func NewExclusionSet(jobIDs ...uuid.UUID) ExclusionSet {
	out := make(ExclusionSet, len(jobIDs))
	for _, id := range jobIDs {
		if id == uuid.Nil {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}

func (e ExclusionSet) Contains(id uuid.UUID) bool {
	_, ok := e[id]
	return ok
}

// IDs returns the members in ascending order so repeated queries are identical.
func (e ExclusionSet) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(e))
	for id := range e {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}
