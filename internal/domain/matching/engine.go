// Package matching scores and ranks jobs for a single user.
//
// Everything here is pure: no storage access, no shared state. The usecase
// layer fetches the inputs and hands them over.
package matching

import "strings"

const (
	SkillWeight      = 0.6
	PreferenceWeight = 0.2
	LocationWeight   = 0.2

	preferenceMatch    = 1.0
	preferenceMismatch = 0.5
	locationMatch      = 1.0
	locationMismatch   = 0.7
)

// Profile is the precomputed view of a user used for content scoring.
type Profile struct {
	skills      map[string]struct{}
	jobTypes    map[string]struct{}
	wantsRemote bool
}

func NewProfile(skills []string, jobTypes []string, locationType string) Profile {
	return Profile{
		skills:      toSet(skills),
		jobTypes:    toSet(jobTypes),
		wantsRemote: strings.EqualFold(strings.TrimSpace(locationType), "remote"),
	}
}

type JobFeatures struct {
	SkillsRequired []string
	JobType        string
	IsRemote       bool
}

type ContentBreakdown struct {
	Skill      float64
	Preference float64
	Location   float64
	Total      float64
}

// Content returns the sub-scores and their weighted total, always in [0,1].
func Content(p Profile, j JobFeatures) ContentBreakdown {
	b := ContentBreakdown{
		Skill:      skillMatch(p.skills, j.SkillsRequired),
		Preference: preferenceMismatch,
		Location:   locationMismatch,
	}
	if _, ok := p.jobTypes[j.JobType]; ok {
		b.Preference = preferenceMatch
	}
	if j.IsRemote == p.wantsRemote {
		b.Location = locationMatch
	}
	b.Total = SkillWeight*b.Skill + PreferenceWeight*b.Preference + LocationWeight*b.Location
	return b
}

func ContentScore(p Profile, j JobFeatures) float64 {
	return Content(p, j).Total
}

// skillMatch is the share of the job's required skills the user covers.
// A job that requires nothing scores 0.
func skillMatch(userSkills map[string]struct{}, required []string) float64 {
	req := toSet(required)
	denom := len(req)
	if denom < 1 {
		denom = 1
	}
	hit := 0
	for s := range req {
		if _, ok := userSkills[s]; ok {
			hit++
		}
	}
	return float64(hit) / float64(denom)
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it == "" {
			continue
		}
		out[it] = struct{}{}
	}
	return out
}
