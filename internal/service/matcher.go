package service

import (
	"strings"

	"github.com/msomdec/job-board/internal/domain"
)

// MatchResult holds the jobs matched against a skill set, in the order the
// jobs were given.
type MatchResult struct {
	// Recommended jobs share at least one skill with the user.
	Recommended []domain.Job
	// Shortlisted jobs require only skills the user has. A job that lists
	// no skills is shortlisted for every user.
	Shortlisted []domain.Job
}

// MatchJobs filters jobs against skills. It has no side effects and never
// returns nil slices.
func MatchJobs(skills []string, jobs []domain.Job) MatchResult {
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			have[s] = true
		}
	}

	res := MatchResult{
		Recommended: make([]domain.Job, 0, len(jobs)),
		Shortlisted: make([]domain.Job, 0, len(jobs)),
	}
	for _, job := range jobs {
		overlap, covered := compareSkills(job.Skills, have)
		if overlap {
			res.Recommended = append(res.Recommended, job)
		}
		if covered {
			res.Shortlisted = append(res.Shortlisted, job)
		}
	}
	return res
}

// compareSkills reports whether any required skill is held, and whether all
// of them are.
func compareSkills(required []string, have map[string]bool) (overlap, covered bool) {
	covered = true
	for _, s := range required {
		if have[strings.TrimSpace(s)] {
			overlap = true
		} else {
			covered = false
		}
	}
	return overlap, covered
}
