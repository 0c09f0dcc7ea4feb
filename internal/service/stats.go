package service

import "github.com/msomdec/job-board/internal/domain"

// AdminStats are the aggregate counts shown on the admin dashboard.
type AdminStats struct {
	JobSeekers          int `json:"totalJobSeekers"`
	Employers           int `json:"totalEmployers"`
	PostedJobs          int `json:"totalPostedJobs"`
	ActiveSubscriptions int `json:"activeSubscriptions"`
}

// ComputeAdminStats projects the user and job collections into counts.
func ComputeAdminStats(users []domain.User, jobs []domain.Job) AdminStats {
	stats := AdminStats{PostedJobs: len(jobs)}
	for _, u := range users {
		switch u.Role {
		case domain.RoleJobSeeker:
			stats.JobSeekers++
		case domain.RoleEmployer:
			stats.Employers++
		}
		if u.IsPaid() {
			stats.ActiveSubscriptions++
		}
	}
	return stats
}
