package view

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
)

// JobCards renders one card per job with an Apply button. The button is
// disabled unless allowApply is set.
func JobCards(jobs []domain.Job, allowApply bool) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, job := range jobs {
			h.raw(`<div class="job-card"><h3>`)
			h.text(job.Title)
			h.raw(`</h3><p><strong>Company:</strong> `)
			h.text(job.Company)
			h.raw(`</p><p><strong>Skills:</strong> `)
			h.text(joinSkills(job.Skills))
			h.raw(`</p><p><strong>Salary:</strong> `)
			h.text(job.Salary)
			h.raw(`</p><p><strong>Location:</strong> `)
			h.text(job.Location)
			h.raw(`</p><form method="post" action="/jobs/`)
			h.raw(strconv.FormatInt(job.ID, 10))
			h.raw(`/apply"><button type="submit" class="apply-button" data-job-id="`)
			h.raw(strconv.FormatInt(job.ID, 10))
			h.raw(`"`)
			if !allowApply {
				h.raw(` disabled`)
			}
			h.raw(`>Apply</button></form></div>`)
		}
	})
}

// PostedJobCards lists an employer's jobs by title and company.
func PostedJobCards(jobs []domain.Job) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, job := range jobs {
			h.raw(`<div class="job-card"><h3>`)
			h.text(job.Title)
			h.raw(`</h3><p>`)
			h.text(job.Company)
			h.raw(`</p></div>`)
		}
	})
}

func AdminJobCards(jobs []domain.Job) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, job := range jobs {
			h.raw(`<div class="job-card"><h4>`)
			h.text(job.Title)
			h.raw(`</h4><p>`)
			h.text(job.Company + " - " + job.Location)
			h.raw(`</p></div>`)
		}
	})
}

// UserCards renders a summary per user. Missing name, role or plan show
// as N/A.
func UserCards(users []domain.User) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, u := range users {
			h.raw(`<div class="user-card job-card"><h4>`)
			h.text(orNA(u.Name))
			h.raw(`</h4><p>Email: `)
			h.text(u.Email)
			h.raw(`</p><p>Role: `)
			h.text(orNA(string(u.Role)))
			h.raw(`</p><p>Subscription: `)
			h.text(orNA(string(u.Subscription)))
			h.raw(`</p></div>`)
		}
	})
}

func AdminStatsPanel(stats service.AdminStats) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		stat := func(id, label string, n int) {
			h.raw(`<div class="stat-card"><h4>`)
			h.text(label)
			h.raw(`</h4><p id="` + id + `">`)
			h.raw(strconv.Itoa(n))
			h.raw(`</p></div>`)
		}
		stat("totalJobSeekers", "Job Seekers", stats.JobSeekers)
		stat("totalEmployers", "Employers", stats.Employers)
		stat("totalPostedJobs", "Posted Jobs", stats.PostedJobs)
		stat("activeSubscriptions", "Active Subscriptions", stats.ActiveSubscriptions)
	})
}
