package view

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
)

// Element ids the presenter patches.
const (
	TargetRecommended = "recommendedJobsList"
	TargetShortlisted = "shortlistedJobsList"
	TargetPosted      = "postedJobsList"
	TargetAdminStats  = "adminStats"
	TargetAllJobs     = "allJobsList"
	TargetAllUsers    = "allUsersList"
)

// PageData is what a view shows, read fresh from the store for each render.
type PageData struct {
	User        *domain.User
	CV          *domain.CVUpload
	Recommended []domain.Job
	Shortlisted []domain.Job
	PostedJobs  []domain.Job
	Jobs        []domain.Job
	Users       []domain.User
	Stats       service.AdminStats
}

// Presenter projects records into a Surface. Rendering the same input
// always produces the same markup.
type Presenter struct {
	surface Surface
}

func NewPresenter(surface Surface) *Presenter {
	return &Presenter{surface: surface}
}

// RenderJobs replaces the contents of target with a card per job.
func (p *Presenter) RenderJobs(ctx context.Context, jobs []domain.Job, target string, allowApply bool) error {
	return p.patch(ctx, target, JobCards(jobs, allowApply))
}

func (p *Presenter) RenderPostedJobs(ctx context.Context, jobs []domain.Job, target string) error {
	return p.patch(ctx, target, PostedJobCards(jobs))
}

func (p *Presenter) RenderAdminJobs(ctx context.Context, jobs []domain.Job, target string) error {
	return p.patch(ctx, target, AdminJobCards(jobs))
}

func (p *Presenter) RenderUserSummary(ctx context.Context, users []domain.User, target string) error {
	return p.patch(ctx, target, UserCards(users))
}

func (p *Presenter) RenderAdminStats(ctx context.Context, stats service.AdminStats, target string) error {
	return p.patch(ctx, target, AdminStatsPanel(stats))
}

// RenderView fills every list the view shows.
func (p *Presenter) RenderView(ctx context.Context, v domain.View, data PageData) error {
	switch v {
	case domain.ViewJobs:
		allowApply := data.User != nil && data.User.IsPaid()
		if err := p.RenderJobs(ctx, data.Recommended, TargetRecommended, allowApply); err != nil {
			return err
		}
		return p.RenderJobs(ctx, data.Shortlisted, TargetShortlisted, allowApply)
	case domain.ViewEmployer:
		return p.RenderPostedJobs(ctx, data.PostedJobs, TargetPosted)
	case domain.ViewAdmin:
		if err := p.RenderAdminStats(ctx, data.Stats, TargetAdminStats); err != nil {
			return err
		}
		if err := p.RenderAdminJobs(ctx, data.Jobs, TargetAllJobs); err != nil {
			return err
		}
		return p.RenderUserSummary(ctx, data.Users, TargetAllUsers)
	}
	return nil
}

func (p *Presenter) patch(ctx context.Context, target string, c templ.Component) error {
	if err := p.surface.Patch(ctx, target, c); err != nil {
		return fmt.Errorf("patch %s: %w", target, err)
	}
	return nil
}
