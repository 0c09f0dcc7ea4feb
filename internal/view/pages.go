package view

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/msomdec/job-board/internal/domain"
)

// Page is the body of view v. Lists are taken from slots, so a page
// rendered with empty slots has empty list containers for a later patch.
func Page(v domain.View, data PageData, slots Slots) templ.Component {
	switch v {
	case domain.ViewProfile:
		return ProfilePage(data.User, data.CV)
	case domain.ViewJobs:
		return JobsPage(data.User, slots)
	case domain.ViewEmployer:
		return EmployerPage(data.User, slots)
	case domain.ViewSubscribe:
		return SubscribePage(data.User)
	case domain.ViewAdmin:
		return AdminPage(slots)
	default:
		return HomePage()
	}
}

func section(h *htmlWriter, v domain.View, body func()) {
	h.raw(`<section id="` + string(v) + `" class="page-section active">`)
	body()
	h.raw(`</section>`)
}

func list(ctx context.Context, h *htmlWriter, slots Slots, target, heading string) {
	h.raw(`<h3>`)
	h.text(heading)
	h.raw(`</h3><div id="` + target + `" class="job-list">`)
	h.render(ctx, slots.Get(target))
	h.raw(`</div>`)
}

func HomePage() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		section(h, domain.ViewHome, func() {
			h.raw(`<div class="hero"><h1>Find the job that fits your skills</h1>`)
			h.raw(`<p>Build a profile, get matched with openings and apply in one click.</p>`)
			h.raw(`<a class="cta-button" href="/?view=profile" data-page="profile" data-on:click__prevent="@get('/views/profile')">Create Profile</a>`)
			h.raw(`<a class="cta-button" href="/?view=employer" data-page="employer" data-on:click__prevent="@get('/views/employer')">Post a Job</a></div>`)
		})
	})
}

func ProfilePage(user *domain.User, cv *domain.CVUpload) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		section(h, domain.ViewProfile, func() {
			var u domain.User
			if user != nil {
				u = *user
			}
			h.raw(`<h2>Your Profile</h2><form id="profileForm" method="post" action="/profile">`)
			input(h, "name", "Full Name", "text", u.Name, true)
			input(h, "email", "Email", "email", u.Email, true)
			input(h, "skills", "Skills (comma separated)", "text", joinSkills(u.Skills), false)
			input(h, "education", "Education", "text", u.Education, false)
			h.raw(`<label for="role">I am a</label><select id="role" name="role">`)
			option(h, string(domain.RoleJobSeeker), "Job Seeker", u.Role != domain.RoleEmployer)
			option(h, string(domain.RoleEmployer), "Employer", u.Role == domain.RoleEmployer)
			h.raw(`</select><button type="submit">Save Profile</button></form>`)

			h.raw(`<h3>Upload CV</h3>`)
			if cv != nil {
				h.raw(`<p class="cv-current">Current CV: <a href="/cv">`)
				h.text(cv.Name)
				h.raw(`</a> (`)
				h.raw(strconv.FormatInt(cv.Size, 10))
				h.raw(` bytes)</p>`)
			}
			h.raw(`<form method="post" action="/cv" enctype="multipart/form-data">`)
			h.raw(`<input type="file" id="cvUpload" name="cv" accept=".pdf,.doc,.docx,.txt" required>`)
			h.raw(`<button type="submit">Upload</button></form>`)
		})
	})
}

func JobsPage(user *domain.User, slots Slots) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		section(h, domain.ViewJobs, func() {
			h.raw(`<h2>Jobs For You</h2>`)
			switch {
			case user == nil:
				h.raw(`<p class="hint">Log in and save your profile to see matched jobs.</p>`)
			case !user.IsPaid():
				h.raw(`<p class="hint">Free accounts can browse matches. <a href="/?view=subscribe">Subscribe</a> to apply.</p>`)
			}
			list(ctx, h, slots, TargetRecommended, "Recommended Jobs")
			list(ctx, h, slots, TargetShortlisted, "Shortlisted Jobs")
		})
	})
}

func EmployerPage(user *domain.User, slots Slots) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		section(h, domain.ViewEmployer, func() {
			h.raw(`<h2>Post a Job</h2>`)
			if user == nil {
				h.raw(`<p class="hint">Log in to post jobs.</p>`)
			}
			h.raw(`<form id="postJobForm" method="post" action="/jobs">`)
			input(h, "jobTitle", "Job Title", "text", "", true)
			input(h, "companyName", "Company", "text", "", true)
			h.raw(`<label for="jobDescription">Description</label><textarea id="jobDescription" name="jobDescription"></textarea>`)
			input(h, "skillsRequired", "Skills Required (comma separated)", "text", "", false)
			input(h, "salary", "Salary", "text", "", false)
			input(h, "location", "Location", "text", "", false)
			h.raw(`<button type="submit">Post Job</button></form>`)
			list(ctx, h, slots, TargetPosted, "Your Posted Jobs")
		})
	})
}

func SubscribePage(user *domain.User) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		section(h, domain.ViewSubscribe, func() {
			h.raw(`<h2>Subscription Plans</h2><div class="plans">`)
			h.raw(`<div class="plan"><h3>Free</h3><p>Browse recommended and shortlisted jobs.</p></div>`)
			h.raw(`<div class="plan"><h3>Paid</h3><p>Apply to any job in one click.</p>`)
			if user != nil && user.IsPaid() {
				h.raw(`<p class="current-plan">Your current plan: paid</p>`)
			} else {
				h.raw(`<form method="post" action="/subscribe"><input type="hidden" name="plan" value="paid">`)
				h.raw(`<button type="submit" id="subscribeBtn">Subscribe Now</button></form>`)
			}
			h.raw(`</div></div>`)
		})
	})
}

func AdminPage(slots Slots) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		section(h, domain.ViewAdmin, func() {
			h.raw(`<h2>Admin Dashboard</h2><div id="` + TargetAdminStats + `" class="stats">`)
			h.render(ctx, slots.Get(TargetAdminStats))
			h.raw(`</div>`)
			list(ctx, h, slots, TargetAllJobs, "All Jobs")
			list(ctx, h, slots, TargetAllUsers, "All Users")
		})
	})
}

func input(h *htmlWriter, name, label, typ, value string, required bool) {
	h.raw(`<label for="` + name + `">`)
	h.text(label)
	h.raw(`</label><input type="` + typ + `" id="` + name + `" name="` + name + `" value="`)
	h.text(value)
	h.raw(`"`)
	if required {
		h.raw(` required`)
	}
	h.raw(`>`)
}

func option(h *htmlWriter, value, label string, selected bool) {
	h.raw(`<option value="` + value + `"`)
	if selected {
		h.raw(` selected`)
	}
	h.raw(`>`)
	h.text(label)
	h.raw(`</option>`)
}
