package view

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/msomdec/job-board/internal/domain"
)

const datastarScript = `https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js`

var viewTitles = map[domain.View]string{
	domain.ViewHome:      "Home",
	domain.ViewProfile:   "Profile",
	domain.ViewJobs:      "Jobs",
	domain.ViewEmployer:  "Employers",
	domain.ViewSubscribe: "Subscribe",
	domain.ViewAdmin:     "Admin",
}

// Layout is the full HTML document. body is rendered inside #page.
func Layout(user *domain.User, active domain.View, notice string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>Job Board - `)
		h.text(viewTitles[active])
		h.raw(`</title><script type="module" src="` + datastarScript + `"></script></head><body>`)
		h.raw(`<header class="header"><span class="logo">Job Board</span>`)
		h.render(ctx, Nav(active))
		h.render(ctx, Account(user))
		h.raw(`</header>`)
		h.render(ctx, Notice(notice))
		h.raw(`<main id="page">`)
		h.render(ctx, body)
		h.raw(`</main></body></html>`)
	})
}

// Nav links load a view over SSE and fall back to a full page load.
func Nav(active domain.View) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<nav id="nav" class="nav">`)
		for _, v := range domain.Views {
			h.raw(`<a href="/?view=` + string(v) + `" data-page="` + string(v) + `"`)
			if v == active {
				h.raw(` class="active"`)
			}
			h.raw(` data-on:click__prevent="@get('/views/` + string(v) + `')">`)
			h.text(viewTitles[v])
			h.raw(`</a>`)
		}
		h.raw(`</nav>`)
	})
}

func Account(user *domain.User) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div id="account" class="account">`)
		if user == nil {
			h.raw(`<form method="post" action="/login"><input type="email" name="email" placeholder="Email" required>`)
			h.raw(`<button type="submit" id="loginBtn">Login / Register</button></form>`)
		} else {
			h.raw(`<span>Signed in as `)
			h.text(user.Email)
			h.raw(`</span><form method="post" action="/logout"><button type="submit">Logout</button></form>`)
		}
		h.raw(`</div>`)
	})
}

// Notice shows the message for a notice code. Unknown codes render an
// empty container.
func Notice(code string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		msg := NoticeMessage(code)
		if msg == "" {
			h.raw(`<div id="notice"></div>`)
			return
		}
		h.raw(`<div id="notice" class="notice" role="status">`)
		h.text(msg)
		h.raw(`</div>`)
	})
}

func joinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
