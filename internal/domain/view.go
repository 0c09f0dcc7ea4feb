package domain

import "fmt"

// View is the single page section currently shown to the user.
type View string

const (
	ViewHome      View = "home"
	ViewProfile   View = "profile"
	ViewJobs      View = "jobs"
	ViewEmployer  View = "employer"
	ViewSubscribe View = "subscribe"
	ViewAdmin     View = "admin"
)

// Views lists every view in navigation order.
var Views = []View{ViewHome, ViewProfile, ViewJobs, ViewEmployer, ViewSubscribe, ViewAdmin}

// ParseView maps a page identifier to a View. An empty string selects home.
func ParseView(s string) (View, error) {
	if s == "" {
		return ViewHome, nil
	}
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown view %q", ErrNotFound, s)
}
