package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleUnset     Role = ""
	RoleJobSeeker Role = "jobSeeker"
	RoleEmployer  Role = "employer"
)

type Subscription string

const (
	SubscriptionFree Subscription = "free"
	SubscriptionPaid Subscription = "paid"
)

// User represents a job seeker or employer. Email is the identity key.
type User struct {
	Email        string       `json:"email"`
	Name         string       `json:"name,omitempty"`
	Role         Role         `json:"role,omitempty"`
	Subscription Subscription `json:"subscription"`
	Skills       []string     `json:"skills,omitempty"`
	Education    string       `json:"education,omitempty"`
}

func (u User) RecordKey() string { return u.Email }

func (u User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	switch u.Role {
	case RoleUnset, RoleJobSeeker, RoleEmployer:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, u.Role)
	}
	if _, err := ParseSubscription(string(u.Subscription)); err != nil {
		return err
	}
	return nil
}

// IsPaid reports whether the user may apply for jobs.
func (u User) IsPaid() bool {
	return u.Subscription == SubscriptionPaid
}

// ParseRole converts a form value to a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleUnset, RoleJobSeeker, RoleEmployer:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
}

// ParseSubscription converts a plan name to a Subscription.
func ParseSubscription(s string) (Subscription, error) {
	switch p := Subscription(strings.TrimSpace(s)); p {
	case SubscriptionFree, SubscriptionPaid:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown subscription plan %q", ErrInvalidInput, s)
	}
}

// NormalizeEmail trims and lower-cases an email so it can be used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseSkills splits a comma-separated skill list, trimming each entry and
// dropping empty and repeated entries. Order of first occurrence is kept.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		skills = append(skills, s)
	}
	return skills
}
