package domain

import (
	"fmt"
	"strconv"
)

// Job is a posting created by an employer. Jobs are immutable once posted.
type Job struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Description   string   `json:"description,omitempty"`
	Skills        []string `json:"skills"`
	Salary        string   `json:"salary,omitempty"`
	Location      string   `json:"location,omitempty"`
	EmployerEmail string   `json:"employerEmail"`
}

func (j Job) RecordKey() string { return strconv.FormatInt(j.ID, 10) }

func (j Job) Validate() error {
	if j.ID <= 0 {
		return fmt.Errorf("%w: job id must be positive", ErrInvalidInput)
	}
	if j.Title == "" || j.Company == "" {
		return fmt.Errorf("%w: job title and company are required", ErrInvalidInput)
	}
	if j.EmployerEmail == "" {
		return fmt.Errorf("%w: job employer email is required", ErrInvalidInput)
	}
	return nil
}

// Application records that a user applied to a job. The pair of job and
// applicant is unique.
type Application struct {
	JobID          int64  `json:"jobId"`
	ApplicantEmail string `json:"applicantEmail"`
}

func (a Application) RecordKey() string {
	return ApplicationKey(a.JobID, a.ApplicantEmail)
}

func (a Application) Validate() error {
	if a.JobID <= 0 || a.ApplicantEmail == "" {
		return fmt.Errorf("%w: application needs a job and an applicant", ErrInvalidInput)
	}
	return nil
}

// ApplicationKey builds the record key for an application.
func ApplicationKey(jobID int64, applicantEmail string) string {
	return strconv.FormatInt(jobID, 10) + "|" + applicantEmail
}
