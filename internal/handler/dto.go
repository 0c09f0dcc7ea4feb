package handler

import (
	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Subscription string   `json:"subscription"`
	Skills       []string `json:"skills"`
	Education    string   `json:"education"`
}

func toUserDTO(u *domain.User) UserDTO {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserDTO{
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Subscription: string(u.Subscription),
		Skills:       skills,
		Education:    u.Education,
	}
}

// JobDTO is the JSON representation of a job.
type JobDTO struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	Salary        string   `json:"salary"`
	Location      string   `json:"location"`
	EmployerEmail string   `json:"employerEmail"`
}

func toJobDTO(j domain.Job) JobDTO {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	return JobDTO{
		ID:            j.ID,
		Title:         j.Title,
		Company:       j.Company,
		Description:   j.Description,
		Skills:        skills,
		Salary:        j.Salary,
		Location:      j.Location,
		EmployerEmail: j.EmployerEmail,
	}
}

func toJobDTOs(jobs []domain.Job) []JobDTO {
	dtos := make([]JobDTO, len(jobs))
	for i, j := range jobs {
		dtos[i] = toJobDTO(j)
	}
	return dtos
}

// MatchesDTO is the JSON representation of a match result.
type MatchesDTO struct {
	Recommended []JobDTO `json:"recommended"`
	Shortlisted []JobDTO `json:"shortlisted"`
}

func toMatchesDTO(m service.MatchResult) MatchesDTO {
	return MatchesDTO{
		Recommended: toJobDTOs(m.Recommended),
		Shortlisted: toJobDTOs(m.Shortlisted),
	}
}

// ApplicationDTO is the JSON representation of an application.
type ApplicationDTO struct {
	JobID          int64  `json:"jobId"`
	ApplicantEmail string `json:"applicantEmail"`
}

func toApplicationDTO(a *domain.Application) ApplicationDTO {
	return ApplicationDTO{JobID: a.JobID, ApplicantEmail: a.ApplicantEmail}
}
