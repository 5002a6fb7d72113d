package seeder

import (
	"prison-jobs/internal/domain/application"
	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/domain/user"
)

const (
	DefaultPassword = "password123"

	AdminEmail     = "admin@alcatraz.com"
	RecruiterEmail = "recruiter@alcatraz.com"
	SeekerEmail    = "seeker@example.com"
)

type sampleUser struct {
	Name  string
	Email string
	Role  user.Role
}

type sampleJob struct {
	Title        string
	Category     string
	Description  string
	Requirements string
	Salary       string
	Location     string
	PostedBy     string
	Status       job.Status
}

var sampleUsers = []sampleUser{
	{Name: "Admin User", Email: AdminEmail, Role: user.RoleAdmin},
	{Name: "Recruiter User", Email: RecruiterEmail, Role: user.RoleRecruiter},
	{Name: "Job Seeker", Email: SeekerEmail, Role: user.RoleJobSeeker},
}

var sampleJobs = []sampleJob{
	{
		Title:        "Prison Guard",
		Category:     "Security",
		Description:  "Responsible for maintaining security within the prison facility.",
		Requirements: "Law enforcement experience, clean criminal record, high school diploma.",
		Salary:       "45000-55000",
		Location:     "Alcatraz Island",
		PostedBy:     RecruiterEmail,
		Status:       job.StatusApproved,
	},
	{
		Title:        "Prison Warden",
		Category:     "Management",
		Description:  "Oversee all prison operations and supervise staff.",
		Requirements: "10+ years in corrections, Bachelor's degree in Criminal Justice.",
		Salary:       "80000-100000",
		Location:     "Alcatraz Island",
		PostedBy:     AdminEmail,
		Status:       job.StatusApproved,
	},
	{
		Title:        "Maintenance Worker",
		Category:     "Facilities",
		Description:  "Maintain and repair prison facilities and equipment.",
		Requirements: "Experience in plumbing, electrical, or general maintenance.",
		Salary:       "35000-45000",
		Location:     "Alcatraz Island",
		PostedBy:     RecruiterEmail,
		Status:       job.StatusApproved,
	},
	{
		Title:        "Kitchen Staff",
		Category:     "Food Service",
		Description:  "Prepare and serve meals for prisoners and staff.",
		Requirements: "Food handling certification, cooking experience.",
		Salary:       "30000-40000",
		Location:     "Alcatraz Island",
		PostedBy:     RecruiterEmail,
		Status:       job.StatusApproved,
	},
	{
		Title:        "Administrative Assistant",
		Category:     "Administration",
		Description:  "Handle administrative tasks for prison operations.",
		Requirements: "Office skills, computer proficiency, discretion.",
		Salary:       "40000-50000",
		Location:     "Alcatraz Island",
		PostedBy:     AdminEmail,
		Status:       job.StatusApproved,
	},
}

var sampleApplication = struct {
	Email     string
	JobTitle  string
	CVURL     string
	CoverNote string
	Status    application.Status
}{
	Email:     SeekerEmail,
	JobTitle:  "Prison Guard",
	CVURL:     "https://example.com/sample_cv.pdf",
	CoverNote: "I am very interested in this position and have experience in security.",
	Status:    application.StatusSubmitted,
}

// Defaults returns the development seeders in dependency order.
func Defaults(passwordCost int) []Seeder {
	return []Seeder{
		UsersSeeder{Password: DefaultPassword, Cost: passwordCost},
		JobsSeeder{},
		ApplicationsSeeder{},
		QuestionnaireSeeder{},
	}
}
