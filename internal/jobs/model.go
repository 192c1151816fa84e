package jobs

import "time"

// JobPosting is a posting in the shared job pool.
type JobPosting struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	CompanyName     string    `json:"companyName"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements,omitempty"`
	SalaryMin       *float64  `json:"salaryMin,omitempty"`
	SalaryMax       *float64  `json:"salaryMax,omitempty"`
	JobType         string    `json:"jobType,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	RemoteWorkType  string    `json:"remoteWorkType,omitempty"`
	WorkDaysPerWeek int       `json:"workDaysPerWeek,omitempty"`
	Department      string    `json:"department,omitempty"`
	JobLevel        string    `json:"jobLevel,omitempty"`
	SourceURL       string    `json:"sourceUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
