package profiles

import "time"

// UserProfile stores the job-seeking signals a user maintains.
type UserProfile struct {
	UserID            string    `json:"userId"`
	JobTitles         []string  `json:"jobTitles"`
	PreferredLocation string    `json:"preferredLocation,omitempty"`
	SalaryMin         *float64  `json:"salaryMin,omitempty"`
	SalaryMax         *float64  `json:"salaryMax,omitempty"`
	JobTypes          []string  `json:"jobTypes"`
	ExperienceLevel   string    `json:"experienceLevel,omitempty"`
	Skills            []string  `json:"skills"`
	Industries        []string  `json:"industries"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Preferences narrows which postings are recommended to a user.
type Preferences struct {
	UserID             string    `json:"userId"`
	RecencyFilter      string    `json:"recencyFilter"`
	ExcludedCompanies  []string  `json:"excludedCompanies"`
	ExcludedIndustries []string  `json:"excludedIndustries"`
	LocationFlexible   bool      `json:"locationFlexible"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
