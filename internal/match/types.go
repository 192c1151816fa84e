package match

import "time"

// Profile captures the job-seeking signals stored for a user. Optional fields
// are pointers or empty values; a missing field simply skips its scoring factor.
type Profile struct {
	JobTitles         []string `json:"job_titles"`
	PreferredLocation string   `json:"preferred_location,omitempty"`
	SalaryMin         *float64 `json:"salary_min,omitempty"`
	SalaryMax         *float64 `json:"salary_max,omitempty"`
	JobTypes          []string `json:"job_type"`
	ExperienceLevel   string   `json:"experience_level,omitempty"`
	Skills            []string `json:"skills"`
	Industries        []string `json:"industries"`
}

// Posting is a candidate job posting supplied by the jobs repository.
type Posting struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	CompanyName     string    `json:"company_name"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements,omitempty"`
	SalaryMin       *float64  `json:"salary_min,omitempty"`
	SalaryMax       *float64  `json:"salary_max,omitempty"`
	JobType         string    `json:"job_type,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	RemoteWorkType  string    `json:"remote_work_type,omitempty"`
	WorkDaysPerWeek int       `json:"work_days_per_week,omitempty"`
	Department      string    `json:"department,omitempty"`
	JobLevel        string    `json:"job_level,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Preferences narrows the candidate pool before scoring.
type Preferences struct {
	RecencyFilter      string   `json:"recency_filter"`
	ExcludedCompanies  []string `json:"excluded_companies"`
	ExcludedIndustries []string `json:"excluded_industries"`
	LocationFlexible   bool     `json:"location_flexible"`
}

// DefaultPreferences returns the preferences applied when a user has not
// saved any: one-week recency, no exclusions, flexible on location.
func DefaultPreferences() Preferences {
	return Preferences{
		RecencyFilter:    "1week",
		LocationFlexible: true,
	}
}

// JobMatch pairs a posting with the reasons it ranked and an internal sort
// score. SortScore is never serialized to API clients.
type JobMatch struct {
	Job          Posting      `json:"job"`
	MatchReasons []ReasonCode `json:"matchReasons"`
	SortScore    float64      `json:"-"`
}
