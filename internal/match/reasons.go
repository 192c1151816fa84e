package match

// ReasonCode tags why a posting ranked for a user. Codes stay stable across
// releases; display text lives only in ReasonLabel.
type ReasonCode string

const (
	ReasonTitle      ReasonCode = "TITLE_MATCH"
	ReasonLocation   ReasonCode = "LOCATION_MATCH"
	ReasonSalary     ReasonCode = "SALARY_MATCH"
	ReasonJobType    ReasonCode = "JOB_TYPE_MATCH"
	ReasonExperience ReasonCode = "EXPERIENCE_MATCH"
	ReasonSkills     ReasonCode = "SKILLS_MATCH"
	ReasonIndustry   ReasonCode = "INDUSTRY_MATCH"
)

// ReasonLabel maps a reason code to its display string. Unknown codes pass
// through unchanged so a stale client never sees an error for a new code.
func ReasonLabel(code ReasonCode) string {
	switch code {
	case ReasonTitle:
		return "Matches your target roles"
	case ReasonLocation:
		return "In your preferred location"
	case ReasonSalary:
		return "Salary fits your range"
	case ReasonJobType:
		return "Matches your preferred job type"
	case ReasonExperience:
		return "Matches your experience level"
	case ReasonSkills:
		return "Your skills appear in the posting"
	case ReasonIndustry:
		return "In an industry you follow"
	default:
		return string(code)
	}
}
