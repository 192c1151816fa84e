package match

import (
	"sort"
	"strings"
	"time"
)

// Factor weights. Title overlap dominates, skills overlap grows with the
// number of matched skills up to a cap, and industry is the weakest signal.
// The absolute values only matter relative to each other.
const (
	titleWeight      = 40.0
	skillWeight      = 5.0
	skillWeightCap   = 25.0
	minSkillMatches  = 1
	locationWeight   = 15.0
	salaryWeight     = 10.0
	jobTypeWeight    = 10.0
	experienceWeight = 10.0
	industryWeight   = 5.0
)

const defaultRecencyDays = 7

// recencyDays maps a recency filter value to a maximum posting age.
var recencyDays = map[string]int{
	"1day":   1,
	"3days":  3,
	"1week":  7,
	"2weeks": 14,
	"1month": 30,
}

// CalculateMatches scores and ranks the candidate postings for a profile.
// Applied, excluded, and stale postings are dropped before scoring; everything
// else is returned, including zero-score postings, so callers sending a
// recency-sorted pool degrade to recency order when the profile carries no
// signal. The sort is stable: equal scores keep their input order.
func CalculateMatches(profile Profile, prefs Preferences, jobs []Posting, appliedJobIDs []string) []JobMatch {
	return calculateMatchesAt(time.Now().UTC(), profile, prefs, jobs, appliedJobIDs)
}

func calculateMatchesAt(now time.Time, profile Profile, prefs Preferences, jobs []Posting, appliedJobIDs []string) []JobMatch {
	applied := toLowerSet(appliedJobIDs)
	excludedCompanies := toLowerSet(prefs.ExcludedCompanies)
	excludedIndustries := toLowerSet(prefs.ExcludedIndustries)
	cutoff := now.AddDate(0, 0, -recencyCutoffDays(prefs.RecencyFilter))

	matches := make([]JobMatch, 0, len(jobs))
	for _, job := range jobs {
		if applied[strings.ToLower(job.ID)] {
			continue
		}
		if excludedCompanies[strings.ToLower(strings.TrimSpace(job.CompanyName))] {
			continue
		}
		if job.Industry != "" && excludedIndustries[strings.ToLower(strings.TrimSpace(job.Industry))] {
			continue
		}
		if job.CreatedAt.Before(cutoff) {
			continue
		}
		matches = append(matches, scoreJob(profile, prefs, job))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SortScore > matches[j].SortScore
	})
	return matches
}

func recencyCutoffDays(filter string) int {
	if days, ok := recencyDays[strings.ToLower(strings.TrimSpace(filter))]; ok {
		return days
	}
	return defaultRecencyDays
}

func scoreJob(profile Profile, prefs Preferences, job Posting) JobMatch {
	m := JobMatch{Job: job, MatchReasons: []ReasonCode{}}

	if titleMatches(profile.JobTitles, job.Title) {
		m.SortScore += titleWeight
		m.MatchReasons = append(m.MatchReasons, ReasonTitle)
	}

	// An explicit location match scores; location_flexible merely means a
	// non-matching location is not held against the posting.
	if locationMatches(profile.PreferredLocation, job.Location) {
		m.SortScore += locationWeight
		m.MatchReasons = append(m.MatchReasons, ReasonLocation)
	}

	if salaryOverlaps(profile.SalaryMin, profile.SalaryMax, job.SalaryMin, job.SalaryMax) {
		m.SortScore += salaryWeight
		m.MatchReasons = append(m.MatchReasons, ReasonSalary)
	}

	if containsFold(profile.JobTypes, job.JobType) {
		m.SortScore += jobTypeWeight
		m.MatchReasons = append(m.MatchReasons, ReasonJobType)
	}

	if profile.ExperienceLevel != "" && strings.EqualFold(strings.TrimSpace(profile.ExperienceLevel), strings.TrimSpace(job.JobLevel)) {
		m.SortScore += experienceWeight
		m.MatchReasons = append(m.MatchReasons, ReasonExperience)
	}

	if n := countSkillMatches(profile.Skills, job.Description+"\n"+job.Requirements); n >= minSkillMatches {
		score := float64(n) * skillWeight
		if score > skillWeightCap {
			score = skillWeightCap
		}
		m.SortScore += score
		m.MatchReasons = append(m.MatchReasons, ReasonSkills)
	}

	if containsFold(profile.Industries, job.Industry) {
		m.SortScore += industryWeight
		m.MatchReasons = append(m.MatchReasons, ReasonIndustry)
	}

	return m
}

func titleMatches(titles []string, jobTitle string) bool {
	haystack := strings.ToLower(jobTitle)
	for _, title := range titles {
		needle := strings.ToLower(strings.TrimSpace(title))
		if needle != "" && strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func locationMatches(preferred, jobLocation string) bool {
	preferred = strings.ToLower(strings.TrimSpace(preferred))
	jobLocation = strings.ToLower(strings.TrimSpace(jobLocation))
	if preferred == "" || jobLocation == "" {
		return false
	}
	return preferred == jobLocation || strings.Contains(preferred, jobLocation)
}

// salaryOverlaps reports closed-interval intersection. A missing bound on
// either side leaves that end open; both sides absent means no signal.
func salaryOverlaps(profileMin, profileMax, jobMin, jobMax *float64) bool {
	if (profileMin == nil && profileMax == nil) || (jobMin == nil && jobMax == nil) {
		return false
	}
	if profileMin != nil && jobMax != nil && *profileMin > *jobMax {
		return false
	}
	if profileMax != nil && jobMin != nil && *jobMin > *profileMax {
		return false
	}
	return true
}

func countSkillMatches(skills []string, text string) int {
	haystack := strings.ToLower(text)
	count := 0
	for _, skill := range skills {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle != "" && strings.Contains(haystack, needle) {
			count++
		}
	}
	return count
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	if target == "" {
		return false
	}
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func toLowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed != "" {
			set[trimmed] = true
		}
	}
	return set
}
