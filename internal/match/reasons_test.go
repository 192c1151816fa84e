package match

import "testing"

func TestReasonLabelKnownCodes(t *testing.T) {
	cases := []struct {
		code ReasonCode
		want string
	}{
		{ReasonTitle, "Matches your target roles"},
		{ReasonLocation, "In your preferred location"},
		{ReasonSalary, "Salary fits your range"},
		{ReasonJobType, "Matches your preferred job type"},
		{ReasonExperience, "Matches your experience level"},
		{ReasonSkills, "Your skills appear in the posting"},
		{ReasonIndustry, "In an industry you follow"},
	}
	for _, tc := range cases {
		if got := ReasonLabel(tc.code); got != tc.want {
			t.Fatalf("code %s: expected %q, got %q", tc.code, tc.want, got)
		}
	}
}

func TestReasonLabelUnknownCodePassthrough(t *testing.T) {
	if got := ReasonLabel(ReasonCode("FUTURE_SIGNAL")); got != "FUTURE_SIGNAL" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
