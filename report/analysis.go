package report

import (
	"regexp"
	"sort"

	"testprep-server/grading"
	"testprep-server/models"
)

// A domain below this percentage is flagged as a focus area.
const focusThreshold = 60

// Questions with no domain on their key row aggregate under this label.
const generalDomain = "General"

// Matches curriculum-standard domain strings like "(6.EE)"; the second
// capture group is the short code used for chart labels and tip lookups.
var domainCodeRe = regexp.MustCompile(`\((\d+)\.([A-Z]+)\)`)

// ShortDomainLabel strips a "(<grade>.<code>)" prefix down to "<code>" for
// chart legibility. Strings that do not match are returned unchanged.
func ShortDomainLabel(domain string) string {
	if m := domainCodeRe.FindStringSubmatch(domain); m != nil {
		return m[2]
	}
	return domain
}

// domainCode extracts the short code from a domain string, or "" when the
// string does not carry one.
func domainCode(domain string) string {
	if m := domainCodeRe.FindStringSubmatch(domain); m != nil {
		return m[2]
	}
	return ""
}

// AggregateDomains groups corrected answers by domain and computes
// correct/total/percentage per group. Answers without a domain count under
// "General". Results are sorted by full domain name for stable output.
func AggregateDomains(answers []models.CorrectedAnswer) []models.DomainPerformance {
	type tally struct {
		correct int
		total   int
	}
	tallies := make(map[string]*tally)
	for _, ans := range answers {
		domain := ans.Domain
		if domain == "" {
			domain = generalDomain
		}
		t, ok := tallies[domain]
		if !ok {
			t = &tally{}
			tallies[domain] = t
		}
		t.total++
		if ans.IsCorrect {
			t.correct++
		}
	}

	perfs := make([]models.DomainPerformance, 0, len(tallies))
	for domain, t := range tallies {
		perfs = append(perfs, models.DomainPerformance{
			Domain:     ShortDomainLabel(domain),
			FullDomain: domain,
			Correct:    t.correct,
			Total:      t.total,
			Percentage: grading.Percentage(t.correct, t.total),
		})
	}
	sort.Slice(perfs, func(i, j int) bool {
		return perfs[i].FullDomain < perfs[j].FullDomain
	})
	return perfs
}

// FocusAreas returns the domains scoring below the focus threshold.
func FocusAreas(perfs []models.DomainPerformance) []models.DomainPerformance {
	var focus []models.DomainPerformance
	for _, p := range perfs {
		if p.Percentage < focusThreshold {
			focus = append(focus, p)
		}
	}
	return focus
}

// Recommendation is one entry in the report's recommendations section.
type Recommendation struct {
	Domain string
	Tips   []string
}

// Recommendations builds the study-tip list for the report. Each focus area
// gets its human-readable domain name plus the grade tip set; the generic
// tips are appended to every entry. When no domain is weak, a single
// synthetic "All Domains" entry carries the congratulatory tips instead.
func (lib *TipLibrary) Recommendations(focus []models.DomainPerformance, grade string) []Recommendation {
	if len(focus) == 0 {
		tips := append([]string{}, lib.CongratTips...)
		tips = append(tips, lib.GenericTips...)
		return []Recommendation{{Domain: "All Domains", Tips: tips}}
	}

	recs := make([]Recommendation, 0, len(focus))
	for _, p := range focus {
		name := p.FullDomain
		if code := domainCode(p.FullDomain); code != "" {
			if full, ok := lib.DomainNames[code]; ok {
				name = full
			}
		}
		tips := append([]string{}, lib.tipsForGrade(grade)...)
		tips = append(tips, lib.GenericTips...)
		recs = append(recs, Recommendation{Domain: name, Tips: tips})
	}
	return recs
}
