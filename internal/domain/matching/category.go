package matching

import (
	"strings"

	"prison-jobs/internal/domain/questionnaire"
)

type CategoryRule struct {
	Keyword  string
	Sections []string
}

// DefaultCategoryRules maps job category keywords to the sections scored as skills.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Keyword: "Security", Sections: []string{questionnaire.SectionSecurityLawEnforcement, questionnaire.SectionPhysicalCapability}},
		{Keyword: "Medical", Sections: []string{questionnaire.SectionMedicalQualifications, questionnaire.SectionPhysicalCapability}},
		{Keyword: "Administration", Sections: []string{questionnaire.SectionAdministrativeOffice}},
		{Keyword: "Food Service", Sections: []string{questionnaire.SectionFoodService}},
		{Keyword: "Facilities", Sections: []string{questionnaire.SectionCleaningMaintenance, questionnaire.SectionPhysicalCapability}},
		{Keyword: "Logistics", Sections: []string{questionnaire.SectionTransportLogistics, questionnaire.SectionPhysicalCapability}},
		{Keyword: "Emergency Response", Sections: []string{questionnaire.SectionEmergencyResponse, questionnaire.SectionPhysicalCapability}},
		{Keyword: "Canine", Sections: []string{questionnaire.SectionCanineOutdoor, questionnaire.SectionSecurityLawEnforcement}},
	}
}

var alwaysRelevant = []string{questionnaire.SectionGeneralEligibility, questionnaire.SectionSoftSkills}

// relevantSections resolves the section ids scored for a category. A category
// that matches no keyword is scored against every mapped section.
func relevantSections(rules []CategoryRule, category string) []string {
	cat := strings.ToLower(category)

	picked := make([]string, 0, 8)
	for _, r := range rules {
		if strings.Contains(cat, strings.ToLower(r.Keyword)) {
			picked = append(picked, r.Sections...)
		}
	}
	if len(picked) == 0 {
		for _, r := range rules {
			picked = append(picked, r.Sections...)
		}
	}
	picked = append(picked, alwaysRelevant...)

	out := make([]string, 0, len(picked))
	seen := make(map[string]struct{}, len(picked))
	for _, id := range picked {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// interestMatches reports whether a job-interest label applies to a category.
// Labels such as "Security / Law Enforcement" also match on any of their
// slash-separated parts.
func interestMatches(category, label string) bool {
	cat := strings.ToLower(category)
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return false
	}
	if strings.Contains(cat, l) {
		return true
	}
	for _, part := range strings.Split(l, "/") {
		part = strings.TrimSpace(part)
		if part != "" && strings.Contains(cat, part) {
			return true
		}
	}
	return false
}
