package matching

import (
	"strings"

	"prison-jobs/internal/domain/questionnaire"
)

type ruleInput struct {
	QuestionID string
	Answer     questionnaire.Answer
	Category   string
}

// rule credits one question. General and Skills are added when Match holds.
type rule struct {
	Name    string
	Match   func(in ruleInput) bool
	General int
	Skills  int
}

func expectAnswer(questionID string, want bool) rule {
	return rule{
		Name: questionID,
		Match: func(in ruleInput) bool {
			if in.QuestionID != questionID {
				return false
			}
			if want {
				return in.Answer.IsTrue()
			}
			return in.Answer.IsFalse()
		},
		General: 1,
	}
}

func weightedForCategory(questionID, categoryWord string) rule {
	return rule{
		Name: questionID + "@" + categoryWord,
		Match: func(in ruleInput) bool {
			return in.QuestionID == questionID &&
				in.Answer.IsTrue() &&
				strings.Contains(strings.ToLower(in.Category), categoryWord)
		},
		Skills: 2,
	}
}

func defaultRules() []rule {
	return []rule{
		expectAnswer(questionnaire.QuestionLegalRightToWork, true),
		expectAnswer(questionnaire.QuestionBackgroundCheck, true),
		expectAnswer(questionnaire.QuestionCriminalOffense, false),
		expectAnswer(questionnaire.QuestionSecureEnvironment, true),
		weightedForCategory(questionnaire.QuestionSecurityExperience, "security"),
		weightedForCategory(questionnaire.QuestionMedicalQualification, "medical"),
		{
			Name:   "affirmative",
			Match:  func(in ruleInput) bool { return in.Answer.IsTrue() },
			Skills: 1,
		},
	}
}

// firstMatch returns the first rule that credits the input.
func firstMatch(rules []rule, in ruleInput) (rule, bool) {
	for _, r := range rules {
		if r.Match(in) {
			return r, true
		}
	}
	return rule{}, false
}
