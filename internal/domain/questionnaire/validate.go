package questionnaire

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidAnswers = errors.New("invalid questionnaire answers")

type FieldError struct {
	QuestionID string `json:"question_id"`
	Message    string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalidAnswers.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.QuestionID+": "+f.Message)
	}
	return ErrInvalidAnswers.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidAnswers
}

// Validate checks answers against the declared question types and options.
// It returns a *ValidationError listing every offending question, or nil.
func (q *Questionnaire) Validate(answers AnswerSet) error {
	var fields []FieldError

	for _, s := range q.sections {
		for _, qu := range s.Questions {
			if msg := checkAnswer(qu, answers); msg != "" {
				fields = append(fields, FieldError{QuestionID: qu.ID, Message: msg})
			}
		}
	}

	unknown := make([]string, 0)
	for id := range answers {
		if _, ok := q.questions[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		fields = append(fields, FieldError{QuestionID: id, Message: "unknown question"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func checkAnswer(qu Question, answers AnswerSet) string {
	a, ok := answers.Get(qu.ID)
	if !ok {
		if qu.Required {
			return "answer is required"
		}
		return ""
	}

	if a.Kind() != qu.Kind {
		return fmt.Sprintf("expected %s answer", qu.Kind)
	}

	switch qu.Kind {
	case KindSelect:
		v, _ := a.Choice()
		if !qu.HasOption(v) {
			return fmt.Sprintf("value %q is not an allowed option", v)
		}
	case KindMultiSelect:
		vs := a.Choices()
		if len(vs) == 0 && qu.Required {
			return "select at least one option"
		}
		seen := make(map[string]struct{}, len(vs))
		for _, v := range vs {
			if !qu.HasOption(v) {
				return fmt.Sprintf("value %q is not an allowed option", v)
			}
			if _, dup := seen[v]; dup {
				return fmt.Sprintf("value %q selected more than once", v)
			}
			seen[v] = struct{}{}
		}
	}
	return ""
}
