package questionnaire

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDefinition = errors.New("invalid questionnaire definition")

// Questionnaire is an immutable set of sections. Accessors return copies.
type Questionnaire struct {
	sections  []Section
	sectionIx map[string]int
	questions map[string]Question
	owner     map[string]string
}

func New(sections []Section) (*Questionnaire, error) {
	q := &Questionnaire{
		sections:  make([]Section, 0, len(sections)),
		sectionIx: make(map[string]int, len(sections)),
		questions: make(map[string]Question),
		owner:     make(map[string]string),
	}

	for _, s := range sections {
		sid := strings.TrimSpace(s.ID)
		if sid == "" {
			return nil, fmt.Errorf("%w: empty section id", ErrInvalidDefinition)
		}
		if _, dup := q.sectionIx[sid]; dup {
			return nil, fmt.Errorf("%w: duplicate section %s", ErrInvalidDefinition, sid)
		}

		for _, qu := range s.Questions {
			if strings.TrimSpace(qu.ID) == "" {
				return nil, fmt.Errorf("%w: empty question id in section %s", ErrInvalidDefinition, sid)
			}
			if !qu.Kind.Valid() {
				return nil, fmt.Errorf("%w: question %s has unknown type %q", ErrInvalidDefinition, qu.ID, qu.Kind)
			}
			if qu.Kind != KindBoolean && len(qu.Options) == 0 {
				return nil, fmt.Errorf("%w: question %s has no options", ErrInvalidDefinition, qu.ID)
			}
			if prev, dup := q.owner[qu.ID]; dup {
				return nil, fmt.Errorf("%w: question %s defined in %s and %s", ErrInvalidDefinition, qu.ID, prev, sid)
			}
			q.owner[qu.ID] = sid
			q.questions[qu.ID] = qu.clone()
		}

		q.sectionIx[sid] = len(q.sections)
		q.sections = append(q.sections, s.clone())
	}

	return q, nil
}

func MustNew(sections []Section) *Questionnaire {
	q, err := New(sections)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Questionnaire) Sections() []Section {
	out := make([]Section, 0, len(q.sections))
	for _, s := range q.sections {
		out = append(out, s.clone())
	}
	return out
}

func (q *Questionnaire) Section(id string) (Section, bool) {
	i, ok := q.sectionIx[id]
	if !ok {
		return Section{}, false
	}
	return q.sections[i].clone(), true
}

func (q *Questionnaire) Question(id string) (Question, bool) {
	qu, ok := q.questions[id]
	if !ok {
		return Question{}, false
	}
	return qu.clone(), true
}

// SectionOf returns the id of the section that owns the question.
func (q *Questionnaire) SectionOf(questionID string) (string, bool) {
	s, ok := q.owner[questionID]
	return s, ok
}

func (q *Questionnaire) Flatten() []FlatQuestion {
	out := make([]FlatQuestion, 0, len(q.questions))
	for _, s := range q.sections {
		for _, qu := range s.Questions {
			out = append(out, FlatQuestion{Question: qu.clone(), Section: s.ID})
		}
	}
	return out
}

func (q *Questionnaire) QuestionCount() int {
	return len(q.questions)
}
