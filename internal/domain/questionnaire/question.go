package questionnaire

type Kind string

const (
	KindBoolean     Kind = "boolean"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
)

func (k Kind) Valid() bool {
	switch k {
	case KindBoolean, KindSelect, KindMultiSelect:
		return true
	default:
		return false
	}
}

type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Kind     Kind     `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

func (q Question) HasOption(v string) bool {
	for _, o := range q.Options {
		if o == v {
			return true
		}
	}
	return false
}

func (q Question) clone() Question {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return q
}

type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	AppliesTo   []string   `json:"appliesTo,omitempty"`
}

func (s Section) clone() Section {
	qs := make([]Question, 0, len(s.Questions))
	for _, q := range s.Questions {
		qs = append(qs, q.clone())
	}
	s.Questions = qs
	if s.AppliesTo != nil {
		s.AppliesTo = append([]string(nil), s.AppliesTo...)
	}
	return s
}

// FlatQuestion is a question annotated with the section it belongs to.
type FlatQuestion struct {
	Question
	Section string `json:"section"`
}
