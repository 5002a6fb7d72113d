package questionnaire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnsupportedAnswer = errors.New("unsupported answer value")

// Answer holds exactly one of: a boolean, a single choice, or a list of choices.
// The zero value is an unanswered question.
type Answer struct {
	kind    Kind
	flag    bool
	choice  string
	choices []string
}

func Bool(v bool) Answer {
	return Answer{kind: KindBoolean, flag: v}
}

func Choice(v string) Answer {
	return Answer{kind: KindSelect, choice: v}
}

func Choices(vs ...string) Answer {
	return Answer{kind: KindMultiSelect, choices: append([]string{}, vs...)}
}

func (a Answer) Kind() Kind {
	return a.kind
}

func (a Answer) IsSet() bool {
	return a.kind != ""
}

func (a Answer) IsTrue() bool {
	return a.kind == KindBoolean && a.flag
}

func (a Answer) IsFalse() bool {
	return a.kind == KindBoolean && !a.flag
}

func (a Answer) Choice() (string, bool) {
	if a.kind != KindSelect {
		return "", false
	}
	return a.choice, true
}

func (a Answer) Choices() []string {
	if a.kind != KindMultiSelect {
		return nil
	}
	return append([]string(nil), a.choices...)
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case KindBoolean:
		return json.Marshal(a.flag)
	case KindSelect:
		return json.Marshal(a.choice)
	case KindMultiSelect:
		if a.choices == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.choices)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = Answer{}
		return nil
	}

	switch b[0] {
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedAnswer, err)
		}
		*a = Bool(v)
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedAnswer, err)
		}
		*a = Choice(v)
	case '[':
		var v []string
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedAnswer, err)
		}
		*a = Choices(v...)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAnswer, string(b))
	}
	return nil
}

// AnswerSet maps question ids to answers.
type AnswerSet map[string]Answer

func (s AnswerSet) Get(questionID string) (Answer, bool) {
	if s == nil {
		return Answer{}, false
	}
	a, ok := s[questionID]
	if !ok || !a.IsSet() {
		return Answer{}, false
	}
	return a, true
}

func (s AnswerSet) Clone() AnswerSet {
	if s == nil {
		return nil
	}
	out := make(AnswerSet, len(s))
	for k, v := range s {
		if v.choices != nil {
			v.choices = append([]string(nil), v.choices...)
		}
		out[k] = v
	}
	return out
}
