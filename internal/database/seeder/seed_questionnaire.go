package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"prison-jobs/internal/database"
	"prison-jobs/internal/domain/questionnaire"

	"github.com/google/uuid"
)

// QuestionnaireSeeder stores a complete answer set for the sample job seeker
// unless one already exists.
type QuestionnaireSeeder struct{}

func (QuestionnaireSeeder) Name() string { return "questionnaire_responses" }

func (QuestionnaireSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "questionnaire_responses", "id", "user_id", "answers"); err != nil {
		return err
	}

	def := questionnaire.Default()
	answers := SampleAnswers(def)
	if err := def.Validate(answers); err != nil {
		return err
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return err
	}

	userID, err := userIDByEmail(ctx, db, SeekerEmail)
	if err != nil {
		return err
	}
	if _, err := db.Exec(
		ctx,
		`INSERT INTO questionnaire_responses (id, user_id, answers)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO NOTHING`,
		uuid.New(), userID, b,
	); err != nil {
		return fmt.Errorf("insert questionnaire response: %w", err)
	}
	return nil
}

// SampleAnswers answers every question of def: yes to every boolean except
// the criminal offense question, the first option of every choice question,
// and an interest in security work.
func SampleAnswers(def *questionnaire.Questionnaire) questionnaire.AnswerSet {
	answers := questionnaire.AnswerSet{}
	for _, q := range def.Flatten() {
		switch q.Kind {
		case questionnaire.KindBoolean:
			answers[q.ID] = questionnaire.Bool(q.ID != questionnaire.QuestionCriminalOffense)
		case questionnaire.KindSelect:
			answers[q.ID] = questionnaire.Choice(q.Options[0])
		case questionnaire.KindMultiSelect:
			answers[q.ID] = questionnaire.Choices(q.Options[0])
		}
	}
	answers[questionnaire.QuestionJobInterests] = questionnaire.Choices("Security / Law Enforcement")
	return answers
}
