// Package onboarding holds the questionnaire catalog and the completion
// predicate the routing gate depends on.
package onboarding

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"chronotask/internal/models"
)

//go:embed questions.yaml
var questionsYAML []byte

var questions []models.Question

func init() {
	if err := yaml.Unmarshal(questionsYAML, &questions); err != nil {
		panic(fmt.Sprintf("onboarding: bad embedded question catalog: %v", err))
	}
}

// Questions returns the wizard's question catalog in presentation order.
func Questions() []models.Question {
	return append([]models.Question(nil), questions...)
}

// QuestionCount is the number of catalog questions.
func QuestionCount() int {
	return len(questions)
}

// Complete reports whether onboarding is finished: every catalog question has
// at least one recorded response. Tracking the answered-question set instead
// of a bare count keeps duplicate or out-of-order submissions from faking
// completion.
func Complete(responses []models.UserResponse) bool {
	answered := make(map[string]bool, len(responses))
	for _, r := range responses {
		answered[r.QuestionID] = true
	}
	for _, q := range questions {
		if !answered[q.ID] {
			return false
		}
	}
	return true
}

// Answered returns how many distinct catalog questions have a response.
func Answered(responses []models.UserResponse) int {
	answered := make(map[string]bool, len(responses))
	for _, r := range responses {
		answered[r.QuestionID] = true
	}
	count := 0
	for _, q := range questions {
		if answered[q.ID] {
			count++
		}
	}
	return count
}
