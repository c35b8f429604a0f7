package models

import (
	"encoding/json"
	"fmt"
)

type QuestionType string

const (
	QuestionText        QuestionType = "text"
	QuestionSelect      QuestionType = "select"
	QuestionTime        QuestionType = "time"
	QuestionMultiSelect QuestionType = "multiselect"
)

// Question is one step of the onboarding wizard.
type Question struct {
	ID      string       `json:"id" yaml:"id"`
	Text    string       `json:"text" yaml:"text"`
	Type    QuestionType `json:"type" yaml:"type"`
	Options []string     `json:"options,omitempty" yaml:"options,omitempty"`
}

// Answer holds one or more selected values. On the wire it is either a bare
// string (text, select, time questions) or an array of strings (multiselect).
type Answer []string

func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Answer{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer must be a string or an array of strings")
	}
	*a = Answer(many)
	return nil
}

// UserResponse records the answer given to one onboarding question. The store
// appends responses in insertion order and does not de-duplicate by question.
type UserResponse struct {
	QuestionID string `json:"question_id"`
	Answer     Answer `json:"answer"`
}
