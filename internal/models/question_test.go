package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnswerJSON(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		wire   string
	}{
		{"single value collapses to a string", Answer{"07:00"}, `"07:00"`},
		{"multiple values stay an array", Answer{"Carrière", "Finances"}, `["Carrière","Finances"]`},
		{"empty answer is an empty array", Answer{}, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.answer)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.wire {
				t.Fatalf("Marshal() = %s, want %s", data, tt.wire)
			}

			var back Answer
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.answer, back); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnswerUnmarshalRejectsOtherShapes(t *testing.T) {
	for _, wire := range []string{`42`, `{"a":"b"}`, `[1,2]`} {
		var a Answer
		if err := json.Unmarshal([]byte(wire), &a); err == nil {
			t.Errorf("Unmarshal(%s) accepted a non-string shape", wire)
		}
	}
}
