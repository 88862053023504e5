package upload

import (
	controller "github.com/GameItem-Admin/GameItem-Admin/internal/db/controller/item"
)

// RecordFailure is a record that passed validation but could not be stored.
type RecordFailure struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Error string `json:"error"`
}

// Report summarizes one upload batch.
type Report struct {
	BatchID  string          `json:"batchId"`
	Files    int             `json:"files"`
	Records  int             `json:"records"`
	Inserted int             `json:"inserted"`
	Updated  int             `json:"updated"`
	Skipped  int             `json:"skipped"`
	Failed   []RecordFailure `json:"failed"`
}

func (r *Report) count(outcome controller.Outcome) {
	switch outcome {
	case controller.OutcomeInserted:
		r.Inserted++
	case controller.OutcomeUpdated:
		r.Updated++
	case controller.OutcomeSkipped:
		r.Skipped++
	}
}

// Stored returns the number of records written or already present.
func (r *Report) Stored() int {
	return r.Inserted + r.Updated + r.Skipped
}
