package model

import (
	"encoding/json"
	"time"
)

// Action tags the kind of mutation or event an audit record describes.
type Action string

// Audit actions.
const (
	ActionSave          Action = "save"
	ActionNote          Action = "note"
	ActionManagePlus    Action = "manage:plus"
	ActionManageMinus   Action = "manage:minus"
	ActionDelete        Action = "delete"
	ActionImportMerge   Action = "import-merge"
	ActionImportReplace Action = "import-replace"
	ActionBackupCreate  Action = "backup-create"
	ActionViewDetail    Action = "view-detail"
)

// Label returns the wording used when the action is listed to operators.
func (a Action) Label() string {
	switch a {
	case ActionManagePlus:
		return "manage: fill"
	case ActionManageMinus:
		return "manage: withdraw"
	}
	return string(a)
}

// Unit is the granularity an operator counts stock in.
type Unit string

// Units.
const (
	UnitPiece Unit = "piece"
	UnitPack  Unit = "pack"
	UnitSmall Unit = "small"
)

// ChangeRecord is an immutable audit log entry describing one mutation.
type ChangeRecord struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Article   string    `json:"article,omitempty"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`

	// Stock movements.
	Delta       int  `json:"-"`
	Unit        Unit `json:"unit,omitempty"`
	InputAmount int  `json:"input_amt,omitempty"`
	Qty         *int `json:"qty,omitempty"`

	// Saves carry the diff summary.
	Summary string `json:"-"`

	// Imports carry the number of accepted rows.
	Count int `json:"count,omitempty"`
}

type plainRecord ChangeRecord

// MarshalJSON writes Delta or Summary as the single "change" field: a signed
// piece count for stock movements, the diff text for saves.
func (r ChangeRecord) MarshalJSON() ([]byte, error) {
	var change any
	switch {
	case r.Summary != "":
		change = r.Summary
	case r.Delta != 0:
		change = r.Delta
	}
	return json.Marshal(struct {
		plainRecord
		Change any `json:"change,omitempty"`
	}{plainRecord(r), change})
}

// UnmarshalJSON reads a numeric "change" into Delta and a string into
// Summary.
func (r *ChangeRecord) UnmarshalJSON(data []byte) error {
	aux := struct {
		*plainRecord
		Change json.RawMessage `json:"change"`
	}{plainRecord: (*plainRecord)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Change) == 0 || string(aux.Change) == "null" {
		return nil
	}
	if aux.Change[0] == '"' {
		return json.Unmarshal(aux.Change, &r.Summary)
	}
	return json.Unmarshal(aux.Change, &r.Delta)
}
