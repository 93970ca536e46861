package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestChangeRecordJSON(t *testing.T) {
	qty := 30
	ts := time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name   string
		rec    ChangeRecord
		change string
	}{
		{"withdrawal", ChangeRecord{ID: "1", Action: ActionManageMinus, User: "ana", Timestamp: ts, Delta: -10, Unit: UnitPiece, InputAmount: 10, Qty: &qty}, `"change":-10`},
		{"save", ChangeRecord{ID: "2", Action: ActionSave, User: "ana", Timestamp: ts, Summary: "qty: 10 -> 0"}, `"change":"qty: 10 -> 0"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.rec)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			s := string(data)
			if !strings.Contains(s, tt.change) {
				t.Errorf("json = %s, want %s", s, tt.change)
			}
			if strings.Contains(s, `"delta"`) || strings.Contains(s, `"summary"`) {
				t.Errorf("json = %s, want no delta or summary keys", s)
			}

			var got ChangeRecord
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got.Delta != tt.rec.Delta || got.Summary != tt.rec.Summary || got.Action != tt.rec.Action || !got.Timestamp.Equal(ts) {
				t.Errorf("got %+v, want %+v", got, tt.rec)
			}
		})
	}
}

func TestChangeRecordWithoutChange(t *testing.T) {
	data, err := json.Marshal(ChangeRecord{ID: "3", Action: ActionImportMerge, User: "ana", Count: 4})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"change"`) {
		t.Errorf("json = %s, want no change key", data)
	}

	var got ChangeRecord
	if err := json.Unmarshal([]byte(`{"id":"3","action":"import-merge","change":null,"count":4}`), &got); err != nil {
		t.Fatal(err)
	}
	if got.Count != 4 || got.Delta != 0 || got.Summary != "" {
		t.Errorf("got %+v", got)
	}
}
