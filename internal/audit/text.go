package audit

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/erazemk/fastenerlib/internal/model"
)

// TimeLayout is the timestamp format of text exports.
const TimeLayout = "2006-01-02 15:04:05"

// Line renders one record as "timestamp | user | action | article | qty".
// Saves show their summary in the last column, imports their row count.
func Line(r model.ChangeRecord, loc *time.Location) string {
	var detail string
	switch {
	case r.Qty != nil:
		detail = strconv.Itoa(*r.Qty)
	case r.Summary != "":
		detail = r.Summary
	case r.Count > 0:
		detail = strconv.Itoa(r.Count)
	}
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		r.Timestamp.In(loc).Format(TimeLayout), r.User, r.Action.Label(), r.Article, detail)
}

// WriteText writes one line per record, in the given order.
func WriteText(w io.Writer, records []model.ChangeRecord, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	for _, r := range records {
		if _, err := io.WriteString(w, Line(r, loc)+"\n"); err != nil {
			return fmt.Errorf("writing audit line: %w", err)
		}
	}
	return nil
}
