package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/erazemk/fastenerlib/internal/model"
)

// BackupVersion is the format version written into backups.
const BackupVersion = 1

// Backup is a full snapshot of items and the audit log.
type Backup struct {
	Version    int                  `json:"version"`
	ExportedAt time.Time            `json:"exported_at"`
	Items      []model.Item         `json:"items"`
	Audit      []model.ChangeRecord `json:"audit"`
}

// BackupFileName is the download name of a backup.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("fastener-library-backup-%s.json", now.Format("2006-01-02-150405"))
}

// WriteBackup encodes b as indented JSON.
func WriteBackup(w io.Writer, b Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}
