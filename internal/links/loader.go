package links

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"reportviewer/internal/metrics"
	"reportviewer/pkg/models"
)

// Loader reads one language's link table from JSON files. It holds no state
// between calls; every Load re-reads the file.
type Loader struct {
	Logger *zap.Logger
	// Table names the language in logs and metrics, e.g. "hindi".
	Table string
}

func NewLoader(logger *zap.Logger, table string) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{Logger: logger.With(zap.String("table", table)), Table: table}
}

// Load returns the link table stored at path. A missing, unreadable or
// malformed file yields an empty table; the cause is logged, never returned.
// Records that fail to decode are skipped and the rest are kept.
func (l *Loader) Load(path string) models.LinkTable {
	table, err := l.read(path)

	switch {
	case err == nil:
		metrics.RecordLinkTableLoad(l.Table, "ok")
		return table
	case errors.Is(err, fs.ErrNotExist):
		metrics.RecordLinkTableLoad(l.Table, "missing")
		l.Logger.Warn("link table not found", zap.String("path", path))
	default:
		metrics.RecordLinkTableLoad(l.Table, "error")
		l.Logger.Error("load link table failed", zap.String("path", path), zap.Error(err))
	}
	return models.LinkTable{}
}

func (l *Loader) read(path string) (models.LinkTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	table := make(models.LinkTable, len(raw))
	for name, msg := range raw {
		var rec models.LinkRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			metrics.RecordLinkRecordSkipped(l.Table)
			l.Logger.Warn("skip malformed link record",
				zap.String("path", path),
				zap.String("file", name),
				zap.Error(err),
			)
			continue
		}
		table[name] = rec
	}
	return table, nil
}
