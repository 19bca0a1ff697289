package reports

import (
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "bias_reports", "r").
	Project("session_id", "SessionID").
	Project("report", "Report").
	Project("archive_key", "ArchiveKey").
	Project("generated_at", "GeneratedAt")

func scanSnapshot(s repository.Scanner) (Snapshot, error) {
	var (
		snap Snapshot
		raw  []byte
	)
	if err := s.Scan(&snap.SessionID, &raw, &snap.ArchiveKey, &snap.GeneratedAt); err != nil {
		return snap, err
	}
	snap.GeneratedAt = snap.GeneratedAt.UTC()

	if err := json.Unmarshal(raw, &snap.Report); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
