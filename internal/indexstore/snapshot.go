package indexstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"steamtools/internal/appmanifest"
	"steamtools/internal/library"
	"steamtools/internal/logging"
)

// Snapshot describes one stored index.
type Snapshot struct {
	ID          string    `json:"id"`
	SteamPath   string    `json:"steam_path"`
	BuiltAt     time.Time `json:"built_at"`
	SavedAt     time.Time `json:"saved_at"`
	RecordCount int       `json:"record_count"`
}

// Save stores idx as the snapshot for steamPath, replacing any previous
// one for that path.
func (s *Store) Save(ctx context.Context, steamPath string, idx *library.Index) (Snapshot, error) {
	ctx = ensureContext(ctx)
	if idx == nil {
		return Snapshot{}, errors.New("save snapshot: nil index")
	}
	snap := Snapshot{
		ID:          uuid.NewString(),
		SteamPath:   steamPath,
		BuiltAt:     idx.BuiltAt().UTC(),
		SavedAt:     time.Now().UTC(),
		RecordCount: idx.Len(),
	}
	err := retryOnBusy(ctx, func() error {
		return s.saveTx(ctx, snap, idx)
	})
	if err != nil {
		return Snapshot{}, err
	}
	s.logger.Debug("index snapshot saved",
		logging.String(logging.FieldEventType, "snapshot_saved"),
		logging.String("snapshot_id", snap.ID),
		logging.Int("records", snap.RecordCount))
	return snap, nil
}

func (s *Store) saveTx(ctx context.Context, snap Snapshot, idx *library.Index) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshots WHERE steam_path = ?", snap.SteamPath); err != nil {
		return fmt.Errorf("drop previous snapshot: %w", err)
	}

	report := idx.Report()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, steam_path, built_at, saved_at, record_count, scanned_roots, manifests)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.SteamPath, snap.BuiltAt.UnixNano(), snap.SavedAt.UnixNano(),
		snap.RecordCount, report.ScannedRoots, report.Manifests,
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for pos, root := range report.Roots {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO roots (snapshot_id, position, path) VALUES (?, ?, ?)",
			snap.ID, pos, root,
		); err != nil {
			return fmt.Errorf("insert root: %w", err)
		}
	}

	for pos, skip := range report.Skipped {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO skips (snapshot_id, position, path, reason) VALUES (?, ?, ?, ?)",
			snap.ID, pos, skip.Path, skip.Reason,
		); err != nil {
			return fmt.Errorf("insert skip: %w", err)
		}
	}

	recordStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (snapshot_id, position, app_id, name, library, manifest_path)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer recordStmt.Close()
	depotStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO depots (snapshot_id, position, app_id, depot_id) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare depot insert: %w", err)
	}
	defer depotStmt.Close()

	for pos, rec := range idx.Records() {
		if _, err := recordStmt.ExecContext(ctx, snap.ID, pos, rec.AppID, rec.Name, rec.Library, rec.ManifestPath); err != nil {
			return fmt.Errorf("insert record %s: %w", rec.AppID, err)
		}
		for _, depot := range rec.DepotIDs.Sorted() {
			if _, err := depotStmt.ExecContext(ctx, snap.ID, pos, rec.AppID, depot); err != nil {
				return fmt.Errorf("insert depot %s/%s: %w", rec.AppID, depot, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Latest loads the newest snapshot stored for steamPath.
func (s *Store) Latest(ctx context.Context, steamPath string) (*library.Index, Snapshot, error) {
	ctx = ensureContext(ctx)

	var (
		snap         Snapshot
		builtAt      int64
		savedAt      int64
		scannedRoots int
		manifests    int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, steam_path, built_at, saved_at, record_count, scanned_roots, manifests
		 FROM snapshots WHERE steam_path = ? ORDER BY built_at DESC LIMIT 1`,
		steamPath,
	).Scan(&snap.ID, &snap.SteamPath, &builtAt, &savedAt, &snap.RecordCount, &scannedRoots, &manifests)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("query snapshot: %w", err)
	}
	snap.BuiltAt = time.Unix(0, builtAt).UTC()
	snap.SavedAt = time.Unix(0, savedAt).UTC()

	report := library.Report{ScannedRoots: scannedRoots, Manifests: manifests}
	if report.Roots, err = s.loadRoots(ctx, snap.ID); err != nil {
		return nil, Snapshot{}, err
	}
	if report.Skipped, err = s.loadSkips(ctx, snap.ID); err != nil {
		return nil, Snapshot{}, err
	}
	records, err := s.loadRecords(ctx, snap.ID)
	if err != nil {
		return nil, Snapshot{}, err
	}
	report.Indexed = len(records)

	return library.NewIndex(records, report, snap.BuiltAt), snap, nil
}

func (s *Store) loadRoots(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT path FROM roots WHERE snapshot_id = ? ORDER BY position", id)
	if err != nil {
		return nil, fmt.Errorf("query roots: %w", err)
	}
	defer rows.Close()
	var roots []string
	for rows.Next() {
		var root string
		if err := rows.Scan(&root); err != nil {
			return nil, fmt.Errorf("scan root: %w", err)
		}
		roots = append(roots, root)
	}
	return roots, rows.Err()
}

func (s *Store) loadSkips(ctx context.Context, id string) ([]library.Skip, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT path, reason FROM skips WHERE snapshot_id = ? ORDER BY position", id)
	if err != nil {
		return nil, fmt.Errorf("query skips: %w", err)
	}
	defer rows.Close()
	var skips []library.Skip
	for rows.Next() {
		var skip library.Skip
		if err := rows.Scan(&skip.Path, &skip.Reason); err != nil {
			return nil, fmt.Errorf("scan skip: %w", err)
		}
		skips = append(skips, skip)
	}
	return skips, rows.Err()
}

func (s *Store) loadRecords(ctx context.Context, id string) ([]appmanifest.Record, error) {
	depots, err := s.loadDepots(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT position, app_id, name, library, manifest_path
		 FROM records WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []appmanifest.Record
	for rows.Next() {
		var (
			pos int
			rec appmanifest.Record
		)
		if err := rows.Scan(&pos, &rec.AppID, &rec.Name, &rec.Library, &rec.ManifestPath); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.DepotIDs = appmanifest.NewDepotSet(depots[pos]...)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) loadDepots(ctx context.Context, id string) (map[int][]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT position, depot_id FROM depots WHERE snapshot_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("query depots: %w", err)
	}
	defer rows.Close()
	out := make(map[int][]string)
	for rows.Next() {
		var (
			pos   int
			depot string
		)
		if err := rows.Scan(&pos, &depot); err != nil {
			return nil, fmt.Errorf("scan depot: %w", err)
		}
		out[pos] = append(out[pos], depot)
	}
	return out, rows.Err()
}

// Delete removes the snapshot stored for steamPath. Deleting a missing
// snapshot is not an error.
func (s *Store) Delete(ctx context.Context, steamPath string) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE steam_path = ?", steamPath); err != nil {
			return fmt.Errorf("delete snapshot: %w", err)
		}
		return nil
	})
}
