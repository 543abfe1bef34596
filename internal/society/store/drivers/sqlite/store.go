package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/strataworks/societyd/internal/society/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Identities() store.Identities           { return &identitiesRepo{db: s.db} }
func (s *Store) Organizations() store.Organizations     { return &organizationsRepo{db: s.db} }
func (s *Store) Profiles() store.Profiles               { return &profilesRepo{db: s.db} }
func (s *Store) ResidentDetails() store.ResidentDetails { return &residentDetailsRepo{db: s.db} }
func (s *Store) StaffDetails() store.StaffDetails       { return &staffDetailsRepo{db: s.db} }
func (s *Store) EmergencyServices() store.EmergencyServices {
	return &emergencyServicesRepo{db: s.db}
}
func (s *Store) Reservations() store.Reservations { return &reservationsRepo{db: s.db} }
func (s *Store) Notices() store.Notices           { return &noticesRepo{db: s.db} }
func (s *Store) Polls() store.Polls               { return &pollsRepo{db: s.db} }
func (s *Store) Events() store.Events             { return &eventsRepo{db: s.db} }
func (s *Store) Amenities() store.Amenities       { return &amenitiesRepo{db: s.db} }
func (s *Store) Bookings() store.Bookings         { return &bookingsRepo{db: s.db} }
func (s *Store) Complaints() store.Complaints     { return &complaintsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapUnique translates sqlite unique-constraint violations into
// store.ErrAlreadyExists. modernc/sqlite reports them as
// "constraint failed: UNIQUE constraint failed: <table>.<column>".
func mapUnique(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
