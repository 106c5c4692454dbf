// Package sqlite provides a SQLite-backed club storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/storage/sqlitemigrate"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/storage"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/storage/sqlite/migrations"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var tracer = otel.Tracer("github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/storage/sqlite")

// Store persists club sign-ups in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite club store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "club.sqlite."+op, trace.WithAttributes(attribute.String("db.system", "sqlite")))
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, storage.ErrAlreadyExists) && !errors.Is(err, storage.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// CreateMember inserts one member. Emails are unique case-insensitively.
func (s *Store) CreateMember(ctx context.Context, member storage.Member) (err error) {
	ctx, span := startSpan(ctx, "CreateMember")
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(member.ID) == "" {
		return fmt.Errorf("member id is required")
	}
	if strings.TrimSpace(member.Email) == "" {
		return fmt.Errorf("member email is required")
	}
	joinedAt := member.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO members (
		   id, name, email, phone, branch, section, interest, message, joined_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		member.ID,
		member.Name,
		member.Email,
		member.Phone,
		member.Branch,
		member.Section,
		member.Interest,
		member.Message,
		toMillis(joinedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "members.email") {
				return storage.ErrEmailTaken
			}
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

// GetMember returns one member by id.
func (s *Store) GetMember(ctx context.Context, id string) (_ storage.Member, err error) {
	ctx, span := startSpan(ctx, "GetMember")
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return storage.Member{}, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, phone, branch, section, interest, message, joined_at
		 FROM members WHERE id = ?`,
		strings.TrimSpace(id),
	)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Member{}, storage.ErrNotFound
		}
		return storage.Member{}, fmt.Errorf("get member: %w", err)
	}
	return member, nil
}

// ListMembers returns every member, newest first.
func (s *Store) ListMembers(ctx context.Context) (_ []storage.Member, err error) {
	ctx, span := startSpan(ctx, "ListMembers")
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, phone, branch, section, interest, message, joined_at
		 FROM members ORDER BY joined_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]storage.Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

// CountMembers returns the number of members.
func (s *Store) CountMembers(ctx context.Context) (_ int, err error) {
	ctx, span := startSpan(ctx, "CountMembers")
	defer func() { endSpan(span, err) }()

	return s.count(ctx, "members")
}

// CreateRegistration inserts one registration. The unique indexes decide
// conflicts; a submission colliding on both email and roll number reports the
// email.
func (s *Store) CreateRegistration(ctx context.Context, registration storage.Registration) (err error) {
	ctx, span := startSpan(ctx, "CreateRegistration")
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(registration.ID) == "" {
		return fmt.Errorf("registration id is required")
	}
	if strings.TrimSpace(registration.Email) == "" || strings.TrimSpace(registration.RollNumber) == "" {
		return fmt.Errorf("registration email and roll number are required")
	}
	registeredAt := registration.RegisteredAt
	if registeredAt.IsZero() {
		registeredAt = time.Now()
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO registrations (
		   id, name, email, phone, roll_number, branch, year, section, interest, registered_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		registration.ID,
		registration.Name,
		registration.Email,
		registration.Phone,
		registration.RollNumber,
		registration.Branch,
		registration.Year,
		registration.Section,
		registration.Interest,
		toMillis(registeredAt),
	)
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return fmt.Errorf("create registration: %w", err)
	}
	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "registrations.email"):
		return storage.ErrEmailTaken
	case strings.Contains(message, "registrations.roll_number"):
		taken, lookupErr := s.exists(ctx, `SELECT 1 FROM registrations WHERE email = ? COLLATE NOCASE`, registration.Email)
		if lookupErr != nil {
			return fmt.Errorf("check registration email: %w", lookupErr)
		}
		if taken {
			return storage.ErrEmailTaken
		}
		return storage.ErrRollNumberTaken
	}
	return storage.ErrAlreadyExists
}

// GetRegistration returns one registration by id.
func (s *Store) GetRegistration(ctx context.Context, id string) (_ storage.Registration, err error) {
	ctx, span := startSpan(ctx, "GetRegistration")
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return storage.Registration{}, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, phone, roll_number, branch, year, section, interest, registered_at
		 FROM registrations WHERE id = ?`,
		strings.TrimSpace(id),
	)
	registration, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Registration{}, storage.ErrNotFound
		}
		return storage.Registration{}, fmt.Errorf("get registration: %w", err)
	}
	return registration, nil
}

// ListRegistrations returns every registration, newest first.
func (s *Store) ListRegistrations(ctx context.Context) (_ []storage.Registration, err error) {
	ctx, span := startSpan(ctx, "ListRegistrations")
	defer func() { endSpan(span, err) }()

	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, phone, roll_number, branch, year, section, interest, registered_at
		 FROM registrations ORDER BY registered_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]storage.Registration, 0)
	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		registrations = append(registrations, registration)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return registrations, nil
}

// CountRegistrations returns the number of registrations.
func (s *Store) CountRegistrations(ctx context.Context) (_ int, err error) {
	ctx, span := startSpan(ctx, "CountRegistrations")
	defer func() { endSpan(span, err) }()

	return s.count(ctx, "registrations")
}

func (s *Store) count(ctx context.Context, table string) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (storage.Member, error) {
	var (
		member   storage.Member
		joinedAt int64
	)
	if err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.Phone,
		&member.Branch,
		&member.Section,
		&member.Interest,
		&member.Message,
		&joinedAt,
	); err != nil {
		return storage.Member{}, err
	}
	member.JoinedAt = fromMillis(joinedAt)
	return member, nil
}

func scanRegistration(row rowScanner) (storage.Registration, error) {
	var (
		registration storage.Registration
		registeredAt int64
	)
	if err := row.Scan(
		&registration.ID,
		&registration.Name,
		&registration.Email,
		&registration.Phone,
		&registration.RollNumber,
		&registration.Branch,
		&registration.Year,
		&registration.Section,
		&registration.Interest,
		&registeredAt,
	); err != nil {
		return storage.Registration{}, err
	}
	registration.RegisteredAt = fromMillis(registeredAt)
	return registration, nil
}

func (s *Store) exists(ctx context.Context, query string, arg any) (bool, error) {
	var one int
	err := s.sqlDB.QueryRowContext(ctx, query, arg).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.Store = (*Store)(nil)
