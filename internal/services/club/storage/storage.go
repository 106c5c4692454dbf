// Package storage defines persistence contracts for club sign-ups.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrEmailTaken indicates the email is already registered in the collection.
	ErrEmailTaken = fmt.Errorf("email taken: %w", ErrAlreadyExists)
	// ErrRollNumberTaken indicates the roll number is already registered.
	ErrRollNumberTaken = fmt.Errorf("roll number taken: %w", ErrAlreadyExists)
)

// Member is one "join the guild" submission.
type Member struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Branch   string    `json:"branch,omitempty"`
	Section  string    `json:"section,omitempty"`
	Interest string    `json:"interest"`
	Message  string    `json:"message,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Registration is one event registration submission.
type Registration struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	RollNumber   string    `json:"rollNumber"`
	Branch       string    `json:"branch"`
	Year         string    `json:"year"`
	Section      string    `json:"section"`
	Interest     string    `json:"interest"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// MemberStore persists guild members.
type MemberStore interface {
	CreateMember(ctx context.Context, member Member) error
	GetMember(ctx context.Context, id string) (Member, error)
	// ListMembers returns members newest first.
	ListMembers(ctx context.Context) ([]Member, error)
	CountMembers(ctx context.Context) (int, error)
}

// RegistrationStore persists event registrations.
type RegistrationStore interface {
	CreateRegistration(ctx context.Context, registration Registration) error
	GetRegistration(ctx context.Context, id string) (Registration, error)
	// ListRegistrations returns registrations newest first.
	ListRegistrations(ctx context.Context) ([]Registration, error)
	CountRegistrations(ctx context.Context) (int, error)
}

// Store is the full club persistence surface.
type Store interface {
	MemberStore
	RegistrationStore
	Close() error
}
