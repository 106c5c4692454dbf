package api

import (
	"unicode/utf8"

	apperrors "github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/errors"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/storage"
)

const (
	msgJoinRequired     = "Name, email, and interest are required"
	msgNameTooShort     = "Name must be at least 2 characters long"
	msgEmailInvalid     = "Please provide a valid email address"
	msgPhoneInvalid     = "Please enter a valid phone number (at least 10 digits)"
	msgRegisterRequired = "All fields are required"
	msgEmailTaken       = "This email is already registered!"
	msgRollNumberTaken  = "This roll number is already registered!"
	msgJoinClosed       = "Registration period has ended. Stay tuned for the next semester!"
	msgBodyInvalid      = "Invalid request body"
	msgServerError      = "Server error. Please try again later."
	msgMemberNotFound   = "Member not found"
	msgRegNotFound      = "Registration not found"
	msgJoined           = "Welcome to Game Smiths Club! 🎮"
	msgRegistered       = "Registration successful! Welcome to Game Smiths Club! 🎮"
)

type joinRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Branch   string `json:"branch"`
	Section  string `json:"section"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

// member validates and normalizes the submission.
func (r joinRequest) member() (storage.Member, error) {
	m := storage.Member{
		Name:     trim(r.Name),
		Email:    normalizeEmail(r.Email),
		Phone:    digitsOnly(trim(r.Phone)),
		Branch:   trim(r.Branch),
		Section:  normalizeCode(r.Section),
		Interest: trim(r.Interest),
		Message:  truncateRunes(trim(r.Message), maxMessageRune),
	}
	if m.Name == "" || m.Email == "" || m.Interest == "" {
		return storage.Member{}, apperrors.New(apperrors.CodeFieldsRequired, msgJoinRequired)
	}
	if utf8.RuneCountInString(m.Name) < minNameRunes {
		return storage.Member{}, apperrors.New(apperrors.CodeNameTooShort, msgNameTooShort)
	}
	if !plausibleEmail(m.Email) {
		return storage.Member{}, apperrors.New(apperrors.CodeEmailInvalid, msgEmailInvalid)
	}
	if trim(r.Phone) != "" {
		if len(m.Phone) < minPhoneDigits {
			return storage.Member{}, apperrors.New(apperrors.CodePhoneInvalid, msgPhoneInvalid)
		}
		m.Phone = m.Phone[:minPhoneDigits]
	}
	return m, nil
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	RollNumber string `json:"rollNumber"`
	Branch     string `json:"branch"`
	Year       string `json:"year"`
	Section    string `json:"section"`
	Interest   string `json:"interest"`
}

// registration validates and normalizes the submission.
func (r registerRequest) registration() (storage.Registration, error) {
	reg := storage.Registration{
		Name:       trim(r.Name),
		Email:      normalizeEmail(r.Email),
		Phone:      trim(r.Phone),
		RollNumber: normalizeCode(r.RollNumber),
		Branch:     trim(r.Branch),
		Year:       trim(r.Year),
		Section:    normalizeCode(r.Section),
		Interest:   trim(r.Interest),
	}
	for _, field := range []string{reg.Name, reg.Email, reg.Phone, reg.RollNumber, reg.Branch, reg.Year, reg.Section, reg.Interest} {
		if field == "" {
			return storage.Registration{}, apperrors.New(apperrors.CodeFieldsRequired, msgRegisterRequired)
		}
	}
	return reg, nil
}
