package entity

import "time"

// Gender enumerates the accepted member genders.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// GenderOptions lists every accepted Gender value.
func GenderOptions() []string {
	return []string{string(GenderMale), string(GenderFemale), string(GenderOther)}
}

// Member is a registered account. Password holds the derived hash, never the plaintext.
type Member struct {
	ID           int64
	Username     string
	Password     string
	FullName     string
	Gender       Gender
	DateOfBirth  string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity returns the token payload for the member.
func (m *Member) Identity() Identity {
	return Identity{ID: m.ID, Username: m.Username}
}

// OwnerUsername implements Owned. A member owns its own account.
func (m *Member) OwnerUsername() string {
	return m.Username
}
