// Package models defines the data structures exchanged with the directory
// backend and the client-side rules that operate on them.
package models

import "strings"

// Literal first/last names the backend assigns to a freshly provisioned
// account. A roster entry still carrying both is rendered with a friendly
// placeholder instead of the raw defaults.
const (
	DefaultFirstName = "Имя по умолчанию"
	DefaultLastName  = "Фамилия по умолчанию"
)

// Profile is one person's directory record as served by the backend.
// Field names follow the server schema.
type Profile struct {
	ID           int      `json:"id,omitempty"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	MiddleName   string   `json:"middle_name,omitempty"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Department   string   `json:"department"`
	WorkingHours string   `json:"working_hours,omitempty"`
	Availability string   `json:"availability,omitempty"`
	TelegramLink string   `json:"telegram_link,omitempty"`
	VKLink       string   `json:"vk_link,omitempty"`
	SkypeLink    string   `json:"skype_link,omitempty"`
	WhatsAppLink string   `json:"whatsapp_link,omitempty"`
	PhotoThumb   string   `json:"photo_thumb,omitempty"`
	Projects     []string `json:"projects"`
}

// DisplayName joins last, first and middle name, skipping blanks.
// Returns "" when no name part is set; callers render a placeholder then.
func (p *Profile) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.LastName, p.FirstName, p.MiddleName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// HasDefaultName reports whether the record still carries the backend's
// literal default first and last names.
func (p *Profile) HasDefaultName() bool {
	return p.FirstName == DefaultFirstName && p.LastName == DefaultLastName
}

// Clone returns a deep copy of the profile. The projects slice is copied so
// an edit draft never shares mutable structure with the committed record.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Projects = append([]string(nil), p.Projects...)
	return &c
}
