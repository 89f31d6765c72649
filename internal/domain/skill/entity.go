package skill

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type ContactPreference string

const (
	ContactEmail    ContactPreference = "email"
	ContactWhatsApp ContactPreference = "whatsapp"
	ContactBoth     ContactPreference = "both"
)

func (p ContactPreference) Valid() bool {
	switch p {
	case ContactEmail, ContactWhatsApp, ContactBoth:
		return true
	default:
		return false
	}
}

// Skill is something a user offers to teach or trade.
type Skill struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Title             string
	Description       string
	Category          string
	ContactPreference ContactPreference
	CreatedAt         time.Time
}

// Titles returns the skill titles in order.
func Titles(skills []Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Title)
	}
	return out
}

const (
	MinTitleLen       = 5
	MaxTitleLen       = 100
	MinDescriptionLen = 20
	MaxDescriptionLen = 500
)

// FieldErrors maps each invalid field to its message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Fields() map[string]string {
	return e
}

func (s Skill) Validate() error {
	errs := FieldErrors{}

	if n := utf8.RuneCountInString(strings.TrimSpace(s.Title)); n < MinTitleLen {
		errs["title"] = fmt.Sprintf("Title must be at least %d characters", MinTitleLen)
	} else if n > MaxTitleLen {
		errs["title"] = fmt.Sprintf("Title must not exceed %d characters", MaxTitleLen)
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(s.Description)); n < MinDescriptionLen {
		errs["description"] = fmt.Sprintf("Description must be at least %d characters", MinDescriptionLen)
	} else if n > MaxDescriptionLen {
		errs["description"] = fmt.Sprintf("Description must not exceed %d characters", MaxDescriptionLen)
	}

	if strings.TrimSpace(s.Category) == "" {
		errs["category"] = "Category is required"
	}

	if !s.ContactPreference.Valid() {
		errs["contact_preference"] = "Contact preference must be one of email, whatsapp, both"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
