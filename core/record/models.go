package record

import (
	"strconv"
	"time"
)

// Collection names; each maps to one backing file (or table).
const (
	CollectionSpeakers = "speakers"
	CollectionContacts = "contacts"
	CollectionAdmins   = "admins"
)

// ID prefixes per record kind. Existing data files already carry these,
// so the scheme is load-bearing, not cosmetic.
const (
	prefixSpeaker = "s_"
	prefixContact = "c_"
	prefixAdmin   = "a_"
)

// Contact interest types, as submitted by the site's contact form.
const (
	InterestGeneral       = "general"
	InterestDesignService = "design-service"
	InterestPartnership   = "partnership"
	InterestCollaboration = "collaboration"
)

type SpeakerApplication struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio"`
	Expertise   []string  `json:"expertise"`
	Abstract    string    `json:"abstract"`
	LinkedinURL string    `json:"linkedin_url,omitempty"`
	TwitterURL  string    `json:"twitter_url,omitempty"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

type ContactSubmission struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Message      string    `json:"message"`
	Phone        string    `json:"phone,omitempty"`
	InterestType string    `json:"interest_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

type AdminEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// newID builds a `{prefix}{epochMillis}` identifier. Two submissions within
// the same millisecond collide; accepted at this site's traffic levels.
func newID(prefix string) string {
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
