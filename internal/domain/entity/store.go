package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DNSState tracks the lifecycle of a store's subdomain record.
type DNSState string

const (
	DNSStateCreated DNSState = "created"     // Store persisted, no provisioning attempted yet.
	DNSStatePending DNSState = "dns_pending" // Provisioning scheduled, upsert not confirmed.
	DNSStateLive    DNSState = "dns_live"    // CNAME confirmed at the provider.
	DNSStateFailed  DNSState = "dns_failed"  // Provider rejected the upsert; retriable by admin action.
	DNSStateDeleted DNSState = "deleted"     // CNAME torn down after store deletion.
)

// Store represents a dropshipper's storefront with its provisioned subdomain.
type Store struct {
	ID               uuid.UUID `json:"id"`                 // The Global Unique Identifier (GUID) for the store.
	OwnerID          uuid.UUID `json:"owner_id"`           // The user who owns this store.
	Name             string    `json:"name"`               // Display name chosen by the owner.
	Slug             string    `json:"slug"`               // Stable subdomain key derived from the name.
	DomainName       string    `json:"domain_name"`        // Full storefront URL, synthesized from the slug.
	DNSState         DNSState  `json:"dns_state"`          // Current provisioning state.
	DNSRecordCreated bool      `json:"dns_record_created"` // True once the provider confirms the CNAME.
	HasMadePayment   bool      `json:"has_made_payment"`   // True once the activation fee has been settled.
	Completed        bool      `json:"completed"`          // True once onboarding is finished.
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Slugify lowercases a store name and collapses every non-alphanumeric run
// into a single hyphen, producing a DNS-safe label.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)

			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
