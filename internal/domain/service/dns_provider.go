package service

import "context"

// DNSProvider abstracts the DNS host used to provision store subdomains.
// UpsertRecord is create-or-replace, so retries after a failure are safe and
// never produce a duplicate record.
type DNSProvider interface {
	// UpsertRecord binds slug.<target domain> as a CNAME to the environment's
	// target host.
	UpsertRecord(ctx context.Context, slug string) error

	// DeleteRecord removes the CNAME for a slug. Deleting a record that does
	// not exist is not an error.
	DeleteRecord(ctx context.Context, slug string) error
}
