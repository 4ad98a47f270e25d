package service

import "context"

// StoreMail carries the store context for lifecycle notifications.
type StoreMail struct {
	To         string
	StoreName  string
	DomainName string
	QRCode     []byte // PNG of the storefront URL, attached to the welcome mail.
}

// MailSender delivers transactional email. Implementations bound every send
// with a timeout; a returned error means the queue should redeliver.
type MailSender interface {
	// SendStoreWelcome greets a newly provisioned store.
	SendStoreWelcome(ctx context.Context, mail *StoreMail) error

	// SendDNSFailure tells the owner that subdomain provisioning failed and
	// will be retried by an admin.
	SendDNSFailure(ctx context.Context, mail *StoreMail) error

	// SendStoreTeardown confirms (or reports failure of) subdomain removal
	// after store deletion.
	SendStoreTeardown(ctx context.Context, mail *StoreMail, success bool) error

	// SendOrderConfirmation confirms a finalized order to its buyer.
	SendOrderConfirmation(ctx context.Context, to, orderSN string) error
}
