// Package mail delivers transactional email over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"rocktea/config"
	"rocktea/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// smtpSender implements service.MailSender over plain SMTP with STARTTLS.
type smtpSender struct {
	cfg     config.SMTPConfig
	timeout time.Duration
}

// NewSMTPSender is the constructor for the SMTP mail sender.
func NewSMTPSender(cfg *config.Config) service.MailSender {
	timeout := cfg.SMTP.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &smtpSender{cfg: *cfg.SMTP, timeout: timeout}
}

// SendStoreWelcome greets a newly provisioned store, attaching the storefront
// QR code when present.
func (s *smtpSender) SendStoreWelcome(ctx context.Context, mail *service.StoreMail) error {
	subject := fmt.Sprintf("%s is live", mail.StoreName)
	body := fmt.Sprintf(
		"Congratulations! Your store %s is now live at https://%s.\r\n\r\n"+
			"Scan the attached QR code to open your storefront.\r\n",
		mail.StoreName, mail.DomainName)

	return s.send(ctx, mail.To, subject, body, mail.QRCode)
}

// SendDNSFailure tells the owner that subdomain provisioning failed.
func (s *smtpSender) SendDNSFailure(ctx context.Context, mail *service.StoreMail) error {
	subject := fmt.Sprintf("Setting up %s is taking longer than expected", mail.StoreName)
	body := fmt.Sprintf(
		"Your payment for %s went through, but we hit a snag setting up your store address.\r\n"+
			"Our team has been notified and will finish the setup shortly. No action is needed from you.\r\n",
		mail.StoreName)

	return s.send(ctx, mail.To, subject, body, nil)
}

// SendStoreTeardown confirms (or reports failure of) subdomain removal.
func (s *smtpSender) SendStoreTeardown(ctx context.Context, mail *service.StoreMail, success bool) error {
	subject := fmt.Sprintf("%s has been closed", mail.StoreName)
	body := fmt.Sprintf("Your store %s has been deleted and its address released.\r\n", mail.StoreName)
	if !success {
		subject = fmt.Sprintf("Closing %s needs a follow-up", mail.StoreName)
		body = fmt.Sprintf(
			"Your store %s has been deleted, but releasing its address failed. "+
				"Our team will complete the cleanup.\r\n",
			mail.StoreName)
	}

	return s.send(ctx, mail.To, subject, body, nil)
}

// SendOrderConfirmation confirms a finalized order to its buyer.
func (s *smtpSender) SendOrderConfirmation(ctx context.Context, to, orderSN string) error {
	subject := fmt.Sprintf("Order #%s confirmed", orderSN)
	body := fmt.Sprintf(
		"We received your payment and your order #%s is being prepared.\r\n"+
			"You will get tracking details as soon as it ships.\r\n",
		orderSN)

	return s.send(ctx, to, subject, body, nil)
}

// send builds a MIME message (plain text plus an optional PNG attachment) and
// delivers it over one SMTP session. The whole exchange is bounded by the
// configured timeout.
func (s *smtpSender) send(ctx context.Context, to, subject, textBody string, attachment []byte) error {
	msg := s.buildMessage(to, subject, textBody, attachment)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	dialer := &net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp server")
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(s.timeout))
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return errors.Wrap(err, "failed to open smtp session")
	}
	defer client.Quit()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err := client.StartTLS(tlsCfg); err != nil {
			return errors.Wrap(err, "failed to start tls")
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "smtp auth failed")
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return errors.Wrap(err, "smtp mail from rejected")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "smtp recipient rejected")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "failed to open smtp data")
	}
	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "failed to write smtp message")
	}

	return errors.Wrap(w.Close(), "failed to finish smtp message")
}

func (s *smtpSender) buildMessage(to, subject, textBody string, attachment []byte) []byte {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	if len(attachment) > 0 {
		write("--%s\r\n", boundary)
		write("Content-Type: image/png; name=%q\r\n", "storefront-qr.png")
		write("Content-Disposition: attachment; filename=%q\r\n", "storefront-qr.png")
		write("Content-Transfer-Encoding: base64\r\n\r\n")

		encoded := base64.StdEncoding.EncodeToString(attachment)
		// Wrap base64 at 76 characters per RFC 2045.
		for len(encoded) > 76 {
			write("%s\r\n", encoded[:76])
			encoded = encoded[76:]
		}
		write("%s\r\n\r\n", encoded)
	}

	write("--%s--\r\n", boundary)

	return msg.Bytes()
}
