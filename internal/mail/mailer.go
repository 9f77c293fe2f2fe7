// Package mail sends review notifications to question authors over SMTP.
package mail

import (
	"fmt"
	"html"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/config"
)

// Mailer delivers review outcome mail. Sends are synchronous; callers
// that must not block run them in a goroutine.
type Mailer struct {
	cfg *config.SMTPConfig
}

// NewMailer creates a new mailer
func NewMailer(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendQuestionApproved notifies an author that their question is published
func (m *Mailer) SendQuestionApproved(authorID, questionText string) error {
	body := fmt.Sprintf(`
		<p>Your question has been approved and is now live in the question bank:</p>
		<div class="quote">%s</div>
		<p>Staff will start seeing it in quizzes and daily challenges.</p>
	`, html.EscapeString(questionText))

	return m.send(authorID, "Question approved", wrapBody("Question Approved", body))
}

// SendQuestionRejected notifies an author that their question needs changes
func (m *Mailer) SendQuestionRejected(authorID, questionText, notes string) error {
	body := fmt.Sprintf(`
		<p>Your question was sent back by a reviewer:</p>
		<div class="quote">%s</div>
		<p><strong>Reviewer notes:</strong></p>
		<div class="notes">%s</div>
		<p>It is back in draft. Revise it and submit again when ready.</p>
	`, html.EscapeString(questionText), html.EscapeString(notes))

	return m.send(authorID, "Question needs changes", wrapBody("Question Returned", body))
}

// send delivers one HTML message to a staff member's intranet mailbox.
// Staff mailboxes follow the convention <staffId>@<staff domain>.
func (m *Mailer) send(staffID, subject, htmlBody string) error {
	if !m.cfg.IsEnabled() {
		slog.Debug("mail disabled, dropping message", "to", staffID, "subject", subject)
		return nil
	}

	to := staffID + "@" + m.cfg.StaffDomain

	var msg strings.Builder
	msg.WriteString("MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n")
	fmt.Fprintf(&msg, "From: Prime Hotels Training <%s>\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n\r\n", subject)
	msg.WriteString(htmlBody)

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// wrapBody applies the shared intranet mail layout
func wrapBody(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Helvetica, Arial, sans-serif; background-color: #F4F4F4; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 32px auto; background: #FFFFFF; border-radius: 6px; overflow: hidden; }
			.header { background-color: #1B2A4A; padding: 24px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 20px; letter-spacing: 2px; }
			.content { padding: 32px 28px; color: #1B2A4A; line-height: 1.6; }
			.content h2 { margin-top: 0; }
			.quote { background: #F4F6FB; padding: 14px; border-left: 4px solid #C9A227; border-radius: 4px; margin: 16px 0; font-style: italic; }
			.notes { background: #FDF3F3; padding: 14px; border-left: 4px solid #C0392B; border-radius: 4px; margin: 16px 0; }
			.footer { background-color: #F4F4F4; padding: 16px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>PRIME HOTELS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Prime Hotels staff training. This mailbox is not monitored.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
