package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"hometownheating/internal/config"
	"hometownheating/internal/domain"
)

// EmailService handles sending notification emails to the operator
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// IsEnabled reports whether notifications can actually be sent. Missing
// credentials are a valid configuration: sends are skipped, not failed.
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled && s.cfg.SMTPHost != "" && s.cfg.Username != "" && s.cfg.Password != ""
}

// SendContactNotification emails the operator about a new contact inquiry
func (s *EmailService) SendContactNotification(inquiry *domain.ContactInquiry) error {
	subject := fmt.Sprintf("New Contact Inquiry from %s %s", inquiry.FirstName, inquiry.LastName)

	serviceRow := ""
	if inquiry.Service != nil && *inquiry.Service != "" {
		serviceRow = fmt.Sprintf("<p><strong>Service:</strong> %s</p>", *inquiry.Service)
	}
	messageBlock := ""
	messageText := ""
	if inquiry.Message != nil && *inquiry.Message != "" {
		messageBlock = fmt.Sprintf("<h3>Message:</h3><p>%s</p>", strings.ReplaceAll(*inquiry.Message, "\n", "<br>"))
		messageText = "\n\nMessage:\n" + *inquiry.Message
	}

	htmlBody := fmt.Sprintf(`<h2>New Contact Inquiry</h2>
<p><strong>From:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
%s
<p><strong>Submitted:</strong> %s</p>
%s
<hr>
<p><em>This inquiry was submitted through the Hometown Heating website contact form.</em></p>`,
		inquiry.FirstName, inquiry.LastName, inquiry.Email, inquiry.Phone,
		serviceRow, inquiry.CreatedAt.Format("January 2, 2006 at 3:04 PM"), messageBlock)

	textBody := fmt.Sprintf(`New Contact Inquiry

From: %s %s
Email: %s
Phone: %s
Submitted: %s%s`,
		inquiry.FirstName, inquiry.LastName, inquiry.Email, inquiry.Phone,
		inquiry.CreatedAt.Format("January 2, 2006 at 3:04 PM"), messageText)

	return s.sendHTMLEmail(s.cfg.NotifyEmail, inquiry.Email, subject, htmlBody, textBody)
}

// SendApplicationNotification emails the operator about a new Comfort Club application
func (s *EmailService) SendApplicationNotification(app *domain.ComfortClubApplication) error {
	subject := fmt.Sprintf("New Comfort Club Application from %s %s", app.FirstName, app.LastName)

	optional := func(label string, v *string) string {
		if v == nil || *v == "" {
			return ""
		}
		return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, *v)
	}
	messageBlock := ""
	messageText := ""
	if app.Message != nil && *app.Message != "" {
		messageBlock = fmt.Sprintf("<h3>Additional Comments:</h3><p>%s</p>", strings.ReplaceAll(*app.Message, "\n", "<br>"))
		messageText = "\n\nAdditional Comments:\n" + *app.Message
	}

	htmlBody := fmt.Sprintf(`<h2>New Comfort Club Application</h2>
<p><strong>From:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
%s%s%s
<p><strong>Status:</strong> %s</p>
<p><strong>Submitted:</strong> %s</p>
%s
<hr>
<p><em>This application was submitted through the Hometown Heating website Comfort Club page.</em></p>`,
		app.FirstName, app.LastName, app.Email, app.Phone,
		optional("Address", app.Address),
		optional("Number of Systems", app.SystemCount),
		optional("System Types", app.SystemTypes),
		app.Status, app.CreatedAt.Format("January 2, 2006 at 3:04 PM"), messageBlock)

	textBody := fmt.Sprintf(`New Comfort Club Application

From: %s %s
Email: %s
Phone: %s
Status: %s
Submitted: %s%s`,
		app.FirstName, app.LastName, app.Email, app.Phone, app.Status,
		app.CreatedAt.Format("January 2, 2006 at 3:04 PM"), messageText)

	return s.sendHTMLEmail(s.cfg.NotifyEmail, app.Email, subject, htmlBody, textBody)
}

// sendHTMLEmail sends an HTML email with plain text fallback
func (s *EmailService) sendHTMLEmail(to, replyTo, subject, htmlBody, textBody string) error {
	if !s.IsEnabled() {
		fmt.Printf("[EMAIL] Would send to %s: %s\n", to, subject)
		return nil
	}

	// Set up authentication
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	// Create email message
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	// Build multipart message
	boundary := "----=_NextPart_1234567890"

	headers := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject)
	if replyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	}
	headers += "MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n"

	// Plain text part
	message := headers +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		textBody + "\r\n"

	// HTML part (if provided)
	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"Content-Transfer-Encoding: quoted-printable\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	// Send email
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
