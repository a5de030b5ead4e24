package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// OperatorAddress receives moderation notices when agents submit
	// content for review.
	OperatorAddress string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendVerificationCode emails the numeric code an agent enters to verify
// their address.
func (s *SMTPEmailService) SendVerificationCode(to, code string) error {
	subject := "Verify Your Email Address"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome!</h2>
			<p>Your verification code is:</p>
			<h1>%s</h1>
			<p>Enter this code to verify your email address.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, code)

	plainBody := fmt.Sprintf(`
Welcome!

Your verification code is: %s

Enter this code to verify your email address.

If you didn't create an account, please ignore this email.
	`, code)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendSubmissionNotice tells the operators a new item is waiting for
// review. Sent after the submitting transaction commits.
func (s *SMTPEmailService) SendSubmissionNotice(kind, title, agentName string) error {
	if s.config.OperatorAddress == "" {
		return nil
	}

	subject := fmt.Sprintf("New %s pending review: %s", kind, title)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Review Queue</h2>
			<p>%s submitted a %s for review:</p>
			<p><strong>%s</strong></p>
		</body>
		</html>
	`, agentName, kind, title)

	plainBody := fmt.Sprintf(`
Review Queue

%s submitted a %s for review: %s
	`, agentName, kind, title)

	return s.sendEmail(s.config.OperatorAddress, subject, htmlBody, plainBody)
}

// SendContactNotice forwards a visitor contact submission to the operators.
func (s *SMTPEmailService) SendContactNotice(name, fromEmail, subject, body string) error {
	if s.config.OperatorAddress == "" {
		return nil
	}

	mailSubject := fmt.Sprintf("Contact form: %s", subject)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Contact Form Submission</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p>%s</p>
		</body>
		</html>
	`, name, fromEmail, body)

	plainBody := fmt.Sprintf(`
Contact Form Submission

From: %s <%s>

%s
	`, name, fromEmail, body)

	return s.sendEmail(s.config.OperatorAddress, mailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
