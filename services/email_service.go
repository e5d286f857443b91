// services/email_service.go
package services

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// EmailService delivers invite mail through the configured SMTP relay
type EmailService struct{}

// NewEmailService creates a new email service
func NewEmailService() *EmailService {
	return &EmailService{}
}

// SendInvite sends an invite email to a user who is not yet registered.
// Delivery is best effort; failures propagate to the caller of the
// add-member path.
func (s *EmailService) SendInvite(toEmail, groupName, inviterName string) error {
	from := os.Getenv("SMTP_EMAIL")
	password := os.Getenv("SMTP_PASS")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	smtpPort, err := strconv.Atoi(port)
	if err != nil {
		return utils.NewInternalError("invalid SMTP_PORT configuration")
	}

	subject := fmt.Sprintf("Join %s on Xpense Share", groupName)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2 style="color: #10b981;">You've been invited!</h2>
			<p>Hi there,</p>
			<p><strong>%s</strong> has invited you to join their group "<strong>%s</strong>" on <strong>Xpense Share</strong>.</p>
			<p>Xpense Share is the easiest way to split bills and track expenses with friends.</p>
			<br>
			<a href="https://xpense-share.com/install" style="background-color: #10b981; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px;">Install App &amp; Join</a>
			<br><br>
			<p>See you there!<br>The Xpense Share Team</p>
		</div>`, inviterName, groupName)

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(host, smtpPort, from, password)
	if err := dialer.DialAndSend(msg); err != nil {
		utils.Logger.WithError(err).WithField("to", toEmail).Error("failed to send invite email")
		return utils.NewInternalError("could not send email invite")
	}

	utils.Logger.WithField("to", toEmail).Info("invite email sent")
	return nil
}
