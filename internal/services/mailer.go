package services

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/binahub/building-service/internal/config"
	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/utils"
)

// Mailer delivers invite codes by email. Delivery is optional; when no
// SendGrid key is configured Send calls become no-ops.
type Mailer struct {
	sendgridClient *sendgrid.Client
	fromEmail      string
}

func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SendgridAPIKey == "" {
		return &Mailer{}
	}
	return &Mailer{
		sendgridClient: sendgrid.NewSendClient(cfg.SendgridAPIKey),
		fromEmail:      cfg.SendgridFromEmail,
	}
}

// SendInviteCode mails a freshly issued code to the invitee.
func (m *Mailer) SendInviteCode(toEmail string, code *models.InviteCode, buildingName string) error {
	if m.sendgridClient == nil {
		utils.Logger.Debugf("Mailer disabled; skipping invite email to %s", toEmail)
		return nil
	}

	from := mail.NewEmail("BinaHub", m.fromEmail)
	to := mail.NewEmail("", toEmail)
	subject := fmt.Sprintf("You are invited to join %s", buildingName)
	if buildingName == "" {
		subject = "You are invited to join a building on BinaHub"
	}

	plainTextContent := fmt.Sprintf(
		"You have been invited to join %s as %s. Your one-time invite code is: %s",
		buildingName, code.Role.DisplayName(), code.Code,
	)
	htmlContent := fmt.Sprintf(
		inviteEmailHTML,
		"Building invitation",
		fmt.Sprintf("You have been invited to join <strong>%s</strong> as <strong>%s</strong>. Enter this one-time code after signing in:", buildingName, code.Role.DisplayName()),
		code.Code,
		time.Now().Year(),
	)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	_, sendErr := m.sendgridClient.Send(message)
	if sendErr != nil {
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}
