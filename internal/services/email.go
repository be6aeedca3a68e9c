package services

import (
	"context"
	"fmt"
	"log"

	"campuseventhub/internal/domain"
)

type emailService struct {
	mailer domain.Mailer
}

// NewEmailService returns an EmailService that uses the given Mailer.
func NewEmailService(mailer domain.Mailer) domain.EmailService {
	return &emailService{mailer: mailer}
}

// SendRegistrationConfirmation sends the registration confirmation email to
// the participant's derived address.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration email data is nil")
	}
	subject := fmt.Sprintf("You're registered for %s", data.EventTitle)
	text := fmt.Sprintf(
		"Hi %s,\n\nYou are registered for %s on %s at %s.\n\nSee you there!",
		data.Name, data.EventTitle, data.EventDate, data.Location,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>You are registered for <strong>%s</strong> on %s at %s.</p><p>See you there!</p>",
		data.Name, data.EventTitle, data.EventDate, data.Location,
	)
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		log.Printf("[EMAIL] Failed to send registration confirmation to %s: %v", data.Email, err)
		return fmt.Errorf("failed to send registration confirmation: %w", err)
	}
	log.Printf("[EMAIL] Registration confirmation sent to %s", data.Email)
	return nil
}
