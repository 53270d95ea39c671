package notifications

import (
	"context"
	"fmt"
	"log/slog"
)

// MailMessage is the email representation of a notification
type MailMessage struct {
	Subject    string
	Lines      []string
	ActionText string
	ActionURL  string
}

// buildMail renders the mail representation for a moderation notification.
// Rejections link back to the edit page so the author can resubmit.
func buildMail(baseURL string, n *Notification) *MailMessage {
	mail := &MailMessage{
		Subject: string(n.Kind),
		Lines:   []string{n.Payload.Message},
	}

	switch n.Kind {
	case KindPostRejected:
		reason := "No specific reason provided."
		if n.Payload.Note != nil && *n.Payload.Note != "" {
			reason = *n.Payload.Note
		}
		mail.Subject = "Your post has been rejected"
		mail.Lines = []string{
			fmt.Sprintf("Your post %q has been rejected.", n.Payload.Title),
			"Reason: " + reason,
			"You can edit and resubmit your post for review.",
		}
		mail.ActionText = "Edit Post"
		mail.ActionURL = fmt.Sprintf("%s/posts/%d/edit", baseURL, n.Payload.SubjectID)
	case KindPostApproved:
		mail.Subject = "Your post has been approved"
		mail.ActionText = "View Post"
		mail.ActionURL = fmt.Sprintf("%s/posts/%d", baseURL, n.Payload.SubjectID)
	case KindCommentRejected:
		mail.Subject = "Your comment has been rejected"
	case KindCommentApproved:
		mail.Subject = "Your comment has been approved"
	}

	return mail
}

// LogMailer writes mail representations to the log instead of sending them.
// Used until an SMTP transport is wired in.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that logs instead of sending
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

// Send logs the rendered mail
func (m *LogMailer) Send(ctx context.Context, recipientID int64, mail *MailMessage) error {
	m.logger.Info("notification mail",
		"recipient", recipientID,
		"subject", mail.Subject,
		"lines", mail.Lines,
		"action_url", mail.ActionURL)
	return nil
}
