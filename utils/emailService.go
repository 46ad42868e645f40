package utils

import (
	"campus/config"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// SendEmail delivers one HTML email through SendGrid. Delivery is advisory:
// failures are logged and swallowed, never bubbled into domain flows.
func SendEmail(toEmail, toName, subject, htmlBody string) {
	if config.AppConfig.SendgridApiKey == "" {
		logrus.WithField("to", toEmail).Debug("sendgrid key not configured, skipping email")
		return
	}

	from := mail.NewEmail("Campus Administration", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", getEmailTemplate(subject, htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	response, err := client.Send(message)
	if err != nil {
		logrus.WithError(err).WithField("to", toEmail).Error("failed to send email")
		return
	}
	if response.StatusCode >= 400 {
		logrus.WithFields(logrus.Fields{"to": toEmail, "status": response.StatusCode}).
			Error("sendgrid rejected email")
	}
}

func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B2A4A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2A4A; line-height: 1.6; }
			.content h2 { color: #1B2A4A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #C8102E; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CAMPUS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from the campus administration platform.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendEliminationRiskEmail warns a student who crossed the elimination threshold.
func SendEliminationRiskEmail(email, name string, count int) {
	subject := "Urgent: elimination risk due to unjustified absences"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You currently have <strong>%d unjustified absences</strong>.</p>
		<div class="info-box">
			You are at risk of elimination from your modules. Please submit your
			justifications or contact the administration office as soon as possible.
		</div>
	`, name, count)

	go SendEmail(email, name, subject, body)
}

// SendReviewOutcomeEmail tells a student how their justification review went.
func SendReviewOutcomeEmail(email, name string, accepted bool) {
	subject := "Your absence justification was rejected"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your absence justification has been reviewed and <strong>rejected</strong>.</p>
		<p>You can submit a new justification from your student portal.</p>
	`, name)

	if accepted {
		subject = "Your absence justification was accepted"
		body = fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your absence justification has been reviewed and <strong>accepted</strong>.</p>
			<p>The corresponding absence is now marked as justified.</p>
		`, name)
	}

	go SendEmail(email, name, subject, body)
}

// SendDocumentReadyEmail tells a student a requested document is available.
func SendDocumentReadyEmail(email, name, documentType string) {
	subject := "Your requested document is ready"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your request for <strong>%s</strong> has been processed.</p>
		<p>You can download the document from your student portal.</p>
	`, name, documentType)

	go SendEmail(email, name, subject, body)
}
