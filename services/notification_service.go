// services/notification_service.go - Staff email notification on new submissions
package services

import (
	"fmt"
	"html"
	"log"
	"os"
	"strings"

	"foundation-site-api/config"
	"foundation-site-api/models"
)

// NotifyNewSubmission emails the staff inbox a summary of a freshly stored
// submission. Best effort: a mail failure is logged and never surfaced to
// the person who submitted the form.
func NotifyNewSubmission(sub *models.Submission) {
	recipients := notificationRecipients()
	if len(recipients) == 0 {
		return
	}

	subject := fmt.Sprintf("New %s submission from %s", KindTitle(sub.Kind), DisplayName(sub))
	body := buildNotificationHTML(sub)

	if err := config.SendMail(recipients, subject, body); err != nil {
		log.Printf("Failed to send submission notification for %s: %v", sub.SubmissionID, err)
	}
}

func notificationRecipients() []string {
	raw := os.Getenv("NOTIFY_EMAILS")
	if raw == "" {
		return nil
	}

	var recipients []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}

func buildNotificationHTML(sub *models.Submission) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>New %s submission</h2>", html.EscapeString(KindTitle(sub.Kind))))

	for _, section := range SubmissionSections(sub) {
		b.WriteString(fmt.Sprintf("<h3>%s</h3><table>", html.EscapeString(section.Title)))
		for _, field := range section.Fields {
			b.WriteString(fmt.Sprintf(
				"<tr><td><strong>%s</strong></td><td>%s</td></tr>",
				html.EscapeString(field.Label),
				html.EscapeString(field.Value),
			))
		}
		b.WriteString("</table>")
	}

	return b.String()
}
