package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/pkg/logger"
)

// Notifier sends transactional email. All sends are fire-and-forget;
// failures are logged and never surfaced to request paths.
type Notifier interface {
	SendWelcome(email string)
	SendAnalysisComplete(email string, reviewID int64, riskScore int)
	SendPaymentFailed(email string)
	Close()
}

type emailJob struct {
	to       string
	subject  string
	plain    string
	htmlBody string
}

// EmailNotifier queues email onto a buffered channel drained by a
// single goroutine so dispatch never blocks request handling.
type EmailNotifier struct {
	cfg    config.EmailConfig
	appURL string
	logger *logger.Logger
	queue  chan emailJob
	done   chan struct{}
}

// NewEmailNotifier creates a sendgrid-backed notifier and starts its
// drain goroutine.
func NewEmailNotifier(cfg config.EmailConfig, appURL string, log *logger.Logger) *EmailNotifier {
	n := &EmailNotifier{
		cfg:    cfg,
		appURL: appURL,
		logger: log,
		queue:  make(chan emailJob, 64),
		done:   make(chan struct{}),
	}
	go n.drain()
	return n
}

func (n *EmailNotifier) drain() {
	defer close(n.done)
	for job := range n.queue {
		n.send(job)
	}
}

// Close stops the drain goroutine after flushing queued mail.
func (n *EmailNotifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *EmailNotifier) enqueue(job emailJob) {
	if n.cfg.SendGridAPIKey == "" {
		return
	}
	select {
	case n.queue <- job:
	default:
		n.logger.WithFields(map[string]interface{}{
			"to":      job.to,
			"subject": job.subject,
		}).Warn("Email queue full, dropping message")
	}
}

func (n *EmailNotifier) send(job emailJob) {
	from := mail.NewEmail(n.cfg.FromName, n.cfg.FromAddress)
	to := mail.NewEmail("", job.to)
	message := mail.NewSingleEmail(from, job.subject, to, job.plain, job.htmlBody)
	client := sendgrid.NewSendClient(n.cfg.SendGridAPIKey)

	resp, err := client.Send(message)
	if err != nil {
		n.logger.ErrorWithErr(err, "Failed to send email")
		return
	}
	if resp.StatusCode >= 400 {
		n.logger.WithFields(map[string]interface{}{
			"to":     job.to,
			"status": resp.StatusCode,
		}).Error("Email provider rejected message")
	}
}

const emailDisclaimer = "FreelanceShield is a software tool that explains contract language. It is not a law firm and does not provide legal advice."

// SendWelcome sends the signup confirmation email
func (n *EmailNotifier) SendWelcome(email string) {
	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a1a1a;">Welcome to FreelanceShield</h1>
  <p>Thanks for signing up! You can now upload your first contract for AI-powered risk analysis.</p>
  <p>Your free plan includes 1 contract review per month.</p>
  <a href="%s/review/new" style="background: #2563eb; color: white; padding: 12px 24px; border-radius: 6px; text-decoration: none; display: inline-block; margin-top: 16px;">Review your first contract</a>
  <p style="color: #666; font-size: 12px; margin-top: 32px;">%s</p>
</div>`, n.appURL, emailDisclaimer)

	n.enqueue(emailJob{
		to:       email,
		subject:  "Welcome to FreelanceShield",
		plain:    "Thanks for signing up! Your free plan includes 1 contract review per month.",
		htmlBody: html,
	})
}

// SendAnalysisComplete notifies the user that a review finished
func (n *EmailNotifier) SendAnalysisComplete(email string, reviewID int64, riskScore int) {
	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a1a1a;">Your contract analysis is ready</h1>
  <p>We've finished analyzing your contract. Here's a quick summary:</p>
  <div style="background: #f5f5f5; padding: 16px; border-radius: 8px; margin: 16px 0;">
    <strong>Risk Score: %d/10</strong>
  </div>
  <a href="%s/review/%d" style="background: #2563eb; color: white; padding: 12px 24px; border-radius: 6px; text-decoration: none; display: inline-block;">View full analysis</a>
  <p style="color: #666; font-size: 12px; margin-top: 32px;">%s</p>
</div>`, riskScore, n.appURL, reviewID, emailDisclaimer)

	n.enqueue(emailJob{
		to:       email,
		subject:  fmt.Sprintf("Your contract analysis is ready - Risk Score: %d/10", riskScore),
		plain:    fmt.Sprintf("Your contract analysis is ready. Risk Score: %d/10", riskScore),
		htmlBody: html,
	})
}

// SendPaymentFailed warns the user that a subscription charge failed
func (n *EmailNotifier) SendPaymentFailed(email string) {
	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #dc2626;">Payment failed</h1>
  <p>We were unable to process your payment for FreelanceShield. Please update your payment method to continue your subscription.</p>
  <a href="%s/settings" style="background: #dc2626; color: white; padding: 12px 24px; border-radius: 6px; text-decoration: none; display: inline-block; margin-top: 16px;">Update payment method</a>
</div>`, n.appURL)

	n.enqueue(emailJob{
		to:       email,
		subject:  "Action required: Payment failed for FreelanceShield",
		plain:    "We were unable to process your payment for FreelanceShield. Please update your payment method.",
		htmlBody: html,
	})
}
