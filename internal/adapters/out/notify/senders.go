// Package notify provides outbound delivery adapters for email and SMS.
// The log-backed implementations stand in for real gateway integrations;
// swapping in an SMTP or SMS provider only touches this package.
package notify

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/pkg/logger"
)

// LogEmailSender writes email deliveries to the application log.
type LogEmailSender struct {
	log logger.Logger
}

// NewLogEmailSender creates a log-backed email sender.
func NewLogEmailSender(log logger.Logger) *LogEmailSender {
	return &LogEmailSender{log: log}
}

// SendEmail logs the delivery instead of talking to a mail gateway.
func (s *LogEmailSender) SendEmail(_ context.Context, n *notification.Notification) error {
	s.log.Info("email delivery",
		"notificationId", n.ID().String(),
		"userId", n.User().String(),
		"subject", n.Subject(),
	)
	return nil
}

// LogSMSSender writes SMS deliveries to the application log.
type LogSMSSender struct {
	log logger.Logger
}

// NewLogSMSSender creates a log-backed SMS sender.
func NewLogSMSSender(log logger.Logger) *LogSMSSender {
	return &LogSMSSender{log: log}
}

// SendSMS logs the delivery instead of talking to an SMS provider.
func (s *LogSMSSender) SendSMS(_ context.Context, n *notification.Notification) error {
	s.log.Info("sms delivery",
		"notificationId", n.ID().String(),
		"userId", n.User().String(),
		"subject", n.Subject(),
	)
	return nil
}
