// Package notify defines the notification sink for found deals.
// Delivery transports (email, SMS) live outside this repository; the
// monitor only depends on this interface.
package notify

import "context"

// Alert carries one monitoring pass worth of deals
type Alert struct {
	// Summaries are pre-formatted deal descriptions, best first
	Summaries []string

	// TopDeal is the summary of the highest-ranked deal
	TopDeal string
}

// Notifier delivers deal alerts
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}
