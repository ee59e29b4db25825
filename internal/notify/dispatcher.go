// Package notify implements the notice fan-out: when an admin publishes a
// notice, every subscriber with an email gets one batched alert. Delivery is
// best-effort and sits outside the consistency boundary of the notice write —
// the dispatcher never lets a failure reach the caller that created the notice.
package notify

import (
	"fmt"
	"log"
	"strings"

	"community_portal/internal/mail"
	"community_portal/internal/metrics"
	"community_portal/model"
)

// SubscriberSource yields the current full subscriber set.
type SubscriberSource interface {
	ListSubscribers() ([]model.Subscriber, error)
}

// Report summarizes one dispatch attempt. Err is informational; it is logged
// and counted here, never propagated.
type Report struct {
	Recipients int
	Sent       bool
	Err        error
}

// Dispatcher batches notice alerts to email subscribers.
type Dispatcher struct {
	subs   SubscriberSource
	sender mail.Sender
}

func NewDispatcher(subs SubscriberSource, sender mail.Sender) *Dispatcher {
	return &Dispatcher{subs: subs, sender: sender}
}

// NoticeCreated runs after the notice row is committed. It fetches the
// subscriber set, filters to entries with an email, and makes exactly one
// delivery call with all recipients. Phone-only subscribers are skipped: SMS
// delivery is not part of this path.
func (d *Dispatcher) NoticeCreated(notice *model.Notice) Report {
	subscribers, err := d.subs.ListSubscribers()
	if err != nil {
		log.Printf("notice dispatch: subscriber fetch failed: %v", err)
		metrics.IncDispatch("fetch_error")
		return Report{Err: err}
	}

	recipients := make([]string, 0, len(subscribers))
	for _, s := range subscribers {
		if s.Email != "" {
			recipients = append(recipients, s.Email)
		}
	}
	if len(recipients) == 0 {
		metrics.IncDispatch("no_recipients")
		return Report{}
	}

	subject := fmt.Sprintf("New notice: %s", notice.Title)
	if err := d.sender.Send(recipients, subject, composeBody(notice)); err != nil {
		log.Printf("notice dispatch: delivery failed for notice %d: %v", notice.ID, err)
		metrics.IncDispatch("send_error")
		return Report{Recipients: len(recipients), Err: err}
	}

	metrics.IncDispatch("sent")
	return Report{Recipients: len(recipients), Sent: true}
}

func composeBody(notice *model.Notice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new notice has been published.\n\n%s\n", notice.Title)
	if notice.Image != "" {
		fmt.Fprintf(&b, "\nAttachment: %s\n", notice.Image)
	}
	return b.String()
}
