package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Message is the JSON body the service worker renders.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// PushSender delivers one payload to one subscription and reports the push
// service's HTTP status.
type PushSender interface {
	Send(ctx context.Context, sub shared.PushSubscription, payload []byte) (int, error)
}

type SubscriptionLister interface {
	ListByRoles(ctx context.Context, roles ...string) ([]shared.PushSubscription, error)
}

type SubscriptionRemover interface {
	RemoveByEndpoint(ctx context.Context, endpoint string) (bool, error)
}

// Fanout sends an event to every admin and staff subscription.
type Fanout struct {
	subs    SubscriptionLister
	remover SubscriptionRemover
	sender  PushSender
}

func NewFanout(subs SubscriptionLister, remover SubscriptionRemover, sender PushSender) *Fanout {
	return &Fanout{subs: subs, remover: remover, sender: sender}
}

var recipientRoles = []string{user.RoleAdmin.String(), user.RoleStaff.String()}

// Deliver only fails when subscriptions cannot be loaded. Per-endpoint
// failures are logged; expired endpoints are removed.
func (f *Fanout) Deliver(ctx context.Context, ev shared.BookingEvent) error {
	subs, err := f.subs.ListByRoles(ctx, recipientRoles...)
	if err != nil {
		return errs.Wrap(err, "load push subscriptions")
	}
	if len(subs) == 0 {
		return nil
	}

	payload, err := json.Marshal(MessageFor(ev))
	if err != nil {
		return errs.Wrap(err, "encode push message")
	}

	seen := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		if _, dup := seen[sub.Endpoint]; dup {
			continue
		}
		seen[sub.Endpoint] = struct{}{}
		f.sendOne(ctx, sub, payload)
	}
	return nil
}

func (f *Fanout) sendOne(ctx context.Context, sub shared.PushSubscription, payload []byte) {
	status, err := f.sender.Send(ctx, sub, payload)
	if status == http.StatusGone || status == http.StatusNotFound {
		removed, rmErr := f.remover.RemoveByEndpoint(ctx, sub.Endpoint)
		if rmErr != nil {
			slog.Error("failed to remove expired push subscription", "user_id", sub.UserID.String(), "error", rmErr.Error())
			return
		}
		if removed {
			slog.Info("removed expired push subscription", "user_id", sub.UserID.String(), "status", status)
		}
		return
	}
	if err != nil {
		slog.Warn("push delivery failed", "user_id", sub.UserID.String(), "status", status, "error", err.Error())
		return
	}
	if status >= http.StatusBadRequest {
		slog.Warn("push service rejected notification", "user_id", sub.UserID.String(), "status", status)
	}
}

func MessageFor(ev shared.BookingEvent) Message {
	title := "Booking updated"
	switch ev.Type {
	case shared.EventBookingCreated:
		title = "New booking"
	case shared.EventBookingConfirmed:
		title = "Booking confirmed"
	case shared.EventBookingCancelled:
		title = "Booking cancelled"
	case shared.EventRescheduleRequested:
		title = "Reschedule requested"
	case shared.EventRescheduleResolved:
		title = "Reschedule resolved"
	case shared.EventBookingCompleted:
		title = "Booking completed"
	}
	return Message{
		Title: title,
		Body:  ev.ClientName + " (" + ev.BookingCode + ") on " + ev.ScheduledAt.Format("02 Jan 2006 15:04"),
		URL:   "/admin/bookings/" + ev.BookingID.String(),
	}
}

// WebPushSender signs requests with the VAPID key pair.
type WebPushSender struct {
	options webpush.Options
}

func NewWebPushSender(cfg config.PushConfig) *WebPushSender {
	return &WebPushSender{
		options: webpush.Options{
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             int(cfg.TTL.Seconds()),
		},
	}
}

func (s *WebPushSender) Send(ctx context.Context, sub shared.PushSubscription, payload []byte) (int, error) {
	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}
	opts := s.options
	resp, err := webpush.SendNotificationWithContext(ctx, payload, target, &opts)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// DisabledSender is used when no VAPID keys are configured.
type DisabledSender struct{}

func (DisabledSender) Send(context.Context, shared.PushSubscription, []byte) (int, error) {
	return http.StatusNoContent, nil
}
