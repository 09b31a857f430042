//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"studio-booking/internal/infra/notify"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubs struct {
	subs  []shared.PushSubscription
	roles []string
	err   error
}

func (f *fakeSubs) ListByRoles(_ context.Context, roles ...string) ([]shared.PushSubscription, error) {
	f.roles = roles
	return f.subs, f.err
}

type fakeRemover struct {
	removed map[string]int
}

func (f *fakeRemover) RemoveByEndpoint(_ context.Context, endpoint string) (bool, error) {
	if f.removed == nil {
		f.removed = map[string]int{}
	}
	f.removed[endpoint]++
	return f.removed[endpoint] == 1, nil
}

type scriptedSender struct {
	status   map[string]int
	err      map[string]error
	sent     []string
	payloads [][]byte
}

func (s *scriptedSender) Send(_ context.Context, sub shared.PushSubscription, payload []byte) (int, error) {
	s.sent = append(s.sent, sub.Endpoint)
	s.payloads = append(s.payloads, payload)
	if err := s.err[sub.Endpoint]; err != nil {
		return 0, err
	}
	if st, ok := s.status[sub.Endpoint]; ok {
		return st, nil
	}
	return http.StatusCreated, nil
}

func sub(endpoint string) shared.PushSubscription {
	return shared.PushSubscription{UserID: uuid.New(), Role: "staff", Endpoint: endpoint, P256dh: "p", Auth: "a"}
}

func TestFanout(t *testing.T) {
	t.Run("sends to admins and staff only", func(t *testing.T) {
		subs := &fakeSubs{subs: []shared.PushSubscription{sub("https://push/a"), sub("https://push/b")}}
		sender := &scriptedSender{}
		f := notify.NewFanout(subs, &fakeRemover{}, sender)

		err := f.Deliver(context.Background(), newEvent(shared.EventBookingCreated))

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"admin", "staff"}, subs.roles)
		assert.Equal(t, []string{"https://push/a", "https://push/b"}, sender.sent)

		var msg notify.Message
		require.NoError(t, json.Unmarshal(sender.payloads[0], &msg))
		assert.Equal(t, "New booking", msg.Title)
		assert.Contains(t, msg.Body, "SB-ABCD2345")
	})

	t.Run("gone endpoints are removed once", func(t *testing.T) {
		subs := &fakeSubs{subs: []shared.PushSubscription{sub("https://push/gone"), sub("https://push/gone"), sub("https://push/missing")}}
		sender := &scriptedSender{status: map[string]int{
			"https://push/gone":    http.StatusGone,
			"https://push/missing": http.StatusNotFound,
		}}
		remover := &fakeRemover{}
		f := notify.NewFanout(subs, remover, sender)

		require.NoError(t, f.Deliver(context.Background(), newEvent(shared.EventBookingCompleted)))

		assert.Equal(t, 1, remover.removed["https://push/gone"])
		assert.Equal(t, 1, remover.removed["https://push/missing"])
	})

	t.Run("transport errors are logged and the rest still sent", func(t *testing.T) {
		subs := &fakeSubs{subs: []shared.PushSubscription{sub("https://push/down"), sub("https://push/ok")}}
		sender := &scriptedSender{err: map[string]error{"https://push/down": errors.New("timeout")}}
		remover := &fakeRemover{}
		f := notify.NewFanout(subs, remover, sender)

		require.NoError(t, f.Deliver(context.Background(), newEvent(shared.EventBookingConfirmed)))

		assert.Equal(t, []string{"https://push/down", "https://push/ok"}, sender.sent)
		assert.Empty(t, remover.removed)
	})

	t.Run("subscription lookup failure is returned", func(t *testing.T) {
		subs := &fakeSubs{err: errors.New("db down")}
		f := notify.NewFanout(subs, &fakeRemover{}, &scriptedSender{})

		assert.Error(t, f.Deliver(context.Background(), newEvent(shared.EventBookingCreated)))
	})
}
