package notify

import (
	"errors"
	"testing"

	"community_portal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	subs []model.Subscriber
	err  error
}

func (s *stubSource) ListSubscribers() ([]model.Subscriber, error) {
	return s.subs, s.err
}

type recordingSender struct {
	calls   int
	to      []string
	subject string
	body    string
	err     error
}

func (r *recordingSender) Send(to []string, subject, body string) error {
	r.calls++
	r.to = to
	r.subject = subject
	r.body = body
	return r.err
}

func TestNoticeCreated_SingleBatchedDelivery(t *testing.T) {
	source := &stubSource{subs: []model.Subscriber{
		{PhoneNumber: "+9779800000001", Email: "a@x"},
		{PhoneNumber: "+9779800000002", Email: "b@x"},
		{PhoneNumber: "+9779800000003", Email: "c@x"},
		{PhoneNumber: "+9779800000004"}, // phone-only, not on the email path
	}}
	sender := &recordingSender{}
	d := NewDispatcher(source, sender)

	report := d.NoticeCreated(&model.Notice{ID: 1, Title: "Water outage"})

	require.Equal(t, 1, sender.calls, "dispatch must make exactly one delivery call")
	assert.ElementsMatch(t, []string{"a@x", "b@x", "c@x"}, sender.to)
	assert.Contains(t, sender.subject, "Water outage")
	assert.True(t, report.Sent)
	assert.Equal(t, 3, report.Recipients)
	assert.NoError(t, report.Err)
}

func TestNoticeCreated_ImageInBody(t *testing.T) {
	source := &stubSource{subs: []model.Subscriber{{Email: "a@x"}}}
	sender := &recordingSender{}
	d := NewDispatcher(source, sender)

	d.NoticeCreated(&model.Notice{ID: 2, Title: "Festival", Image: "https://img/festival.png"})

	assert.Contains(t, sender.body, "Festival")
	assert.Contains(t, sender.body, "https://img/festival.png")
}

func TestNoticeCreated_NoRecipients(t *testing.T) {
	source := &stubSource{subs: []model.Subscriber{{PhoneNumber: "+9779800000001"}}}
	sender := &recordingSender{}
	d := NewDispatcher(source, sender)

	report := d.NoticeCreated(&model.Notice{ID: 3, Title: "t"})

	assert.Equal(t, 0, sender.calls)
	assert.False(t, report.Sent)
	assert.NoError(t, report.Err)
}

func TestNoticeCreated_SendFailureAbsorbed(t *testing.T) {
	source := &stubSource{subs: []model.Subscriber{{Email: "a@x"}}}
	sender := &recordingSender{err: errors.New("smtp: connection refused")}
	d := NewDispatcher(source, sender)

	report := d.NoticeCreated(&model.Notice{ID: 4, Title: "t"})

	// The failure is captured in the report for logging, never panicked or
	// propagated; callers ignore it by contract.
	assert.False(t, report.Sent)
	assert.Error(t, report.Err)
	assert.Equal(t, 1, report.Recipients)
}

func TestNoticeCreated_FetchFailureAbsorbed(t *testing.T) {
	source := &stubSource{err: errors.New("store unavailable")}
	sender := &recordingSender{}
	d := NewDispatcher(source, sender)

	report := d.NoticeCreated(&model.Notice{ID: 5, Title: "t"})

	assert.Equal(t, 0, sender.calls)
	assert.False(t, report.Sent)
	assert.Error(t, report.Err)
}
