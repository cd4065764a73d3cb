package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"assetbook/models"
	"assetbook/store"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource []store.Tab

func (s staticSource) Snapshot() []store.Tab { return s }

type recordingSender struct {
	calls [][]DueReminder
	err   error
}

func (r *recordingSender) SendReminderDigest(_ models.Date, items []DueReminder) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, items)
	return nil
}

func dated(id int64, name string, maturity models.Date, reminder models.Reminder) models.Asset {
	m := maturity
	return models.Asset{
		ID:           id,
		Category:     "예금",
		Name:         name,
		Amount:       models.NewAmount(1000),
		MaturityDate: &m,
		Reminder:     reminder,
	}
}

func reminderFixture(today models.Date) []store.Tab {
	return []store.Tab{
		{Name: "B", Assets: []models.Asset{
			dated(1, "inside", today.AddDays(5), models.ReminderDaysBefore(6)),
			dated(2, "edge", today.AddDays(3), models.ReminderDaysBefore(3)),
			dated(3, "too early", today.AddDays(4), models.ReminderDaysBefore(3)),
			dated(4, "none", today, models.ReminderNone),
			dated(5, "expired", today.AddDays(-1), models.ReminderDaysBefore(30)),
			{ID: 6, Category: "현금", Name: "no date", Reminder: models.ReminderDaysBefore(3)},
		}},
		{Name: "A", Assets: []models.Asset{
			dated(7, "today", today, models.ReminderDaysBefore(3)),
			dated(8, "same day other tab", today.AddDays(3), models.ReminderDaysBefore(9)),
		}},
	}
}

func TestDueReminders_Window(t *testing.T) {
	today := models.NewDate(2026, time.March, 1)
	due := DueReminders(reminderFixture(today), today)

	var names []string
	for _, d := range due {
		names = append(names, d.Asset.Name)
	}
	assert.Equal(t, []string{"today", "same day other tab", "edge", "inside"}, names)
	assert.Equal(t, "D-Day", due[0].DDay)
	assert.Equal(t, "A", due[1].Tab)
	assert.Equal(t, 3, due[2].DaysLeft)
	assert.Equal(t, "D-5", due[3].DDay)

	assert.Empty(t, DueReminders(nil, today))
}

func newTestReminderService(tabs []store.Tab, sender DigestSender, now time.Time) *ReminderService {
	logger, _ := test.NewNullLogger()
	r := NewReminderService(staticSource(tabs), sender, time.Minute, logger)
	r.now = func() time.Time { return now }
	return r
}

func TestReminderService_CheckSendsOncePerDay(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local)
	today := models.DateOf(now)
	sender := &recordingSender{}
	r := newTestReminderService(reminderFixture(today), sender, now)

	n, err := r.Check()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, sender.calls, 1)

	n, err = r.Check()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, sender.calls, 1)

	r.now = func() time.Time { return now.Add(24 * time.Hour) }
	_, err = r.Check()
	require.NoError(t, err)
	assert.Len(t, sender.calls, 2)
}

func TestReminderService_FailedSendIsRetried(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local)
	sender := &recordingSender{err: errors.New("smtp down")}
	r := newTestReminderService(reminderFixture(models.DateOf(now)), sender, now)

	_, err := r.Check()
	assert.Error(t, err)

	sender.err = nil
	n, err := r.Check()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestReminderService_NothingDue(t *testing.T) {
	sender := &recordingSender{}
	r := newTestReminderService(nil, sender, time.Now())
	n, err := r.Check()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, sender.calls)
	assert.Empty(t, r.Due())
}

func TestReminderService_RunStopsOnCancel(t *testing.T) {
	sender := &recordingSender{}
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local)
	r := newTestReminderService(reminderFixture(models.DateOf(now)), sender, now)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
