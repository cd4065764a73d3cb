package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"assetbook/models"
	"assetbook/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSender struct {
	calls int
	err   error
}

func (s *countingSender) SendReminderDigest(models.Date, []service.DueReminder) error {
	s.calls++
	return s.err
}

func TestReminderHandler(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddTab("예금"))

	sender := &countingSender{err: errors.New("smtp down")}
	reminders := service.NewReminderService(s, sender, time.Hour, nullLogger())
	today := reminders.Today()
	for _, in := range []models.AssetInput{
		{Category: "예금", Name: "soon", MaturityDate: today.AddDays(3).String(), Reminder: "9"},
		{Category: "예금", Name: "later", MaturityDate: today.AddDays(20).String(), Reminder: "9"},
		{Category: "예금", Name: "silent", MaturityDate: today.AddDays(1).String()},
	} {
		_, err := s.AddRecord("예금", in)
		require.NoError(t, err)
	}

	h := NewReminderHandler(reminders, nil)
	r := gin.New()
	r.GET("/reminders", h.List)
	r.POST("/reminders/send", h.Send)
	r.POST("/reminders/test-mail", h.TestMail)

	w := doJSON(r, "GET", "/reminders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var due []service.DueReminder
	decodeResponse(t, w, &due)
	require.Len(t, due, 1)
	assert.Equal(t, "soon", due[0].Asset.Name)
	assert.Equal(t, "예금", due[0].Tab)
	assert.Equal(t, 3, due[0].DaysLeft)
	assert.Equal(t, "D-3", due[0].DDay)

	w = doJSON(r, "POST", "/reminders/send", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "send failure is reported")

	sender.err = nil
	var res map[string]int
	w = doJSON(r, "POST", "/reminders/send", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeResponse(t, w, &res)
	assert.Equal(t, 1, res["sent"])

	w = doJSON(r, "POST", "/reminders/send", nil)
	decodeResponse(t, w, &res)
	assert.Equal(t, 0, res["sent"], "one digest per day")
	assert.Equal(t, 2, sender.calls)
}

type recordingMailer struct {
	to  []string
	err error
}

func (m *recordingMailer) SendTestEmail(to string) error {
	m.to = append(m.to, to)
	return m.err
}

func TestReminderHandler_TestMail(t *testing.T) {
	reminders := service.NewReminderService(newTestStore(t), nil, time.Hour, nullLogger())

	r := gin.New()
	r.POST("/disabled", NewReminderHandler(reminders, nil).TestMail)
	w := doJSON(r, "POST", "/disabled", TestMailRequest{To: "me@example.com"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	mailer := &recordingMailer{}
	r.POST("/test-mail", NewReminderHandler(reminders, mailer).TestMail)

	w = doJSON(r, "POST", "/test-mail", TestMailRequest{To: "me@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, "POST", "/test-mail", nil)
	require.Equal(t, http.StatusOK, w.Code, "empty body falls back to the configured address")
	assert.Equal(t, []string{"me@example.com", ""}, mailer.to)

	w = doJSON(r, "POST", "/test-mail", `{"to": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mailer.err = service.ErrEmailDisabled
	w = doJSON(r, "POST", "/test-mail", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
