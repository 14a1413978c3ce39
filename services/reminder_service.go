// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"tailorbook-backend/models"
	"tailorbook-backend/store"
	"tailorbook-backend/utils"
)

const (
	ReminderReady = "ready"
	ReminderDue   = "due"
)

// maxReminderLogs bounds the in-memory reminder log; the oldest entries go
// first.
const maxReminderLogs = 1000

// Notifier delivers a text message and reports the channel it used.
type Notifier interface {
	Send(to, body string) (channel string, err error)
}

// TwilioNotifier sends WhatsApp messages to E.164 numbers when a WhatsApp
// sender is configured, and SMS otherwise.
type TwilioNotifier struct {
	client       *twilio.RestClient
	from         string
	whatsAppFrom string
}

func NewTwilioNotifier(accountSid, authToken, from, whatsAppFrom string) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from:         from,
		whatsAppFrom: whatsAppFrom,
	}
}

func (n *TwilioNotifier) Send(to, body string) (string, error) {
	channel := "sms"
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	if strings.HasPrefix(to, "+") && n.whatsAppFrom != "" {
		channel = "whatsapp"
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + n.whatsAppFrom)
	} else {
		params.SetTo(to)
		params.SetFrom(n.from)
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return channel, err
	}
	if resp.Sid != nil {
		log.Printf("[REMINDER] message sent to %s, SID: %s", to, *resp.Sid)
	}
	return channel, nil
}

// LogNotifier only writes the message to the log. Used when Twilio is not
// configured.
type LogNotifier struct{}

func (LogNotifier) Send(to, body string) (string, error) {
	log.Printf("[REMINDER] to %s: %s", to, body)
	return "log", nil
}

// OrderLister is the read side of the order store.
type OrderLister interface {
	List() []models.Order
}

// SettingsReader is the read side of the settings store.
type SettingsReader interface {
	Get() models.ShopSettings
}

// ReminderService tells customers when an order is ready for pickup or due
// the next day. A reminder of one type goes out at most once per order per
// day. Failed sends are retried on the next sweep; skipped ones wait a day.
type ReminderService struct {
	orders   OrderLister
	settings SettingsReader
	notifier Notifier
	now      func() time.Time

	// held for a whole sweep; overlapping runs see each other's sends
	sweep sync.Mutex

	mu   sync.Mutex
	logs []models.ReminderLog
	sent map[string]string // orderID/type -> date last sent
	cron *cron.Cron
}

func NewReminderService(orders OrderLister, settings SettingsReader, notifier Notifier) *ReminderService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ReminderService{
		orders:   orders,
		settings: settings,
		notifier: notifier,
		now:      time.Now,
		sent:     make(map[string]string),
	}
}

// StartScheduler runs SendDailyReminders on the given cron spec.
func (s *ReminderService) StartScheduler(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { s.SendDailyReminders() }); err != nil {
		return fmt.Errorf("reminder schedule %q: %w", spec, err)
	}
	c.Start()

	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()
	log.Printf("[REMINDER] scheduler started (%s)", spec)
	return nil
}

func (s *ReminderService) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// SendDailyReminders sweeps the current orders and returns the log entries
// written during this run.
func (s *ReminderService) SendDailyReminders() []models.ReminderLog {
	s.sweep.Lock()
	defer s.sweep.Unlock()

	now := s.now()
	today := utils.FormatDate(now)
	shop := s.settings.Get()
	s.forgetBefore(today)

	var run []models.ReminderLog
	for _, o := range s.orders.List() {
		kind, message := reminderFor(o, shop, now)
		if kind == "" {
			continue
		}
		key := o.ID + "/" + kind

		s.mu.Lock()
		already := s.sent[key] == today
		s.mu.Unlock()
		if already {
			continue
		}

		entry := s.deliver(o, kind, message, now)
		run = append(run, entry)

		s.mu.Lock()
		if entry.Status != "failed" {
			s.sent[key] = today
		}
		s.logs = append(s.logs, entry)
		if over := len(s.logs) - maxReminderLogs; over > 0 {
			s.logs = append([]models.ReminderLog(nil), s.logs[over:]...)
		}
		s.mu.Unlock()
	}
	log.Printf("[REMINDER] sweep finished: %d reminders", len(run))
	return run
}

// Logs returns the newest reminder attempts, oldest first.
func (s *ReminderService) Logs() []models.ReminderLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ReminderLog, len(s.logs))
	copy(out, s.logs)
	return out
}

// forgetBefore drops dedupe keys from earlier days.
func (s *ReminderService) forgetBefore(today string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, day := range s.sent {
		if day != today {
			delete(s.sent, key)
		}
	}
}

func (s *ReminderService) deliver(o models.Order, kind, message string, now time.Time) models.ReminderLog {
	entry := models.ReminderLog{
		ID:           store.NewID(),
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		Phone:        o.CustomerPhone,
		Type:         kind,
		Message:      message,
		SentAt:       now,
	}

	to, ok := utils.NormalizePhone(o.CustomerPhone)
	if !ok {
		entry.Status = "skipped"
		entry.ErrorMessage = "phone number is not dialable"
		return entry
	}

	channel, err := s.notifier.Send(to, message)
	entry.Channel = channel
	if err != nil {
		log.Printf("[REMINDER] failed to send to %s: %v", to, err)
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
		return entry
	}
	entry.Status = "sent"
	return entry
}

// reminderFor picks the reminder an order needs today, if any.
func reminderFor(o models.Order, shop models.ShopSettings, now time.Time) (kind, message string) {
	switch {
	case o.Status == models.StatusReady:
		msg := fmt.Sprintf("Hi %s, your order %s at %s is ready for pickup.", o.CustomerName, o.ID, shop.ShopName)
		if o.RemainingAmount > 0 {
			msg += fmt.Sprintf(" Balance due: %s %.2f.", shop.Currency, o.RemainingAmount)
		}
		return ReminderReady, msg
	case o.Status.IsActive():
		due, err := utils.ParseDate(o.DueDate, now.Location())
		if err != nil || utils.DaysBetween(now, due) != 1 {
			return "", ""
		}
		return ReminderDue, fmt.Sprintf("Hi %s, your order %s at %s is due tomorrow (%s).", o.CustomerName, o.ID, shop.ShopName, o.DueDate)
	}
	return "", ""
}
