package scheduler

import (
	"fmt"
	"sync"

	"funweather/internal/i18n"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Notifier delivers a daily reminder. The default implementation only
// logs; push transports plug in behind this interface.
type Notifier interface {
	Notify(title, body string) error
}

// LogNotifier writes reminders to the service log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) Notify(title, body string) error {
	n.Logger.Info("Daily reminder",
		zap.String("title", title),
		zap.String("body", body))
	return nil
}

// Reminder fires a once-a-day notification at a fixed hour. Only one
// reminder entry exists at a time: scheduling again replaces the
// previous entry instead of stacking a second one.
type Reminder struct {
	cron     *cron.Cron
	notifier Notifier
	language func() string
	logger   *zap.Logger

	mu      sync.Mutex
	entryID cron.EntryID
	active  bool
}

func NewReminder(notifier Notifier, language func() string, logger *zap.Logger) *Reminder {
	return &Reminder{
		cron:     cron.New(),
		notifier: notifier,
		language: language,
		logger:   logger,
	}
}

// Schedule registers the daily reminder at the given hour (0-23). A
// previously scheduled entry is removed first, so calling Schedule
// repeatedly is safe.
func (r *Reminder) Schedule(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("reminder hour out of range: %d", hour)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active {
		r.cron.Remove(r.entryID)
		r.active = false
	}

	spec := fmt.Sprintf("0 %d * * *", hour)
	id, err := r.cron.AddFunc(spec, r.fire)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}
	r.entryID = id
	r.active = true

	r.logger.Info("Daily reminder scheduled",
		zap.Int("hour", hour),
		zap.String("spec", spec))
	return nil
}

// Cancel removes the reminder entry if one is scheduled.
func (r *Reminder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return
	}
	r.cron.Remove(r.entryID)
	r.active = false
	r.logger.Info("Daily reminder cancelled")
}

// Scheduled reports whether a reminder entry is currently registered.
func (r *Reminder) Scheduled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *Reminder) Start() {
	r.cron.Start()
}

func (r *Reminder) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Reminder) fire() {
	lang := r.language()
	title := i18n.Text(lang, "notificationTitle")
	body := i18n.Text(lang, "notificationBodyText")

	if err := r.notifier.Notify(title, body); err != nil {
		r.logger.Error("Reminder delivery failed", zap.Error(err))
		return
	}
	r.logger.Debug("Reminder delivered")
}
