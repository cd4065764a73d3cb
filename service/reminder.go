package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"assetbook/models"
	"assetbook/store"

	"github.com/sirupsen/logrus"
)

// DueReminder 进入提醒区间的资产
type DueReminder struct {
	Tab      string       `json:"tab"`
	Asset    models.Asset `json:"asset"`
	DaysLeft int          `json:"days_left"`
	DDay     string       `json:"d_day"`
}

// DueReminders 找出 到期日-提前天数 <= today <= 到期日 的记录，按到期日、标签页、编号排序
func DueReminders(tabs []store.Tab, today models.Date) []DueReminder {
	due := []DueReminder{}
	for _, tab := range tabs {
		for _, a := range tab.Assets {
			if a.MaturityDate == nil {
				continue
			}
			offset, ok := a.Reminder.Days()
			if !ok {
				continue
			}
			days := models.DaysUntil(*a.MaturityDate, today)
			if days < 0 || days > offset {
				continue
			}
			due = append(due, DueReminder{
				Tab:      tab.Name,
				Asset:    a.Clone(),
				DaysLeft: days,
				DDay:     models.DDayLabel(days),
			})
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].DaysLeft != due[j].DaysLeft {
			return due[i].DaysLeft < due[j].DaysLeft
		}
		if due[i].Tab != due[j].Tab {
			return due[i].Tab < due[j].Tab
		}
		return due[i].Asset.ID < due[j].Asset.ID
	})
	return due
}

// SnapshotSource 提供全部数据的只读副本
type SnapshotSource interface {
	Snapshot() []store.Tab
}

// DigestSender 发送提醒汇总
type DigestSender interface {
	SendReminderDigest(today models.Date, items []DueReminder) error
}

// ReminderService 定期检查到期提醒，每天最多发送一次汇总邮件
type ReminderService struct {
	source   SnapshotSource
	sender   DigestSender
	interval time.Duration
	log      logrus.FieldLogger
	now      func() time.Time

	mu       sync.Mutex
	lastSent models.Date
	sent     bool
}

// NewReminderService 创建提醒服务；sender 为 nil 时只记录日志
func NewReminderService(source SnapshotSource, sender DigestSender, interval time.Duration, logger logrus.FieldLogger) *ReminderService {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ReminderService{
		source:   source,
		sender:   sender,
		interval: interval,
		log:      logger.WithField("module", "reminder"),
		now:      time.Now,
	}
}

// Today 本地时区的今天
func (r *ReminderService) Today() models.Date {
	return models.DateOf(r.now())
}

// Due 今天需要提醒的记录
func (r *ReminderService) Due() []DueReminder {
	return DueReminders(r.source.Snapshot(), r.Today())
}

// Check 执行一次检查，返回本次发送的条数；当天已发送过则跳过
func (r *ReminderService) Check() (int, error) {
	today := r.Today()
	items := DueReminders(r.source.Snapshot(), today)
	if len(items) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sent && r.lastSent == today {
		return 0, nil
	}

	for _, it := range items {
		r.log.WithFields(logrus.Fields{
			"tab":      it.Tab,
			"id":       it.Asset.ID,
			"name":     it.Asset.Name,
			"maturity": it.Asset.MaturityDate.String(),
			"d_day":    it.DDay,
		}).Info("만기 알림")
	}

	if r.sender != nil {
		if err := r.sender.SendReminderDigest(today, items); err != nil {
			return 0, err
		}
	}
	r.lastSent, r.sent = today, true
	return len(items), nil
}

// Run 按间隔循环检查，直到 ctx 结束
func (r *ReminderService) Run(ctx context.Context) error {
	r.log.WithField("interval", r.interval.String()).Info("만기 알림 검사 시작")
	r.checkAndLog()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.Info("만기 알림 검사 종료")
			return nil
		case <-ticker.C:
			r.checkAndLog()
		}
	}
}

func (r *ReminderService) checkAndLog() {
	n, err := r.Check()
	if err != nil {
		r.log.WithError(err).Error("만기 알림 발송 실패")
		return
	}
	if n > 0 {
		r.log.WithField("count", n).Info("만기 알림 발송 완료")
	}
}
