package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Reminder 到期前提醒
type Reminder string

// ReminderNone 不提醒（默认值）
const ReminderNone Reminder = "없음"

const (
	reminderStep    = 3
	reminderMaxDays = 30
	reminderSuffix  = "일 전"
)

// ReminderOptions 所有合法的提醒选项
func ReminderOptions() []Reminder {
	opts := []Reminder{ReminderNone}
	for d := reminderStep; d <= reminderMaxDays; d += reminderStep {
		opts = append(opts, ReminderDaysBefore(d))
	}
	return opts
}

// ReminderDaysBefore 到期前 n 天
func ReminderDaysBefore(days int) Reminder {
	return Reminder(strconv.Itoa(days) + reminderSuffix)
}

// ParseReminder 接受 "없음"、"none"、空串、"9일 전" 或纯数字 "9"
func ParseReminder(s string) (Reminder, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == string(ReminderNone) || strings.EqualFold(s, "none") {
		return ReminderNone, nil
	}
	num := strings.TrimSpace(strings.TrimSuffix(s, reminderSuffix))
	days, err := strconv.Atoi(num)
	if err != nil || days < reminderStep || days > reminderMaxDays || days%reminderStep != 0 {
		return "", fmt.Errorf("%w: 알림 값이 올바르지 않습니다: %q", ErrInvalidField, s)
	}
	return ReminderDaysBefore(days), nil
}

// Days 提前天数；none 或非法值返回 false
func (r Reminder) Days() (int, bool) {
	if r == ReminderNone || r == "" {
		return 0, false
	}
	parsed, err := ParseReminder(string(r))
	if err != nil || parsed == ReminderNone {
		return 0, false
	}
	days, _ := strconv.Atoi(strings.TrimSuffix(string(parsed), reminderSuffix))
	return days, true
}
