package api

import (
	"errors"
	"io"

	"assetbook/service"

	"github.com/gin-gonic/gin"
)

// TestMailer 发送测试邮件
type TestMailer interface {
	SendTestEmail(to string) error
}

// ReminderHandler 到期提醒
type ReminderHandler struct {
	reminders *service.ReminderService
	mailer    TestMailer
}

// NewReminderHandler 创建提醒处理器；mailer 为 nil 时测试邮件返回 503
func NewReminderHandler(reminders *service.ReminderService, mailer TestMailer) *ReminderHandler {
	return &ReminderHandler{reminders: reminders, mailer: mailer}
}

// TestMailRequest 测试邮件请求
type TestMailRequest struct {
	To string `json:"to" example:"me@example.com"`
}

// List 今天需要提醒的资产
// @Summary 만기 알림 목록
// @Description 만기일 - 알림 일수 <= 오늘 <= 만기일 인 자산을 만기일 순으로 반환합니다
// @Tags 알림
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]service.DueReminder} "조회 성공"
// @Router /api/v1/reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	Success(c, h.reminders.Due())
}

// Send 立即检查并发送提醒邮件（当天已发送则跳过）
// @Summary 만기 알림 발송
// @Tags 알림
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=map[string]int} "발송 결과 (sent: 발송 건수)"
// @Failure 503 {object} Response "메일 비활성화"
// @Router /api/v1/reminders/send [post]
func (h *ReminderHandler) Send(c *gin.Context) {
	n, err := h.reminders.Check()
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"sent": n})
}

// TestMail 发送测试邮件，检查 SMTP 设置
// @Summary 메일 설정 테스트
// @Description 수신 주소를 비우면 설정된 기본 수신 주소로 보냅니다
// @Tags 알림
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestMailRequest false "수신 주소"
// @Success 200 {object} Response "발송 성공"
// @Failure 400 {object} Response "요청 형식 오류"
// @Failure 503 {object} Response "메일 비활성화"
// @Router /api/v1/reminders/test-mail [post]
func (h *ReminderHandler) TestMail(c *gin.Context) {
	var req TestMailRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, "요청 형식이 올바르지 않습니다")
		return
	}
	if h.mailer == nil {
		HandleError(c, service.ErrEmailDisabled)
		return
	}
	if err := h.mailer.SendTestEmail(req.To); err != nil {
		HandleError(c, err)
		return
	}
	SuccessWithMessage(c, "테스트 메일을 보냈습니다", nil)
}
