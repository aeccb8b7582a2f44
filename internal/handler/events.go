package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
)

// publishScheduleEvent 把排班变更事件投递到消息队列，由通知服务消费。
// to 为空时回退到运营邮箱。投递失败只记录日志，不影响已经落地的排班操作
func (h *Handler) publishScheduleEvent(eventType string, to string, data any) {
	if to == "" {
		to = h.config.Operator.Email
	}

	message := domain.ScheduleEventMessage{
		Type: eventType,
		To:   to,
		Data: data,
	}

	body, err := json.Marshal(message)
	if err != nil {
		slog.Error("序列化排班事件失败", "type", eventType, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.eventChannel.PublishWithContext(
		ctx,
		"",
		"schedule_events",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("投递排班事件失败", "type", eventType, "error", err)
	}
}
