package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/schedule"
)

func schedulingContextKey(sub string) string {
	return fmt.Sprintf("scheduling_context_%s", sub)
}

// loadSchedulingContext 从 redis 读取当前登录者的排班上下文，
// 没有保存过时返回默认上下文（无团队筛选，第一天）
func (h *Handler) loadSchedulingContext(r *http.Request) (schedule.SchedulingContext, error) {
	sub := r.Context().Value(SubCtxKey).(string)

	schedulingCtx := schedule.SchedulingContext{Day: "1"}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	raw, err := h.redisClient.Get(ctx, schedulingContextKey(sub)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return schedulingCtx, nil
		}
		return schedulingCtx, err
	}

	if err := json.Unmarshal([]byte(raw), &schedulingCtx); err != nil {
		return schedulingCtx, err
	}

	return schedulingCtx, nil
}

func (h *Handler) GetSchedulingContext(w http.ResponseWriter, r *http.Request) {
	schedulingCtx, err := h.loadSchedulingContext(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班上下文成功", schedulingCtx)
}

func (h *Handler) UpdateSchedulingContext(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Teams []string `json:"teams"`
		Day   string   `json:"day" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	day, err := strconv.Atoi(req.Day)
	if err != nil || day < 1 || day > h.config.Schedule.PlanningDays {
		h.errorResponse(w, r, "无效的排班日")
		return
	}

	schedulingCtx := schedule.SchedulingContext{
		TeamFilter: req.Teams,
		Day:        req.Day,
	}

	raw, err := json.Marshal(schedulingCtx)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	sub := r.Context().Value(SubCtxKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	expiration := time.Duration(h.config.Session.Expiration) * time.Second
	if err := h.redisClient.Set(ctx, schedulingContextKey(sub), raw, expiration).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新排班上下文成功", schedulingCtx)
}
