package domain

import "time"

type ScheduleSnapshot struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Payload   *SchedulePayload `json:"payload,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Version   int32            `json:"-"`
}
