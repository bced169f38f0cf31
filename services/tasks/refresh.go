package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeCalendarRefresh = "calendar:refresh"

// CalendarRefreshPayload names the location whose cached calendars should be
// recomputed.
type CalendarRefreshPayload struct {
	LocationID string `json:"locationId"`
}

func NewCalendarRefreshTask(locationID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(CalendarRefreshPayload{LocationID: locationID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCalendarRefresh, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
