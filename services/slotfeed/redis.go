package slotfeed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"venuebook/models"
	"venuebook/utils"
)

// RedisFeed carries slot pushes over Redis Pub/Sub, one channel per
// (package, date) key. Producers (the room-occupancy service) publish with
// Publish; consumers subscribe through the Merger.
type RedisFeed struct {
	Client *redis.Client
}

// NewRedisFeed constructs a feed over the shared feed client.
func NewRedisFeed(client *redis.Client) *RedisFeed {
	return &RedisFeed{Client: client}
}

func channelName(key Key) string {
	return fmt.Sprintf("slots:%s:%s", key.PackageID, key.Date)
}

func (f *RedisFeed) Subscribe(ctx context.Context, key Key) (<-chan Push, error) {
	sub := f.Client.Subscribe(ctx, channelName(key))
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to subscribe to slot feed: %w", err)
	}

	out := make(chan Push)
	go func() {
		logger := utils.GetLogger()
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var push models.SlotPush
				if err := json.Unmarshal([]byte(msg.Payload), &push); err != nil {
					logger.Warn("dropping malformed slot push",
						zap.String("channel", msg.Channel), zap.Error(err))
					continue
				}
				select {
				case <-ctx.Done():
					return
				case out <- Push{
					Key:   Key{PackageID: push.PackageID, Date: push.Date},
					Slots: push.AvailableSlots,
				}:
				}
			}
		}
	}()
	return out, nil
}

// Publish emits a slot snapshot for a key. Exposed for the feed producer and
// for the refresh worker.
func (f *RedisFeed) Publish(ctx context.Context, key Key, slots []models.TimeSlot) error {
	payload, err := json.Marshal(models.SlotPush{
		PackageID:      key.PackageID,
		Date:           key.Date,
		AvailableSlots: slots,
	})
	if err != nil {
		return err
	}
	return f.Client.Publish(ctx, channelName(key), payload).Err()
}
