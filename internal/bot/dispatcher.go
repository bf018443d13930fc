package bot

import (
	"context"
	"fmt"
	"time"
)

// Dispatcher sequences the outbound items of a single turn with their pacing
// delays. The first failed send aborts the remainder of the sequence.
type Dispatcher struct {
	out   Outbound
	pause func(ctx context.Context, d time.Duration) error
}

func NewDispatcher(out Outbound) *Dispatcher {
	return &Dispatcher{out: out, pause: pause}
}

func (d *Dispatcher) SendSequence(ctx context.Context, to string, replies []Reply) error {
	for i, r := range replies {
		if err := d.pause(ctx, r.Delay); err != nil {
			return err
		}

		var err error
		if r.File != "" {
			err = d.out.SendFile(ctx, to, r.File, r.Caption)
		} else {
			err = d.out.SendText(ctx, to, r.Text)
		}
		if err != nil {
			return fmt.Errorf("send %d/%d to %s: %w", i+1, len(replies), to, err)
		}
	}
	return nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
