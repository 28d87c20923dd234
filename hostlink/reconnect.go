package hostlink

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
)

// Dial repeatedly attempts to open cfg's serial port until ctx is
// cancelled, backing off exponentially between attempts. A film-set rig
// routinely has its USB cable unplugged and replugged between takes; this
// is the reconnect loop a long-running host process runs around Open.
func Dial(ctx context.Context, cfg Config) (Port, error) {
	var port Port

	operation := func() error {
		p, err := Open(cfg)
		if err != nil {
			return err
		}
		port = p
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = 0 // retry until ctx is cancelled, not for a fixed time
	b := backoff.WithContext(eb, ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, fmt.Errorf("hostlink: dial %s: %w", cfg.Device, err)
	}
	return port, nil
}
