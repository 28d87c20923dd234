// Package telemetry publishes controller trace/status snapshots to an MQTT
// broker for a film-set wireless monitor station. It is publish-only and
// never feeds back into core.Controller: a dropped or slow broker must
// never be able to affect the 50Hz control loop.
package telemetry

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"cablecam/core"
)

// Publisher wraps an MQTT client scoped to one rig's topic namespace.
type Publisher struct {
	client mqtt.Client
	topic  string
}

// Connect dials brokerURL (e.g. "tcp://monitor.local:1883") and returns a
// Publisher that publishes under "cablecam/<rigID>/...".
func Connect(brokerURL, rigID string) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("cablecam-" + rigID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectTimeout(5 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10*time.Second) || token.Error() != nil {
		return nil, fmt.Errorf("telemetry: connect %s: %w", brokerURL, token.Error())
	}

	return &Publisher{client: client, topic: "cablecam/" + rigID}, nil
}

// statusPayload is the wire shape published on .../status; a thin,
// stable projection of core.ControllerStatus rather than the struct
// itself, so the trace ring's internal layout stays free to change.
type statusPayload struct {
	Safemode string `json:"safemode"`
	Monitor  string `json:"monitor"`
}

// PublishStatus publishes the controller's current arming/monitor state.
// Best-effort: publish failures are swallowed, since a stalled monitor
// link must never block or slow the caller's tick loop.
func (p *Publisher) PublishStatus(status *core.ControllerStatus) {
	payload, err := json.Marshal(statusPayload{
		Safemode: status.Safemode.String(),
		Monitor:  status.Monitor.String(),
	})
	if err != nil {
		return
	}
	p.client.Publish(p.topic+"/status", 0, false, payload)
}

// PublishTrace publishes one trace sample for the remote monitor's live
// position/speed readout.
func (p *Publisher) PublishTrace(sample core.TraceSample) {
	payload, err := json.Marshal(sample)
	if err != nil {
		return
	}
	p.client.Publish(p.topic+"/trace", 0, false, payload)
}

// Close disconnects from the broker, waiting up to 250ms for in-flight
// publishes to drain.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
