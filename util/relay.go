package util

import (
	"fmt"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
)

const relayTimeout = 2 * time.Second

var newMQTTClient = MQTT.NewClient

// Relay republishes each spoken response on an MQTT topic. The zero
// value is a disabled relay.
type Relay struct {
	client MQTT.Client
	topic  string
}

// NewRelay builds a relay from Relay_broker_uri and Relay_topic. Either
// one empty disables it.
func NewRelay() *Relay {
	broker := Config.GetString("relay_broker_uri")
	topic := Config.GetString("relay_topic")
	if broker == "" || topic == "" {
		return &Relay{}
	}
	opts := MQTT.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(Config.GetString("relay_client_id") + "_" + GetRandString(6))
	opts.SetUsername(Config.GetString("relay_username"))
	opts.SetPassword(Config.GetString("relay_password"))
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(false)
	opts.SetConnectTimeout(relayTimeout)
	return &Relay{client: newMQTTClient(opts), topic: topic}
}

func (r *Relay) Enabled() bool {
	return r != nil && r.client != nil
}

// Publish connects, sends text at QoS 0 and disconnects.
func (r *Relay) Publish(text string) error {
	if !r.Enabled() {
		return nil
	}
	if token := r.client.Connect(); !token.WaitTimeout(relayTimeout) {
		return fmt.Errorf("relay connect timed out")
	} else if token.Error() != nil {
		return fmt.Errorf("relay connect: %w", token.Error())
	}
	defer r.client.Disconnect(250)

	token := r.client.Publish(r.topic, 0, false, text)
	if !token.WaitTimeout(relayTimeout) {
		return fmt.Errorf("relay publish to %s timed out", r.topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("relay publish to %s: %w", r.topic, token.Error())
	}
	Logger.Debug().Msgf("relayed response on %s", r.topic)
	return nil
}
