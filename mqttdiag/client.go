package mqttdiag

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// ErrNoBroker indicates an empty broker URL.
var ErrNoBroker = errors.New("mqttdiag: broker not configured")

// connectTimeout bounds the initial connection attempt.
const connectTimeout = 10 * time.Second

// Settings describe the broker connection.
type Settings struct {
	Broker   string
	ClientID string
	Username string
	Password string
}

// Dial connects to the broker described by s and returns the connected client.
func Dial(s Settings) (mqtt.Client, error) {
	if s.Broker == "" {
		return nil, ErrNoBroker
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Broker)
	clientID := s.ClientID
	if clientID == "" {
		clientID = "renormtsp"
	}
	opts.SetClientID(clientID)
	if s.Username != "" {
		opts.SetUsername(s.Username)
		opts.SetPassword(s.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqttdiag: connecting to %s: timeout after %v", s.Broker, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqttdiag: connecting to %s: %w", s.Broker, err)
	}

	return client, nil
}
