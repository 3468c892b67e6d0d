package stream

import (
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// A Publisher delivers encoded frames to the strip.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// MQTTPublisher publishes frames on an MQTT broker.
type MQTTPublisher struct {
	client  mqtt.Client
	qos     byte
	timeout time.Duration
}

// NewMQTTPublisher creates a publisher on a connected client.
func NewMQTTPublisher(client mqtt.Client, qos byte) *MQTTPublisher {
	p := new(MQTTPublisher)
	p.client = client
	p.qos = qos
	p.timeout = 5 * time.Second
	return p
}

// Publish sends payload and waits for the broker to acknowledge it.
func (p *MQTTPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, p.qos, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("stream: publish to %s timed out after %v", topic, p.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("stream: publish to %s: %w", topic, err)
	}
	return nil
}

// NewMQTTClient creates an unconnected client for cfg. The paho error and
// warning loggers are routed to logger.
func NewMQTTClient(cfg MqttConfig, logger *slog.Logger, onConnect mqtt.OnConnectHandler) mqtt.Client {
	if logger == nil {
		logger = slog.Default()
	}
	mqtt.ERROR = slog.NewLogLogger(logger.Handler(), slog.LevelError)
	mqtt.WARN = slog.NewLogLogger(logger.Handler(), slog.LevelWarn)

	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("mqtt connection lost", "error", err)
		})
	if onConnect != nil {
		options.SetOnConnectHandler(onConnect)
	}
	return mqtt.NewClient(options)
}

// Connect connects client, giving up after timeout.
func Connect(client mqtt.Client, timeout time.Duration) error {
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("stream: connect timed out after %v", timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("stream: connect: %w", err)
	}
	return nil
}
