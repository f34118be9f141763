package ingest

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LAES18/proyecto-automatas/models"
	"github.com/LAES18/proyecto-automatas/store"
)

const (
	// readingsTopic matches one device ID per publish, e.g.
	// plantas/esp32s3_01/lecturas.
	readingsTopic = "plantas/+/lecturas"

	connectTimeout = 10 * time.Second
	subscribeQoS   = 1
)

// ReadingHandler receives each decoded reading after it is stored.
type ReadingHandler func(models.SensorReading)

// Start connects to the broker and feeds published readings through the same
// store path as POST /api/sensores. Payloads share that endpoint's JSON body.
// The client auto-reconnects and re-subscribes on connection loss.
func Start(brokerURL string, db *gorm.DB, onReading ReadingHandler) error {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID("smartplant-" + uuid.NewString()[:8])
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetOnConnectHandler(func(client pahomqtt.Client) {
		token := client.Subscribe(readingsTopic, subscribeQoS, func(_ pahomqtt.Client, msg pahomqtt.Message) {
			handleMessage(db, onReading, msg)
		})
		if token.Wait() && token.Error() != nil {
			log.Println("mqtt subscribe:", token.Error())
			return
		}
		log.Printf("MQTT ingest subscribed to %s", readingsTopic)
	})

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("mqtt connect: timeout after %s", connectTimeout)
	}
	if token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return nil
}

func handleMessage(db *gorm.DB, onReading ReadingHandler, msg pahomqtt.Message) {
	reading, err := DecodeReading(msg.Payload())
	if err != nil {
		log.Printf("mqtt: dropping malformed payload on %s: %v", msg.Topic(), err)
		return
	}
	if err := store.InsertReading(db, &reading); err != nil {
		log.Printf("mqtt: storing reading for %s: %v", reading.DeviceID, err)
		return
	}
	if onReading != nil {
		onReading(reading)
	}
}

// DecodeReading parses a published payload into a storable reading row.
func DecodeReading(payload []byte) (models.SensorReading, error) {
	var req models.SensorReadingRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.SensorReading{}, err
	}
	if req.DeviceID == "" {
		return models.SensorReading{}, fmt.Errorf("device_id requerido")
	}
	return req.Reading(), nil
}
