package realtime

import (
	"encoding/json"

	"github.com/bloodstream/bloodstream-go/internal/models"
)

// Inbound event names pushed by the server.
const (
	EventNotification        = "notification"
	EventBloodRequestNew     = "blood-request:new"
	EventBloodRequestMatched = "blood-request:matched"
	EventDeliveryStatus      = "delivery:status-update"
	EventDeliveryLocation    = "delivery:location-update"
	EventAppointmentReminder = "appointment:reminder"
)

// Outbound event names.
const (
	eventJoin           = "join"
	eventJoinRoom       = "join-room"
	eventLeaveRoom      = "leave-room"
	eventLocationUpdate = "location:update"
)

// Envelope is the wire frame: an event name plus its JSON payload.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type joinPayload struct {
	UserID string      `json:"userId"`
	Role   models.Role `json:"role"`
}

type roomPayload struct {
	Room string `json:"room"`
}

// LocationUpdate is sent by delivery personnel while en route.
type LocationUpdate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Handlers are optional application callbacks invoked after the client's
// built-in handling of each event (store update, notice). A nil field means
// the built-in handling alone. Callbacks run on the read goroutine.
type Handlers struct {
	Notification        func(models.Notification)
	BloodRequestNew     func(models.BloodRequest)
	BloodRequestMatched func(models.BloodRequest)
	DeliveryStatus      func(models.Delivery)
	DeliveryLocation    func(models.Delivery)
	AppointmentReminder func(models.Appointment)
}
