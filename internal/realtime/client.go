// Package realtime maintains the websocket channel that carries server pushes
// to the client: notifications, blood request activity, delivery tracking,
// and appointment reminders. The connection survives drops with bounded
// exponential backoff and announces itself to the server with a join frame.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bloodstream/bloodstream-go/internal/logging"
	"github.com/bloodstream/bloodstream-go/internal/models"
	"github.com/bloodstream/bloodstream-go/internal/notify"
	"github.com/bloodstream/bloodstream-go/internal/session"
)

// Status is the connection lifecycle state.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusReconnecting Status = "reconnecting"
)

// ErrNotAuthenticated is returned by Connect when the session store holds no
// token or user. The client stays disconnected.
var ErrNotAuthenticated = errors.New("realtime: not authenticated")

// Options configures a Client.
type Options struct {
	// URL is the websocket endpoint, e.g. "ws://localhost:5000/ws".
	URL string

	// Session supplies the token and identity for the handshake. Required.
	Session *session.Store

	// Notifications receives pushed notifications. Required.
	Notifications *notify.Store

	// Notifier surfaces event notices and the give-up message.
	Notifier notify.Notifier

	Logger   logging.Logger
	Policy   ReconnectPolicy
	Handlers Handlers
	Dialer   *websocket.Dialer
}

// Client is a reconnecting websocket client. One instance per session.
// Safe for concurrent use; outbound writes are serialized.
type Client struct {
	url           string
	session       *session.Store
	notifications *notify.Store
	notifier      notify.Notifier
	log           logging.Logger
	policy        ReconnectPolicy
	handlers      Handlers
	dialer        *websocket.Dialer

	mu     sync.Mutex
	conn   *websocket.Conn
	status Status
	gen    int // bumped by Connect/Disconnect so stale goroutines stand down
}

func New(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}
	policy := opts.Policy
	if policy.MaxAttempts == 0 {
		policy = DefaultReconnectPolicy()
	}
	dialer := opts.Dialer
	if dialer == nil {
		dialer = &websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	}
	return &Client{
		url:           opts.URL,
		session:       opts.Session,
		notifications: opts.Notifications,
		notifier:      notifier,
		log:           log,
		policy:        policy,
		handlers:      opts.Handlers,
		dialer:        dialer,
		status:        StatusDisconnected,
	}
}

// Status reports the current connection state.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Connect starts the connection loop. It refuses to start without an
// authenticated session and is a no-op while a loop is already running.
func (c *Client) Connect(ctx context.Context) error {
	token := c.session.AccessToken()
	snap := c.session.Snapshot()
	if token == "" || snap.User == nil {
		c.log.Error(ctx, "cannot connect channel: no auth token or user")
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	if c.status != StatusDisconnected {
		c.mu.Unlock()
		return nil
	}
	c.status = StatusConnecting
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go c.run(ctx, gen, token, *snap.User)
	return nil
}

// Disconnect tears the connection down and stops reconnection. Safe to call
// repeatedly and while disconnected.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.gen++
	conn := c.conn
	c.conn = nil
	c.status = StatusDisconnected
	c.mu.Unlock()

	if conn != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}
}

// Emit sends an event to the server. Without a live connection the event is
// dropped with a logged error; nothing is queued.
func (c *Client) Emit(ctx context.Context, event string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || c.status != StatusConnected {
		c.log.Error(ctx, "channel not connected, dropping event", "event", event)
		return
	}
	c.writeLocked(ctx, event, payload)
}

// JoinRoom subscribes this client to a server-side room, e.g. a delivery's
// tracking feed.
func (c *Client) JoinRoom(ctx context.Context, room string) {
	c.Emit(ctx, eventJoinRoom, roomPayload{Room: room})
}

// LeaveRoom unsubscribes from a room.
func (c *Client) LeaveRoom(ctx context.Context, room string) {
	c.Emit(ctx, eventLeaveRoom, roomPayload{Room: room})
}

// UpdateLocation reports the delivery personnel's current position.
func (c *Client) UpdateLocation(ctx context.Context, lat, lng float64) {
	c.Emit(ctx, eventLocationUpdate, LocationUpdate{Latitude: lat, Longitude: lng})
}

// run dials, joins, and pumps frames until Disconnect or the retry budget is
// spent. One run loop exists per Connect generation.
func (c *Client) run(ctx context.Context, gen int, token string, user models.User) {
	attempt := 0
	for {
		conn, err := c.dial(ctx, token)
		if err != nil {
			attempt++
			c.log.Warn(ctx, "channel connection failed", "attempt", attempt, "error", err)
			if attempt >= c.policy.MaxAttempts {
				c.giveUp(ctx, gen, err)
				return
			}
			if !c.transition(gen, StatusReconnecting) {
				return
			}
			select {
			case <-ctx.Done():
				c.transition(gen, StatusDisconnected)
				return
			case <-time.After(c.policy.Delay(attempt)):
			}
			continue
		}

		if !c.attach(gen, conn) {
			_ = conn.Close()
			return
		}
		attempt = 0
		c.sendJoin(ctx, user)
		c.log.Info(ctx, "channel connected", "url", c.url)

		err = c.readLoop(ctx, conn)
		c.detach(conn)
		if c.staleOrDone(ctx, gen) {
			return
		}
		c.log.Warn(ctx, "channel dropped", "error", err)
		if !c.transition(gen, StatusReconnecting) {
			return
		}
	}
}

func (c *Client) dial(ctx context.Context, token string) (*websocket.Conn, error) {
	u := c.url
	if token != "" {
		sep := "?"
		if u2, err := url.Parse(u); err == nil && u2.RawQuery != "" {
			sep = "&"
		}
		u += sep + "token=" + url.QueryEscape(token)
	}
	conn, resp, err := c.dialer.DialContext(ctx, u, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", c.url, err)
	}
	return conn, nil
}

func (c *Client) sendJoin(ctx context.Context, user models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return
	}
	c.writeLocked(ctx, eventJoin, joinPayload{UserID: user.ID, Role: user.Role})
}

// writeLocked marshals and sends one envelope. Callers hold c.mu, which
// serializes all writers on the connection.
func (c *Client) writeLocked(ctx context.Context, event string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		c.log.Error(ctx, "encoding event payload", "event", event, "error", err)
		return
	}
	if err := c.conn.WriteJSON(Envelope{Event: event, Payload: raw}); err != nil {
		c.log.Error(ctx, "writing event", "event", event, "error", err)
	}
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.log.Warn(ctx, "discarding malformed frame", "error", err)
			continue
		}
		c.dispatch(ctx, env)
	}
}

// dispatch decodes the payload into its event's type and applies the
// built-in behavior before any application callback.
func (c *Client) dispatch(ctx context.Context, env Envelope) {
	switch env.Event {
	case EventNotification:
		var n models.Notification
		if !c.decode(ctx, env, &n) {
			return
		}
		c.notifications.Add(n)
		c.notifier.Notify(notify.ForPriority(n))
		if c.handlers.Notification != nil {
			c.handlers.Notification(n)
		}

	case EventBloodRequestNew:
		var r models.BloodRequest
		if !c.decode(ctx, env, &r) {
			return
		}
		c.log.Info(ctx, "new blood request", "id", r.ID, "bloodType", r.BloodType)
		c.notifier.Notify(notify.Notice{
			Severity: notify.SeverityInfo,
			Title:    "New Blood Request",
			Message:  fmt.Sprintf("%s needed urgently", r.BloodType),
			Duration: notify.DefaultNoticeDuration,
		})
		if c.handlers.BloodRequestNew != nil {
			c.handlers.BloodRequestNew(r)
		}

	case EventBloodRequestMatched:
		var r models.BloodRequest
		if !c.decode(ctx, env, &r) {
			return
		}
		c.log.Info(ctx, "blood request matched", "id", r.ID)
		c.notifier.Notify(notify.Notice{
			Severity: notify.SeveritySuccess,
			Title:    "Match Found!",
			Message:  "A donor has been matched to your request",
			Duration: notify.DefaultNoticeDuration,
		})
		if c.handlers.BloodRequestMatched != nil {
			c.handlers.BloodRequestMatched(r)
		}

	case EventDeliveryStatus:
		var d models.Delivery
		if !c.decode(ctx, env, &d) {
			return
		}
		c.log.Info(ctx, "delivery status update", "id", d.ID, "status", d.Status)
		c.notifier.Notify(notify.Notice{
			Severity: notify.SeverityInfo,
			Title:    "Delivery Update",
			Message:  fmt.Sprintf("Status: %s", d.Status),
			Duration: notify.DefaultNoticeDuration,
		})
		if c.handlers.DeliveryStatus != nil {
			c.handlers.DeliveryStatus(d)
		}

	case EventDeliveryLocation:
		// tracked silently, the map view polls the handler
		var d models.Delivery
		if !c.decode(ctx, env, &d) {
			return
		}
		c.log.Debug(ctx, "delivery location update", "id", d.ID)
		if c.handlers.DeliveryLocation != nil {
			c.handlers.DeliveryLocation(d)
		}

	case EventAppointmentReminder:
		var a models.Appointment
		if !c.decode(ctx, env, &a) {
			return
		}
		c.log.Info(ctx, "appointment reminder", "id", a.ID)
		c.notifier.Notify(notify.Notice{
			Severity: notify.SeverityInfo,
			Title:    "Appointment Reminder",
			Message:  fmt.Sprintf("You have an appointment soon at %s", a.ScheduledAt.Format("15:04")),
			Duration: notify.DefaultNoticeDuration,
		})
		if c.handlers.AppointmentReminder != nil {
			c.handlers.AppointmentReminder(a)
		}

	default:
		c.log.Debug(ctx, "unhandled event", "event", env.Event)
	}
}

func (c *Client) decode(ctx context.Context, env Envelope, v any) bool {
	if err := json.Unmarshal(env.Payload, v); err != nil {
		c.log.Warn(ctx, "discarding malformed payload", "event", env.Event, "error", err)
		return false
	}
	return true
}

func (c *Client) giveUp(ctx context.Context, gen int, err error) {
	c.transition(gen, StatusDisconnected)
	c.log.Error(ctx, "giving up on realtime channel",
		"attempts", c.policy.MaxAttempts, "error", err)
	c.notifier.Notify(notify.Notice{
		Severity: notify.SeverityError,
		Message:  "Unable to connect to real-time updates",
		Duration: notify.DefaultNoticeDuration,
	})
}

// attach installs a live connection unless this generation was cancelled.
func (c *Client) attach(gen int, conn *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.conn = conn
	c.status = StatusConnected
	return true
}

func (c *Client) detach(conn *websocket.Conn) {
	_ = conn.Close()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == conn {
		c.conn = nil
	}
}

// transition moves to the given status if this generation is still current.
func (c *Client) transition(gen int, s Status) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.status = s
	return true
}

func (c *Client) staleOrDone(ctx context.Context, gen int) bool {
	if ctx.Err() != nil {
		c.transition(gen, StatusDisconnected)
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen != c.gen
}
