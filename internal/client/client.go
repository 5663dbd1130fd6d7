// Package client consumes the reservation service: rooms, reservations, and
// payments. It owns the wire types and the error taxonomy; it never decides
// anything about availability or pricing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Room struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"price_per_night"`
}

// Reservation as exchanged with the service. Dates travel as YYYY-MM-DD
// calendar dates with no time-of-day component.
type Reservation struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	GuestEmail string `json:"guest_email"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

type Payment struct {
	ID            string  `json:"id"`
	ReservationID string  `json:"reservation_id"`
	Amount        float64 `json:"amount"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log.With(zap.String("component", "client")),
	}
}

func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	if err := c.get(ctx, "/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) GetRoom(ctx context.Context, roomID string) (*Room, error) {
	var room Room
	if err := c.get(ctx, "/rooms/"+roomID, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) ListRoomReservations(ctx context.Context, roomID string) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.get(ctx, "/rooms/"+roomID+"/reservations", &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) ListReservations(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.get(ctx, "/reservations", &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, payload Reservation) (*Reservation, error) {
	var created Reservation
	if err := c.post(ctx, "/reservations", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreatePayment(ctx context.Context, payload Payment) (*Payment, error) {
	var created Payment
	if err := c.post(ctx, "/payments", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := c.get(ctx, "/payments", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request GET %s: %w", path, err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload for POST %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request POST %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Surface the service's own reason verbatim when it sent one.
		detail := "Unknown error"
		var body errorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
			detail = body.Detail
		}
		return &RejectedError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
