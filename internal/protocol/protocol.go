// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package protocol defines the JSON contract spoken with the reservation
// authority. Every request is a flat JSON object carrying an "action"
// discriminator; every response is a tagged union on "status". The authority
// is a black box: this package only shapes what goes over the process
// boundary, it never interprets business rules.
package protocol

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Actions understood by the authority. No other actions exist; an
// unrecognized action is the authority's concern, not validated here.
const (
	ActionGetLayout          = "get_layout"
	ActionReserve            = "reserve"
	ActionDeleteReservations = "delete_reservations"
	ActionListReservations   = "list_reservations"
)

// StatusOK is the success tag of a Response. Anything else is an error.
const StatusOK = "ok"

// Seat identifies one grid cell. Rows and columns are 1-based positive
// integers throughout the wire protocol; identity is the pair.
type Seat struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the seat as the "ROW-COL" label used on screen and in flags.
func (s Seat) String() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Col)
}

// ParseSeat parses a "ROW-COL" label such as "3-7" into a Seat.
func ParseSeat(label string) (Seat, error) {
	parts := strings.SplitN(strings.TrimSpace(label), "-", 2)
	if len(parts) != 2 {
		return Seat{}, fmt.Errorf("invalid seat %q: expected ROW-COL, e.g. 2-5", label)
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil || row < 1 {
		return Seat{}, fmt.Errorf("invalid seat %q: row must be a positive integer", label)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil || col < 1 {
		return Seat{}, fmt.Errorf("invalid seat %q: column must be a positive integer", label)
	}
	return Seat{Row: row, Col: col}, nil
}

// SortSeats orders seats row-major in place for stable wire and display order.
func SortSeats(seats []Seat) {
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Col < seats[j].Col
	})
}

// JoinSeats formats seats as a comma-separated list of labels.
func JoinSeats(seats []Seat) string {
	labels := make([]string, len(seats))
	for i, s := range seats {
		labels[i] = s.String()
	}
	return strings.Join(labels, ", ")
}

// LayoutRequest asks for a fresh layout of the given grid size.
type LayoutRequest struct {
	Action string `json:"action"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
}

// NewLayoutRequest builds a get_layout request.
func NewLayoutRequest(rows, cols int) LayoutRequest {
	return LayoutRequest{Action: ActionGetLayout, Rows: rows, Cols: cols}
}

// ReserveRequest asks the authority to reserve seats. Client is nullable on
// the wire: an anonymous reservation sends "client": null, never omits it.
type ReserveRequest struct {
	Action string  `json:"action"`
	Seats  []Seat  `json:"seats"`
	Client *string `json:"client"`
}

// NewReserveRequest builds a reserve request. An empty client name maps to a
// null client on the wire.
func NewReserveRequest(seats []Seat, client string) ReserveRequest {
	req := ReserveRequest{Action: ActionReserve, Seats: seats}
	if client != "" {
		req.Client = &client
	}
	return req
}

// ReleaseRequest asks the authority to delete reservations for seats.
type ReleaseRequest struct {
	Action string `json:"action"`
	Seats  []Seat `json:"seats"`
}

// NewReleaseRequest builds a delete_reservations request.
func NewReleaseRequest(seats []Seat) ReleaseRequest {
	return ReleaseRequest{Action: ActionDeleteReservations, Seats: seats}
}

// ListRequest asks for every reservation the authority holds.
type ListRequest struct {
	Action string `json:"action"`
}

// NewListRequest builds a list_reservations request.
func NewListRequest() ListRequest {
	return ListRequest{Action: ActionListReservations}
}

// Layout is the authoritative grid state. It is produced fresh on every
// get_layout call and replaced wholesale on the client, never mutated.
type Layout struct {
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	Reserved []Seat `json:"reserved"`
}

// Reservation is owned and created exclusively by the authority; the client
// only ever reads it. An empty Client means the authority recorded none.
type Reservation struct {
	Seat     Seat   `json:"seat"`
	TicketID string `json:"ticketId"`
	Client   string `json:"client"`
}

// Response is the tagged union returned for every action. Status selects
// which payload fields are valid: "ok" enables the per-action payload,
// anything else enables Message and, for reserve, the optional Failed list.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	// get_layout
	Layout *Layout `json:"layout"`

	// reserve
	TicketIDs []string `json:"ticketIds"`

	// list_reservations
	Reservations []Reservation `json:"reservations"`

	// Failed enumerates requested seats the authority could not grant.
	// Only meaningful for reserve; absent means the authority did not
	// distinguish per-seat failures.
	Failed []Seat `json:"failed"`
}

// OK reports whether the response carries a success status.
func (r *Response) OK() bool {
	return r.Status == StatusOK
}
