// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package protocol

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseSeat(t *testing.T) {
	tests := []struct {
		name        string
		label       string
		want        Seat
		expectError bool
	}{
		{name: "simple", label: "1-1", want: Seat{Row: 1, Col: 1}},
		{name: "multi digit", label: "12-34", want: Seat{Row: 12, Col: 34}},
		{name: "surrounding spaces", label: "  3-7 ", want: Seat{Row: 3, Col: 7}},
		{name: "missing separator", label: "11", expectError: true},
		{name: "empty", label: "", expectError: true},
		{name: "zero row", label: "0-1", expectError: true},
		{name: "negative column", label: "1--2", expectError: true},
		{name: "non-numeric", label: "a-b", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeat(tt.label)
			if tt.expectError {
				if err == nil {
					t.Errorf("ParseSeat(%q) = %v, want error", tt.label, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeat(%q) unexpected error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeat(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestSeatStringRoundTrip(t *testing.T) {
	seat := Seat{Row: 4, Col: 9}
	got, err := ParseSeat(seat.String())
	if err != nil {
		t.Fatalf("ParseSeat(%q) error: %v", seat.String(), err)
	}
	if got != seat {
		t.Errorf("round trip = %v, want %v", got, seat)
	}
}

func TestLayoutRequestShape(t *testing.T) {
	b, err := json.Marshal(NewLayoutRequest(6, 10))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"action":"get_layout","rows":6,"cols":10}`
	if string(b) != want {
		t.Errorf("layout request = %s, want %s", b, want)
	}
}

// The client field is nullable, not omittable: an anonymous reservation must
// send "client":null exactly as the authority expects.
func TestReserveRequestClientNullable(t *testing.T) {
	seats := []Seat{{Row: 1, Col: 1}, {Row: 1, Col: 2}}

	anon, err := json.Marshal(NewReserveRequest(seats, ""))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(anon), `"client":null`) {
		t.Errorf("anonymous reserve request = %s, want a null client field", anon)
	}
	if !strings.Contains(string(anon), `"action":"reserve"`) {
		t.Errorf("reserve request = %s, missing action tag", anon)
	}

	named, err := json.Marshal(NewReserveRequest(seats, "Ada"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(named), `"client":"Ada"`) {
		t.Errorf("named reserve request = %s, want client Ada", named)
	}
}

func TestNonReserveRequestsCarryNoClient(t *testing.T) {
	for name, req := range map[string]any{
		"get_layout":          NewLayoutRequest(6, 10),
		"delete_reservations": NewReleaseRequest([]Seat{{Row: 1, Col: 1}}),
		"list_reservations":   NewListRequest(),
	} {
		b, err := json.Marshal(req)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(b), "client") {
			t.Errorf("%s request = %s, must not carry a client field", name, b)
		}
	}
}

func TestResponseStatusTag(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{name: "ok", raw: `{"status":"ok"}`, ok: true},
		{name: "error", raw: `{"status":"error","message":"no"}`, ok: false},
		{name: "other tag", raw: `{"status":"denied","message":"no"}`, ok: false},
		{name: "missing status", raw: `{"message":"no"}`, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp Response
			if err := json.Unmarshal([]byte(tt.raw), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.OK() != tt.ok {
				t.Errorf("OK() = %v, want %v", resp.OK(), tt.ok)
			}
		})
	}
}

func TestSortAndJoinSeats(t *testing.T) {
	seats := []Seat{{Row: 2, Col: 1}, {Row: 1, Col: 9}, {Row: 1, Col: 2}}
	SortSeats(seats)
	got := JoinSeats(seats)
	want := "1-2, 1-9, 2-1"
	if got != want {
		t.Errorf("JoinSeats after sort = %q, want %q", got, want)
	}
}

func TestReservationNullClientDecodes(t *testing.T) {
	raw := `{"seat":{"row":2,"col":3},"ticketId":"T9","client":null}`
	var res Reservation
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatal(err)
	}
	if res.Client != "" {
		t.Errorf("null client decoded to %q, want empty", res.Client)
	}
	if res.TicketID != "T9" || res.Seat != (Seat{Row: 2, Col: 3}) {
		t.Errorf("reservation decoded to %+v", res)
	}
}
