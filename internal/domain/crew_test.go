package domain

import "testing"

func TestParsePosition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Position
	}{
		{"CAPTAIN", PositionCaptain},
		{"Captain", PositionCaptain},
		{"First Officer", PositionFirstOfficer},
		{"first_officer", PositionFirstOfficer},
		{" Flight Attendant ", PositionFlightAttendant},
		{"Senior-Flight-Attendant", PositionSeniorFlightAttendant},
		{"Dispatcher", Position("Dispatcher")},
		{"", Position("")},
	}
	for _, tc := range cases {
		if got := ParsePosition(tc.in); got != tc.want {
			t.Fatalf("ParsePosition(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCrewMember_IsActive(t *testing.T) {
	t.Parallel()

	if !(CrewMember{Status: "active"}).IsActive() {
		t.Fatalf("expected active")
	}
	if !(CrewMember{Status: "ACTIVE"}).IsActive() {
		t.Fatalf("expected case-insensitive match")
	}
	for _, s := range []AccountStatus{AccountStatusInactive, AccountStatusSuspended, ""} {
		if (CrewMember{Status: s}).IsActive() {
			t.Fatalf("status %q reported active", s)
		}
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	empty, spaces, v := "", "  ", "x"
	if !IsBlank(nil) || !IsBlank(&empty) || !IsBlank(&spaces) {
		t.Fatalf("expected blank")
	}
	if IsBlank(&v) {
		t.Fatalf("expected non-blank")
	}
}

func TestCrewMember_Normalized(t *testing.T) {
	t.Parallel()

	in := CrewMember{ID: "c1", Name: "A", Position: "Captain", Status: " Active ", Role: "Internal"}
	got := in.Normalized()
	if got.Position != PositionCaptain || got.Status != AccountStatusActive || got.Role != RoleInternal {
		t.Fatalf("Normalized()=%+v", got)
	}
	if in.Position != "Captain" {
		t.Fatalf("Normalized() modified its receiver: %+v", in)
	}
	if other := (CrewMember{Position: "Dispatcher"}).Normalized(); other.Position != "Dispatcher" {
		t.Fatalf("unknown position=%q, want kept verbatim", other.Position)
	}
}
