package domain

import (
	"testing"
	"time"
)

func TestParseQualificationKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want QualificationKind
	}{
		{"TYPE_RATING", QualificationKindTypeRating},
		{"type rating", QualificationKindTypeRating},
		{" license ", QualificationKindLicense},
		{"Training", QualificationKindTraining},
		{"competency", QualificationKindCompetency},
		{"Visa", QualificationKind("Visa")},
	}
	for _, tc := range cases {
		if got := ParseQualificationKind(tc.in); got != tc.want {
			t.Fatalf("ParseQualificationKind(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQualification_Normalized_TruncatesExpiry(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	in := Qualification{ID: "q", Kind: "license", ExpiryDate: &expiry}
	got := in.Normalized()

	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if got.Kind != QualificationKindLicense || got.ExpiryDate == nil || !got.ExpiryDate.Equal(want) {
		t.Fatalf("Normalized()=%+v expiry=%v", got, got.ExpiryDate)
	}
	if !in.ExpiryDate.Equal(expiry) {
		t.Fatalf("Normalized() modified the caller's expiry: %v", *in.ExpiryDate)
	}
	if (Qualification{}).Normalized().ExpiryDate != nil {
		t.Fatalf("nil expiry should stay nil")
	}
}

func TestDateOnly_UsesUTCDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-5", -5*60*60)
	got := DateOnly(time.Date(2024, 6, 15, 22, 0, 0, 0, loc)) // 03:00 UTC on the 16th
	if want := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("DateOnly()=%v, want %v", got, want)
	}
}
