package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	"github.com/Caarnus/newburgh-lodge/internal/constants"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
)

func strPtr(s string) *string { return &s }

func TestNormalizeDates_AllDaySnapsInLocalOffset(t *testing.T) {
	// An afternoon timestamp at -04:00 belongs to June 1 locally. The
	// all-day snap happens at that offset, then converts to UTC.
	start, end, err := NormalizeDates(true,
		strPtr("2025-06-01T15:30:00-04:00"),
		strPtr("2025-06-01T15:30:00-04:00"),
		"")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	wantStart := time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("Expected start %v, got %v", wantStart, start)
	}

	wantEnd := time.Date(2025, 6, 2, 3, 59, 59, 0, time.UTC)
	if !end.Equal(wantEnd) {
		t.Errorf("Expected end %v, got %v", wantEnd, end)
	}
}

func TestNormalizeDates_AllDayUsesEventTimezone(t *testing.T) {
	// A late-evening UTC instant is still May 31 in New York; the local
	// calendar day wins.
	start, _, err := NormalizeDates(true,
		strPtr("2025-06-01T01:30:00Z"),
		nil,
		"America/New_York")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// May 31 00:00 EDT = May 31 04:00 UTC
	wantStart := time.Date(2025, 5, 31, 4, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("Expected start %v, got %v", wantStart, start)
	}
}

func TestNormalizeDates_TimedEventKeptAsInstant(t *testing.T) {
	start, _, err := NormalizeDates(false,
		strPtr("2025-06-01T19:00:00-04:00"),
		nil,
		"")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("Expected %v, got %v", want, start)
	}
}

func TestNormalizeDates_DateOnlyReadInEventTimezone(t *testing.T) {
	start, _, err := NormalizeDates(true, strPtr("2025-06-01"), nil, "America/New_York")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// June 1 00:00 EDT = 04:00 UTC
	want := time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("Expected %v, got %v", want, start)
	}
}

func TestNormalizeDates_Failures(t *testing.T) {
	if _, _, err := NormalizeDates(false, strPtr("not-a-date"), nil, ""); err == nil {
		t.Error("Expected an error for a malformed timestamp")
	}

	if _, _, err := NormalizeDates(false, nil, nil, "Atlantis/Lost"); err == nil {
		t.Error("Expected an error for an unknown timezone")
	}

	_, _, err := NormalizeDates(false,
		strPtr("2025-06-02T10:00:00Z"),
		strPtr("2025-06-01T10:00:00Z"),
		"")
	var verrs apperr.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation error for end before start, got %v", err)
	}
	if _, ok := verrs["end"]; !ok {
		t.Errorf("Expected the end field flagged, got %v", verrs)
	}
}

func officerRC() reqctx.RequestContext {
	return reqctx.RequestContext{
		ActorID: 1,
		Capabilities: auth.Capabilities{
			IsOfficer: true,
			IsMember:  true,
			Degree:    constants.DegreeMasterMason,
		},
	}
}

func TestEventService_CreateAndRRuleLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(repositories.NewOrgEventRepository(db))
	rc := officerRC()

	created, err := svc.Create(context.Background(), rc, requests.EventUpsertRequest{
		Title:   "Stated Communication",
		Start:   strPtr("2025-06-03T19:30:00-04:00"),
		Repeats: true,
		RRule:   strPtr("FREQ=MONTHLY;BYDAY=1TU"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.RRule == nil || *created.RRule != "FREQ=MONTHLY;BYDAY=1TU" {
		t.Error("Expected the recurrence rule stored while repeats is on")
	}

	// Turning repeats off must clear the rule even if the client resends it
	updated, err := svc.Update(context.Background(), rc, created.ID, requests.EventUpsertRequest{
		Title:   "Stated Communication",
		Start:   strPtr("2025-06-03T19:30:00-04:00"),
		Repeats: false,
		RRule:   strPtr("FREQ=MONTHLY;BYDAY=1TU"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.RRule != nil {
		t.Error("Recurrence rule must never survive with repeats off")
	}
}

func TestEventService_CreateRejectsNonOfficers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(repositories.NewOrgEventRepository(db))

	memberRC := reqctx.RequestContext{ActorID: 2, Capabilities: auth.Capabilities{IsMember: true}}
	_, err := svc.Create(context.Background(), memberRC, requests.EventUpsertRequest{
		Title: "Unsanctioned Meeting",
	})
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}
}

func TestEventService_ListFiltersByVisibility(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(repositories.NewOrgEventRepository(db))

	seed := []gormModels.OrgEvent{
		{Title: "Open House", IsPublic: true, OpenTo: "all", DegreeRequired: "none"},
		{Title: "Members Dinner", IsPublic: false, OpenTo: "members", DegreeRequired: "none"},
		{Title: "Third Degree", IsPublic: false, OpenTo: "members", DegreeRequired: "master mason"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("Failed to seed event: %v", err)
		}
	}

	titles := func(rc reqctx.RequestContext) []string {
		events, err := svc.List(context.Background(), rc)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		out := make([]string, 0, len(events))
		for _, e := range events {
			out = append(out, e.Title)
		}
		return out
	}

	if got := titles(reqctx.RequestContext{}); len(got) != 1 || got[0] != "Open House" {
		t.Errorf("Anonymous should only see the public event, got %v", got)
	}

	memberRC := reqctx.RequestContext{ActorID: 2, Capabilities: auth.Capabilities{IsMember: true}}
	if got := titles(memberRC); len(got) != 2 {
		t.Errorf("Member should see public plus members events, got %v", got)
	}

	masonRC := reqctx.RequestContext{ActorID: 3, Capabilities: auth.Capabilities{
		IsMember: true, Degree: constants.DegreeMasterMason,
	}}
	if got := titles(masonRC); len(got) != 3 {
		t.Errorf("Master mason should see everything, got %v", got)
	}
}

func TestEventService_RejectsBadOpenToAndMissingType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(repositories.NewOrgEventRepository(db))
	rc := officerRC()

	typeID := uint(99)
	_, err := svc.Create(context.Background(), rc, requests.EventUpsertRequest{
		Title:  "Broken Event",
		OpenTo: "everyone",
		TypeID: &typeID,
	})

	var verrs apperr.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation errors, got %v", err)
	}
	if _, ok := verrs["open_to"]; !ok {
		t.Errorf("Expected open_to flagged, got %v", verrs)
	}
	if _, ok := verrs["type_id"]; !ok {
		t.Errorf("Expected type_id flagged, got %v", verrs)
	}
}
