package services

import (
	"context"
	"time"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	"github.com/Caarnus/newburgh-lodge/internal/constants"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/responses"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"github.com/Caarnus/newburgh-lodge/internal/policies"
)

type EventService struct {
	repo   *repositories.OrgEventRepository
	policy policies.OrgEventPolicy
}

func NewEventService(repo *repositories.OrgEventRepository) *EventService {
	return &EventService{repo: repo}
}

// NormalizeDates parses the submitted timestamps and converts them to the
// canonical UTC instants stored on the event. For all-day events, start is
// snapped to 00:00:00 and end to 23:59:59 of their local calendar day in
// the event's timezone before the UTC conversion. When no timezone is
// given, each timestamp's own offset is the local day.
func NormalizeDates(allDay bool, start, end *string, timezone string) (*time.Time, *time.Time, error) {
	var loc *time.Location
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, nil, apperr.ValidationErrors{"timezone": "invalid timezone"}
		}
	}

	normalize := func(raw string, field string, snapToEnd bool) (*time.Time, error) {
		t, err := parseEventTime(raw, loc)
		if err != nil {
			return nil, apperr.ValidationErrors{field: "must be a valid timestamp"}
		}
		if loc != nil {
			t = t.In(loc)
		}
		if allDay {
			y, m, d := t.Date()
			if snapToEnd {
				t = time.Date(y, m, d, 23, 59, 59, 0, t.Location())
			} else {
				t = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
			}
		}
		utc := t.UTC()
		return &utc, nil
	}

	var startUTC, endUTC *time.Time
	if start != nil && *start != "" {
		var err error
		startUTC, err = normalize(*start, "start", false)
		if err != nil {
			return nil, nil, err
		}
	}
	if end != nil && *end != "" {
		var err error
		endUTC, err = normalize(*end, "end", true)
		if err != nil {
			return nil, nil, err
		}
	}

	if startUTC != nil && endUTC != nil && endUTC.Before(*startUTC) {
		return nil, nil, apperr.ValidationErrors{"end": "end must be after or equal to start"}
	}

	return startUTC, endUTC, nil
}

func parseEventTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	// Timestamps without an offset are read in the event's timezone.
	fallback := loc
	if fallback == nil {
		fallback = time.UTC
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, fallback); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, fallback)
}

/* ---------- operations ---------- */

// List returns the events the actor may see, in calendar order, with the
// can_edit flag resolved.
func (s *EventService) List(ctx context.Context, rc reqctx.RequestContext) ([]responses.EventDTO, error) {
	events, err := s.repo.ListWithType(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]responses.EventDTO, 0, len(events))
	for i := range events {
		if !s.policy.View(rc.Capabilities, &events[i]) {
			continue
		}
		dtos = append(dtos, s.toDTO(&events[i], rc))
	}
	return dtos, nil
}

func (s *EventService) Get(ctx context.Context, rc reqctx.RequestContext, id uint) (*responses.EventDTO, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.View(rc.Capabilities, event) {
		return nil, apperr.ErrForbidden
	}

	dto := s.toDTO(event, rc)
	return &dto, nil
}

func (s *EventService) Create(ctx context.Context, rc reqctx.RequestContext, req requests.EventUpsertRequest) (*responses.EventDTO, error) {
	if !s.policy.Create(rc.Capabilities) {
		return nil, apperr.ErrForbidden
	}

	event := gormModels.OrgEvent{IsPublic: true}
	if err := s.applyRequest(ctx, &event, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &event); err != nil {
		return nil, err
	}

	dto := s.toDTO(&event, rc)
	return &dto, nil
}

func (s *EventService) Update(ctx context.Context, rc reqctx.RequestContext, id uint, req requests.EventUpsertRequest) (*responses.EventDTO, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.Update(rc.Capabilities, event) {
		return nil, apperr.ErrForbidden
	}

	if err := s.applyRequest(ctx, event, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}

	dto := s.toDTO(event, rc)
	return &dto, nil
}

func (s *EventService) Delete(ctx context.Context, rc reqctx.RequestContext, id uint) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.Delete(rc.Capabilities, event) {
		return apperr.ErrForbidden
	}
	return s.repo.Delete(ctx, event)
}

func (s *EventService) ListTypes(ctx context.Context) ([]responses.EventTypeDTO, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]responses.EventTypeDTO, 0, len(types))
	for _, t := range types {
		dtos = append(dtos, responses.EventTypeDTO{
			ID: t.ID, Name: t.Name, Category: t.Category, Color: t.Color,
		})
	}
	return dtos, nil
}

/* ---------- helpers ---------- */

func (s *EventService) applyRequest(ctx context.Context, event *gormModels.OrgEvent, req requests.EventUpsertRequest) error {
	verrs := apperr.ValidationErrors{}
	if req.Title == "" {
		verrs.Add("title", "title is required")
	} else if len(req.Title) > maxFieldLength {
		verrs.Add("title", "title may not be longer than 255 characters")
	}

	openTo := req.OpenTo
	if openTo == "" {
		openTo = "all"
	}
	switch openTo {
	case "all", "members", "officers":
	default:
		verrs.Add("open_to", "must be one of all, members, officers")
	}

	degreeRequired := req.DegreeRequired
	if degreeRequired == "" {
		degreeRequired = "none"
	}
	if _, ok := constants.ParseDegree(degreeRequired); !ok {
		verrs.Add("degree_required", "unknown degree")
	}

	if req.TypeID != nil {
		exists, err := s.repo.TypeExists(ctx, *req.TypeID)
		if err != nil {
			return err
		}
		if !exists {
			verrs.Add("type_id", "event type does not exist")
		}
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	start, end, err := NormalizeDates(req.AllDay, req.Start, req.End, req.Timezone)
	if err != nil {
		return err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.Timezone = tz
	event.AllDay = req.AllDay
	event.Start = start
	event.End = end
	event.TypeID = req.TypeID
	event.MasonsOnly = req.MasonsOnly
	event.OpenTo = openTo
	event.DegreeRequired = degreeRequired
	if req.IsPublic != nil {
		event.IsPublic = *req.IsPublic
	}

	event.Repeats = req.Repeats
	if req.Repeats {
		event.RRule = req.RRule
	} else {
		// recurrence rule never survives with repeats off
		event.RRule = nil
	}

	return nil
}

func (s *EventService) toDTO(event *gormModels.OrgEvent, rc reqctx.RequestContext) responses.EventDTO {
	toIso := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		iso := t.UTC().Format(time.RFC3339)
		return &iso
	}

	dto := responses.EventDTO{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Timezone:    event.Timezone,
		AllDay:      event.AllDay,
		Start:       toIso(event.Start),
		End:         toIso(event.End),
		TypeID:      event.TypeID,

		MasonsOnly:     event.MasonsOnly,
		OpenTo:         event.OpenTo,
		DegreeRequired: event.DegreeRequired,
		IsPublic:       event.IsPublic,

		Repeats: event.Repeats,
		RRule:   event.RRule,

		CanEdit: s.policy.Update(rc.Capabilities, event),
	}

	if event.Type != nil {
		dto.Type = &responses.EventTypeDTO{
			ID:       event.Type.ID,
			Name:     event.Type.Name,
			Category: event.Type.Category,
			Color:    event.Type.Color,
		}
	}
	return dto
}
