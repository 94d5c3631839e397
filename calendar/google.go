package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"terminly/models"
)

// GoogleGateway implements Gateway against the Google Calendar API.
type GoogleGateway struct {
	service *gcal.Service
	loc     *time.Location
}

// NewGoogleGateway builds a gateway authenticated with a service-account
// credentials file. loc is the local timezone used to resolve all-day events.
func NewGoogleGateway(ctx context.Context, credentialsFile string, loc *time.Location) (*GoogleGateway, error) {
	service, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleGateway{service: service, loc: loc}, nil
}

func (g *GoogleGateway) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]models.CalendarEvent, error) {
	call := g.service.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	events, err := call.Do()
	if err != nil {
		return nil, wrapErr("list", err)
	}

	var result []models.CalendarEvent
	for _, item := range events.Items {
		if item.Status == "cancelled" {
			continue
		}
		ev, err := g.mapEvent(item)
		if err != nil {
			return nil, &GatewayError{Op: "list", Kind: KindUnavailable, Err: err}
		}
		result = append(result, ev)
	}
	return result, nil
}

func (g *GoogleGateway) InsertEvent(ctx context.Context, calendarID string, input EventInput) (*models.CalendarEvent, error) {
	googleEvent := &gcal.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &gcal.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.Timezone,
		},
	}

	created, err := g.service.Events.Insert(calendarID, googleEvent).Context(ctx).Do()
	if err != nil {
		return nil, wrapErr("insert", err)
	}
	ev, err := g.mapEvent(created)
	if err != nil {
		return nil, &GatewayError{Op: "insert", Kind: KindUnavailable, Err: err}
	}
	return &ev, nil
}

func (g *GoogleGateway) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := g.service.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		// An already-deleted event counts as deleted.
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			return nil
		}
		return wrapErr("delete", err)
	}
	return nil
}

// mapEvent converts an API event. Date-only (all-day) bounds are resolved to
// local midnight instants, so an all-day event spans the full local day.
func (g *GoogleGateway) mapEvent(item *gcal.Event) (models.CalendarEvent, error) {
	start, allDay, err := g.resolveEventTime(item.Start)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event %s: invalid start: %w", item.Id, err)
	}
	end, _, err := g.resolveEventTime(item.End)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event %s: invalid end: %w", item.Id, err)
	}

	return models.CalendarEvent{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Start:       start,
		End:         end,
		AllDay:      allDay,
	}, nil
}

func (g *GoogleGateway) resolveEventTime(edt *gcal.EventDateTime) (time.Time, bool, error) {
	if edt == nil {
		return time.Time{}, false, fmt.Errorf("missing date/time")
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, false, err
		}
		return t.In(g.loc), false, nil
	}
	// All-day events carry a date only; Google's end date is already the
	// exclusive next day.
	t, err := time.ParseInLocation("2006-01-02", edt.Date, g.loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
