package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleMeetProvider creates Google Calendar events with attached Meet
// conference rooms.
type GoogleMeetProvider struct {
	svc        *calendar.Service
	calendarID string
}

// NewGoogleMeetProvider builds a provider from a service-account
// credentials file.
func NewGoogleMeetProvider(ctx context.Context, credentialsFile, calendarID string) (*GoogleMeetProvider, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize calendar client: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleMeetProvider{svc: svc, calendarID: calendarID}, nil
}

// CreateMeeting inserts a calendar event with a Meet conference and both
// participants as attendees.
func (p *GoogleMeetProvider) CreateMeeting(ctx context.Context, req MeetingRequest) (*MeetingInfo, error) {
	start, err := time.ParseInLocation("2006-01-02T15:04", req.Date+"T"+req.Time, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid meeting start %s %s: %w", req.Date, req.Time, err)
	}
	end := start.Add(time.Duration(req.Duration) * time.Minute)

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Mock Interview: %s", req.Field),
		Description: fmt.Sprintf("%s interview session between %s (mentor) and %s (candidate).", req.Field, req.MentorName, req.CandidateName),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
		},
		Attendees: []*calendar.EventAttendee{
			{Email: req.MentorEmail},
			{Email: req.CandidateEmail},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.New().String(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := p.svc.Events.Insert(p.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event for session %s: %w", req.SessionID, err)
	}

	link := created.HangoutLink
	if link == "" && created.ConferenceData != nil {
		for _, entry := range created.ConferenceData.EntryPoints {
			if entry.EntryPointType == "video" {
				link = entry.Uri
				break
			}
		}
	}
	if link == "" {
		return nil, fmt.Errorf("calendar event %s has no meeting link", created.Id)
	}

	return &MeetingInfo{MeetingLink: link, EventID: created.Id}, nil
}

// Disabled is the provider used when no calendar credentials are
// configured; every call fails and callers proceed without a link.
type Disabled struct{}

func (Disabled) CreateMeeting(ctx context.Context, req MeetingRequest) (*MeetingInfo, error) {
	return nil, fmt.Errorf("meeting provider is not configured")
}
