package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

type mockEventService struct {
	createEventFn          func(creatorID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error)
	getEventByIDFn         func(id uint) (*services.EventWithCreator, error)
	getUserEventsFn        func(userID uint) ([]services.EventGroup, error)
	getEarliestUserEventFn func(userID uint) (*services.EventWithCreator, error)
	updateEventFn          func(eventID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error)
	deleteEventFn          func(eventID uint) error
}

var _ services.EventServicer = (*mockEventService)(nil)

func (m *mockEventService) CreateEvent(creatorID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error) {
	if m.createEventFn != nil {
		return m.createEventFn(creatorID, name, start, end, description, participants)
	}
	return &models.Event{}, nil
}

func (m *mockEventService) GetEventByID(id uint) (*services.EventWithCreator, error) {
	if m.getEventByIDFn != nil {
		return m.getEventByIDFn(id)
	}
	return &services.EventWithCreator{}, nil
}

func (m *mockEventService) GetUserEvents(userID uint) ([]services.EventGroup, error) {
	if m.getUserEventsFn != nil {
		return m.getUserEventsFn(userID)
	}
	return nil, nil
}

func (m *mockEventService) GetEarliestUserEvent(userID uint) (*services.EventWithCreator, error) {
	if m.getEarliestUserEventFn != nil {
		return m.getEarliestUserEventFn(userID)
	}
	return nil, nil
}

func (m *mockEventService) UpdateEvent(eventID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error) {
	if m.updateEventFn != nil {
		return m.updateEventFn(eventID, name, start, end, description, participants)
	}
	return &models.Event{}, nil
}

func (m *mockEventService) DeleteEvent(eventID uint) error {
	if m.deleteEventFn != nil {
		return m.deleteEventFn(eventID)
	}
	return nil
}

func setupEventRouter(handler *EventHandler) *gin.Engine {
	r := gin.New()
	r.POST("/users/:id/events", handler.CreateEvent)
	r.GET("/users/:id/events", handler.GetUserEvents)
	r.GET("/users/:id/events/last", handler.GetLastEvent)
	r.GET("/events/:id", handler.GetEventByID)
	r.PUT("/events/:id", handler.UpdateEvent)
	r.DELETE("/events/:id", handler.DeleteEvent)
	return r
}

func TestCreateEventHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var gotStart time.Time
		var gotEnd *time.Time
		mock := &mockEventService{
			createEventFn: func(creatorID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error) {
				gotStart, gotEnd = start, end
				return &models.Event{ID: 1, Name: name, StartTime: start, EndTime: end, CreatedBy: creatorID}, nil
			},
		}
		r := setupEventRouter(NewEventHandler(mock))

		rec := doRequest(r, http.MethodPost, "/users/1/events",
			`{"name":"Visit grandma","starttime":"03.11.2024 20:00","endtime":"03.11.2024 22:00"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		wantStart := time.Date(2024, time.November, 3, 20, 0, 0, 0, time.UTC)
		if !gotStart.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, gotStart)
		}
		if gotEnd == nil || !gotEnd.Equal(wantStart.Add(2*time.Hour)) {
			t.Errorf("expected end two hours after start, got %v", gotEnd)
		}

		result := parseJSON(t, rec)
		if result["endtime"] != "03.11.2024 22:00" {
			t.Errorf("expected formatted end time, got %v", result["endtime"])
		}
	})

	t.Run("open_ended", func(t *testing.T) {
		mock := &mockEventService{
			createEventFn: func(creatorID uint, name string, start time.Time, end *time.Time, description string, participants []uint) (*models.Event, error) {
				return &models.Event{ID: 1, Name: name, StartTime: start, EndTime: end}, nil
			},
		}
		r := setupEventRouter(NewEventHandler(mock))

		rec := doRequest(r, http.MethodPost, "/users/1/events",
			`{"name":"Party","starttime":"03.11.2024 20:00"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}

		result := parseJSON(t, rec)
		if result["endtime"] != nil {
			t.Errorf("expected null end time, got %v", result["endtime"])
		}
	})

	t.Run("bad_start_format", func(t *testing.T) {
		r := setupEventRouter(NewEventHandler(&mockEventService{}))

		rec := doRequest(r, http.MethodPost, "/users/1/events",
			`{"name":"Party","starttime":"03.11.2024"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestGetUserEventsHandler(t *testing.T) {
	name := "Anna"
	mock := &mockEventService{
		getUserEventsFn: func(userID uint) ([]services.EventGroup, error) {
			day := time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC)
			return []services.EventGroup{
				{
					Date: day,
					Events: []services.EventWithCreator{
						{Event: models.Event{ID: 1, Name: "Visit", StartTime: day.Add(20 * time.Hour)}, CreatorName: name},
					},
				},
			}, nil
		},
	}
	r := setupEventRouter(NewEventHandler(mock))

	rec := doRequest(r, http.MethodGet, "/users/1/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	groups := parseJSONArray(t, rec)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	group := groups[0].(map[string]interface{})
	if group["date"] != "03.11.2024" {
		t.Errorf("expected date 03.11.2024, got %v", group["date"])
	}
	events := group["events"].([]interface{})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	event := events[0].(map[string]interface{})
	if event["from"] != "Anna" {
		t.Errorf("expected creator name Anna, got %v", event["from"])
	}
}

func TestGetLastEventHandler(t *testing.T) {
	t.Run("none_is_null", func(t *testing.T) {
		r := setupEventRouter(NewEventHandler(&mockEventService{}))

		rec := doRequest(r, http.MethodGet, "/users/1/events/last", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := rec.Body.String(); body != "null" {
			t.Errorf("expected null body, got %s", body)
		}
	})

	t.Run("returns_event", func(t *testing.T) {
		name := "Anna"
		mock := &mockEventService{
			getEarliestUserEventFn: func(userID uint) (*services.EventWithCreator, error) {
				return &services.EventWithCreator{
					Event:       models.Event{ID: 2, Name: "Earliest", StartTime: time.Date(2024, time.October, 16, 18, 0, 0, 0, time.UTC)},
					CreatorName: name,
				}, nil
			},
		}
		r := setupEventRouter(NewEventHandler(mock))

		rec := doRequest(r, http.MethodGet, "/users/1/events/last", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["starttime"] != "16.10.2024 18:00" {
			t.Errorf("expected start 16.10.2024 18:00, got %v", result["starttime"])
		}
	})
}

func TestDeleteEventHandler(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		mock := &mockEventService{
			deleteEventFn: func(eventID uint) error { return apperrors.ErrEventNotFound },
		}
		r := setupEventRouter(NewEventHandler(mock))

		rec := doRequest(r, http.MethodDelete, "/events/99", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EVENT_NOT_FOUND")
	})
}
