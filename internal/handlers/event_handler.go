package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

// EventHandler handles event-related requests.
type EventHandler struct {
	eventService services.EventServicer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService services.EventServicer) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventRequest represents the request payload for creating or updating an event
type EventRequest struct {
	Name         string `json:"name" binding:"required"`
	StartTime    string `json:"starttime" binding:"required"`
	EndTime      string `json:"endtime"`
	Description  string `json:"description"`
	Participants []uint `json:"participating"`
}

// EventResponse represents an event in the response
type EventResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	StartTime    string  `json:"starttime"`
	EndTime      *string `json:"endtime"`
	Description  string  `json:"description"`
	Participants []uint  `json:"participating"`
	CreatedBy    uint    `json:"created_by"`
	From         *string `json:"from,omitempty"`
}

// EventGroupResponse is one calendar day of a user's event feed
type EventGroupResponse struct {
	Date   string          `json:"date"`
	Events []EventResponse `json:"events"`
}

func newEventResponse(event *models.Event, creatorName *string) EventResponse {
	participants := event.Participants
	if participants == nil {
		participants = []uint{}
	}
	return EventResponse{
		ID:           event.ID,
		Name:         event.Name,
		StartTime:    formatDateTime(event.StartTime),
		EndTime:      formatDateTimePtr(event.EndTime),
		Description:  event.Description,
		Participants: participants,
		CreatedBy:    event.CreatedBy,
		From:         creatorName,
	}
}

func (h *EventHandler) bindEventRequest(c *gin.Context) (*EventRequest, time.Time, *time.Time, bool) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return nil, time.Time{}, nil, false
	}

	start, err := parseDateTime(req.StartTime)
	if err != nil {
		respondWithError(c, err)
		return nil, time.Time{}, nil, false
	}

	var end *time.Time
	if req.EndTime != "" {
		parsed, err := parseDateTime(req.EndTime)
		if err != nil {
			respondWithError(c, err)
			return nil, time.Time{}, nil, false
		}
		end = &parsed
	}
	return &req, start, end, true
}

// CreateEvent handles the creation of a new event for a user
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, start, end, ok := h.bindEventRequest(c)
	if !ok {
		return
	}

	event, err := h.eventService.CreateEvent(userID, req.Name, start, end, req.Description, req.Participants)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newEventResponse(event, nil))
}

// GetUserEvents returns a user's events grouped by calendar date
func (h *EventHandler) GetUserEvents(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	groups, err := h.eventService.GetUserEvents(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := make([]EventGroupResponse, 0, len(groups))
	for _, group := range groups {
		events := make([]EventResponse, 0, len(group.Events))
		for i := range group.Events {
			events = append(events, newEventResponse(&group.Events[i].Event, &group.Events[i].CreatorName))
		}
		response = append(response, EventGroupResponse{Date: formatDate(group.Date), Events: events})
	}
	c.JSON(http.StatusOK, response)
}

// GetLastEvent returns the user's event with the earliest start time, or
// null when the user has none
func (h *EventHandler) GetLastEvent(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	event, err := h.eventService.GetEarliestUserEvent(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if event == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, newEventResponse(&event.Event, &event.CreatorName))
}

// GetEventByID returns a single event
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	event, err := h.eventService.GetEventByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEventResponse(&event.Event, &event.CreatorName))
}

// UpdateEvent replaces an event's caller-settable fields
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	req, start, end, ok := h.bindEventRequest(c)
	if !ok {
		return
	}

	event, err := h.eventService.UpdateEvent(id, req.Name, start, end, req.Description, req.Participants)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEventResponse(event, nil))
}

// DeleteEvent removes an event
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
