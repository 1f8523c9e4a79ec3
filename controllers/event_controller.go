// File: /controllers/event_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"motolog-api/services"
	"motolog-api/utils"
)

type EventController struct {
	events *services.EventService
}

func NewEventController(events *services.EventService) *EventController {
	return &EventController{events: events}
}

func (ec *EventController) GetEvents(c *gin.Context) {
	list, err := ec.events.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err, "Event not found", "Failed to fetch events")
		return
	}

	utils.SendOK(c, list)
}

func (ec *EventController) GetEvent(c *gin.Context) {
	event, err := ec.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Event not found", "Failed to fetch event")
		return
	}

	utils.SendOK(c, event)
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}

	event, err := ec.events.Create(c.Request.Context(), ownerID(c), body)
	if err != nil {
		respondError(c, err, "Event not found", "Failed to create event")
		return
	}

	utils.SendCreated(c, event)
}

func (ec *EventController) UpdateEvent(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}

	event, err := ec.events.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err, "Event not found", "Failed to update event")
		return
	}

	utils.SendOK(c, event)
}

func (ec *EventController) DeleteEvent(c *gin.Context) {
	if err := ec.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Event not found", "Failed to delete event")
		return
	}

	utils.SendMessage(c, "Event deleted successfully")
}
