package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/app/repository"
)

const adminPastEventCap = 50

// AdminEventController handles admin event-related HTTP requests
type AdminEventController struct {
	eventRepo repository.EventRepository
}

// NewAdminEventController creates a new admin event controller with repository
func NewAdminEventController(eventRepo repository.EventRepository) *AdminEventController {
	return &AdminEventController{
		eventRepo: eventRepo,
	}
}

// HandleAdminEvents renders the event management page
func (aec *AdminEventController) HandleAdminEvents(c *fiber.Ctx) error {
	today := models.StartOfDay(time.Now())

	upcoming, err := aec.eventRepo.GetUpcoming(today, 0)
	if err != nil {
		return flashError(c, "Failed to load events: "+err.Error(), "/admin")
	}
	past, err := aec.eventRepo.GetPast(today, adminPastEventCap)
	if err != nil {
		return flashError(c, "Failed to load events: "+err.Error(), "/admin")
	}

	return c.Render("admin/events_index", viewData(c, "Manage Events", fiber.Map{
		"UpcomingEvents": upcoming,
		"PastEvents":     past,
	}), mainLayout)
}

// HandleAdminEventCreate renders the event creation form
func (aec *AdminEventController) HandleAdminEventCreate(c *fiber.Ctx) error {
	return c.Render("admin/events_create", viewData(c, "Create Event", nil), mainLayout)
}

// HandleAdminEventStore handles event creation. The event date must lie
// strictly in the future.
func (aec *AdminEventController) HandleAdminEventStore(c *fiber.Ctx) error {
	event, errMsg := aec.eventFromForm(c)
	if errMsg != "" {
		return flashError(c, errMsg, "/admin/events/create")
	}

	if !event.EventDate.After(time.Now()) {
		return flashError(c, "Event date must be in the future.", "/admin/events/create")
	}

	if err := aec.eventRepo.Create(event); err != nil {
		return flashError(c, "Failed to create event: "+err.Error(), "/admin/events/create")
	}

	return flashSuccess(c, "Event '"+event.Title+"' created successfully!", "/admin/events")
}

// HandleAdminEventEdit renders the event edit form
func (aec *AdminEventController) HandleAdminEventEdit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Redirect("/admin/events", fiber.StatusSeeOther)
	}

	event, err := aec.eventRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Event not found")
	}

	return c.Render("admin/events_edit", viewData(c, "Edit Event", fiber.Map{
		"Event": event,
	}), mainLayout)
}

// HandleAdminEventUpdate handles event update with a conditional write
func (aec *AdminEventController) HandleAdminEventUpdate(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return c.Redirect("/admin/events", fiber.StatusSeeOther)
	}

	event, errMsg := aec.eventFromForm(c)
	if errMsg != "" {
		return flashError(c, errMsg, "/admin/events/edit/"+idParam)
	}
	event.ID = uint(id)

	if err := aec.eventRepo.Update(event); err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Event not found")
		}
		return flashError(c, "Failed to update event: "+err.Error(), "/admin/events/edit/"+idParam)
	}

	return flashSuccess(c, "Event '"+event.Title+"' updated successfully!", "/admin/events")
}

// HandleAdminEventDelete handles event deletion
func (aec *AdminEventController) HandleAdminEventDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Redirect("/admin/events", fiber.StatusSeeOther)
	}

	if err := aec.eventRepo.Delete(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Event not found")
		}
		return flashError(c, "Failed to delete event: "+err.Error(), "/admin/events")
	}

	return flashSuccess(c, "Event deleted successfully!", "/admin/events")
}

// eventFromForm parses and validates the shared create/edit form
func (aec *AdminEventController) eventFromForm(c *fiber.Ctx) (*models.Event, string) {
	event := &models.Event{
		Title:         c.FormValue("title"),
		Description:   c.FormValue("description"),
		Location:      c.FormValue("location"),
		ContactPerson: c.FormValue("contact_person"),
		ContactNumber: c.FormValue("contact_number"),
	}

	if event.Title == "" {
		return nil, "Title is required"
	}

	dateValue := c.FormValue("event_date")
	if dateValue == "" {
		return nil, "Event date is required"
	}
	parsed, err := time.ParseInLocation("2006-01-02T15:04", dateValue, time.Local)
	if err != nil {
		// Fallback for date-only inputs
		parsed, err = time.ParseInLocation("2006-01-02", dateValue, time.Local)
		if err != nil {
			return nil, "Invalid event date"
		}
	}
	event.EventDate = parsed

	if err := event.Validate(); err != nil {
		return nil, "Invalid event: " + err.Error()
	}

	return event, ""
}

var adminEventController *AdminEventController

// InitializeAdminEventController initializes the global admin event controller
func InitializeAdminEventController() {
	adminEventController = NewAdminEventController(repository.GetGlobalFactory().GetEventRepository())
}

// GetAdminEventController returns the global admin event controller instance
func GetAdminEventController() *AdminEventController {
	if adminEventController == nil {
		InitializeAdminEventController()
	}
	return adminEventController
}
