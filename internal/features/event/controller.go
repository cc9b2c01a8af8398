package event

import (
	"time"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"
	"go-ngo/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type EventController struct {
	EventService EventService
}

func NewEventController(eventService EventService) *EventController {
	return &EventController{EventService: eventService}
}

type CreateEventRequest struct {
	OrganizerName    string `json:"organizerName" validate:"required,min=1"`
	OrganizationLogo string `json:"organizationLogo" validate:"omitempty,url"`
	WebsiteLink      string `json:"websiteLink" validate:"omitempty,url"`

	EventTitle       string   `json:"eventTitle" validate:"required,min=1"`
	EventDescription string   `json:"eventDescription"`
	EventType        string   `json:"eventType"`
	ThemeFocusArea   string   `json:"themeFocusArea"`
	Objective        string   `json:"objective"`
	TargetAudience   []string `json:"targetAudience"`

	ExpectedParticipants int        `json:"expectedParticipants" validate:"omitempty,gte=0"`
	StartDateTime        time.Time  `json:"startDateTime" validate:"required"`
	EndDateTime          *time.Time `json:"endDateTime"`

	Location *Location `json:"location"`

	TotalPasses            int   `json:"totalPasses" validate:"omitempty,gte=0"`
	IsFreeEvent            *bool `json:"isFreeEvent"`
	AutoAttendanceRequired bool  `json:"autoAttendanceRequired"`

	VolunteerRolesNeeded string `json:"volunteerRolesNeeded"`
	NeedVolunteers       bool   `json:"needVolunteers"`

	SponsorRequirements string   `json:"sponsorRequirements"`
	SponsorLogos        []string `json:"sponsorLogos"`
	SponsorLogoOrder    []string `json:"sponsorLogoOrder"`

	CertificateSettings *CertificateSettings `json:"certificateSettings"`

	EventPoster    string   `json:"eventPoster"`
	EventDocuments []string `json:"eventDocuments"`
}

func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperr.Unauthenticated("Not authenticated")
	}

	event := &Event{
		OrganizerName:          req.OrganizerName,
		OrganizationLogo:       req.OrganizationLogo,
		WebsiteLink:            req.WebsiteLink,
		EventTitle:             req.EventTitle,
		EventDescription:       req.EventDescription,
		EventType:              req.EventType,
		ThemeFocusArea:         req.ThemeFocusArea,
		Objective:              req.Objective,
		TargetAudience:         req.TargetAudience,
		ExpectedParticipants:   req.ExpectedParticipants,
		StartDateTime:          req.StartDateTime,
		EndDateTime:            req.EndDateTime,
		Location:               req.Location,
		TotalPasses:            req.TotalPasses,
		IsFreeEvent:            true,
		AutoAttendanceRequired: req.AutoAttendanceRequired,
		VolunteerRolesNeeded:   req.VolunteerRolesNeeded,
		NeedVolunteers:         req.NeedVolunteers,
		SponsorRequirements:    req.SponsorRequirements,
		SponsorLogos:           req.SponsorLogos,
		SponsorLogoOrder:       req.SponsorLogoOrder,
		CertificateSettings:    req.CertificateSettings,
		EventPoster:            req.EventPoster,
		EventDocuments:         req.EventDocuments,
		CreatedBy:              principal.ID,
	}
	if req.IsFreeEvent != nil {
		event.IsFreeEvent = *req.IsFreeEvent
	}
	if err := ctrl.EventService.Create(c.Context(), event); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "event": event})
}

func (ctrl *EventController) ListApprovedEvents(c *fiber.Ctx) error {
	events, err := ctrl.EventService.ListApproved(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "events": events})
}

func (ctrl *EventController) ListAllEvents(c *fiber.Ctx) error {
	events, err := ctrl.EventService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "events": events})
}

func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	event, err := ctrl.EventService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "event": event})
}

func (ctrl *EventController) GetEventBySlug(c *fiber.Ctx) error {
	event, err := ctrl.EventService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "event": event})
}

func (ctrl *EventController) ApproveEvent(c *fiber.Ctx) error {
	event, err := ctrl.EventService.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Event approved", "event": event})
}

type UpdateEventRequest struct {
	OrganizerName    string `json:"organizerName" validate:"omitempty,min=1"`
	OrganizationLogo string `json:"organizationLogo" validate:"omitempty,url"`
	WebsiteLink      string `json:"websiteLink" validate:"omitempty,url"`

	EventTitle       string   `json:"eventTitle" validate:"omitempty,min=1"`
	EventDescription string   `json:"eventDescription"`
	EventType        string   `json:"eventType"`
	ThemeFocusArea   string   `json:"themeFocusArea"`
	Objective        string   `json:"objective"`
	TargetAudience   []string `json:"targetAudience"`

	ExpectedParticipants *int       `json:"expectedParticipants" validate:"omitempty,gte=0"`
	StartDateTime        *time.Time `json:"startDateTime"`
	EndDateTime          *time.Time `json:"endDateTime"`

	Location *Location `json:"location"`

	TotalPasses            *int  `json:"totalPasses" validate:"omitempty,gte=0"`
	IsFreeEvent            *bool `json:"isFreeEvent"`
	AutoAttendanceRequired *bool `json:"autoAttendanceRequired"`

	VolunteerRolesNeeded string `json:"volunteerRolesNeeded"`
	NeedVolunteers       *bool  `json:"needVolunteers"`

	SponsorRequirements string   `json:"sponsorRequirements"`
	SponsorLogos        []string `json:"sponsorLogos"`
	SponsorLogoOrder    []string `json:"sponsorLogoOrder"`

	CertificateSettings *CertificateSettings `json:"certificateSettings"`

	EventPoster    string   `json:"eventPoster"`
	EventDocuments []string `json:"eventDocuments"`
}

func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	set := bson.M{}
	strings := map[string]string{
		"organizer_name":         req.OrganizerName,
		"organization_logo":      req.OrganizationLogo,
		"website_link":           req.WebsiteLink,
		"event_title":            req.EventTitle,
		"event_description":      req.EventDescription,
		"event_type":             req.EventType,
		"theme_focus_area":       req.ThemeFocusArea,
		"objective":              req.Objective,
		"volunteer_roles_needed": req.VolunteerRolesNeeded,
		"sponsor_requirements":   req.SponsorRequirements,
		"event_poster":           req.EventPoster,
	}
	for field, value := range strings {
		if value != "" {
			set[field] = value
		}
	}
	if req.TargetAudience != nil {
		set["target_audience"] = req.TargetAudience
	}
	if req.ExpectedParticipants != nil {
		set["expected_participants"] = *req.ExpectedParticipants
	}
	if req.StartDateTime != nil {
		set["start_date_time"] = *req.StartDateTime
	}
	if req.EndDateTime != nil {
		set["end_date_time"] = *req.EndDateTime
	}
	if req.Location != nil {
		set["location"] = req.Location
	}
	if req.TotalPasses != nil {
		set["total_passes"] = *req.TotalPasses
	}
	if req.IsFreeEvent != nil {
		set["is_free_event"] = *req.IsFreeEvent
	}
	if req.AutoAttendanceRequired != nil {
		set["auto_attendance_required"] = *req.AutoAttendanceRequired
	}
	if req.NeedVolunteers != nil {
		set["need_volunteers"] = *req.NeedVolunteers
	}
	if req.SponsorLogos != nil {
		set["sponsor_logos"] = req.SponsorLogos
	}
	if req.SponsorLogoOrder != nil {
		set["sponsor_logo_order"] = req.SponsorLogoOrder
	}
	if req.CertificateSettings != nil {
		set["certificate_settings"] = req.CertificateSettings
	}
	if req.EventDocuments != nil {
		set["event_documents"] = req.EventDocuments
	}
	if len(set) == 0 {
		return apperr.BadRequest("Nothing to update")
	}

	event, err := ctrl.EventService.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "event": event})
}

func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	if err := ctrl.EventService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Event deleted"})
}
