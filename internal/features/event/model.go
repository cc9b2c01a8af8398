package event

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ApprovalDraft    = "Draft"
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
)

type Signatory struct {
	Name           string `bson:"name" json:"name"`
	Designation    string `bson:"designation" json:"designation"`
	SignatureImage string `bson:"signature_image,omitempty" json:"signatureImage,omitempty"`
}

type Location struct {
	Country     string  `bson:"country,omitempty" json:"country,omitempty"`
	State       string  `bson:"state,omitempty" json:"state,omitempty"`
	District    string  `bson:"district,omitempty" json:"district,omitempty"`
	Block       string  `bson:"block,omitempty" json:"block,omitempty"`
	VenueName   string  `bson:"venue_name,omitempty" json:"venueName,omitempty"`
	FullAddress string  `bson:"full_address,omitempty" json:"fullAddress,omitempty"`
	Latitude    float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

type CertificateSettings struct {
	EnableCertificate bool        `bson:"enable_certificate" json:"enableCertificate"`
	LogoPosition      string      `bson:"logo_position,omitempty" json:"logoPosition,omitempty"`
	LogoSize          string      `bson:"logo_size,omitempty" json:"logoSize,omitempty"`
	LogoAlignment     string      `bson:"logo_alignment,omitempty" json:"logoAlignment,omitempty"`
	CompletionText    string      `bson:"completion_text,omitempty" json:"completionText,omitempty"`
	Signatories       []Signatory `bson:"signatories,omitempty" json:"signatories,omitempty"`
}

type Event struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	OrganizerName    string `bson:"organizer_name" json:"organizerName"`
	OrganizationLogo string `bson:"organization_logo,omitempty" json:"organizationLogo,omitempty"`
	WebsiteLink      string `bson:"website_link,omitempty" json:"websiteLink,omitempty"`

	EventTitle       string   `bson:"event_title" json:"eventTitle"`
	Slug             string   `bson:"slug" json:"slug"`
	EventDescription string   `bson:"event_description,omitempty" json:"eventDescription,omitempty"`
	EventType        string   `bson:"event_type,omitempty" json:"eventType,omitempty"`
	ThemeFocusArea   string   `bson:"theme_focus_area,omitempty" json:"themeFocusArea,omitempty"`
	Objective        string   `bson:"objective,omitempty" json:"objective,omitempty"`
	TargetAudience   []string `bson:"target_audience,omitempty" json:"targetAudience,omitempty"`

	ExpectedParticipants int        `bson:"expected_participants,omitempty" json:"expectedParticipants,omitempty"`
	StartDateTime        time.Time  `bson:"start_date_time" json:"startDateTime"`
	EndDateTime          *time.Time `bson:"end_date_time,omitempty" json:"endDateTime,omitempty"`

	Location *Location `bson:"location,omitempty" json:"location,omitempty"`

	TotalPasses            int  `bson:"total_passes,omitempty" json:"totalPasses,omitempty"`
	IsFreeEvent            bool `bson:"is_free_event" json:"isFreeEvent"`
	AutoAttendanceRequired bool `bson:"auto_attendance_required" json:"autoAttendanceRequired"`

	VolunteerRolesNeeded string `bson:"volunteer_roles_needed,omitempty" json:"volunteerRolesNeeded,omitempty"`
	NeedVolunteers       bool   `bson:"need_volunteers" json:"needVolunteers"`

	SponsorRequirements string   `bson:"sponsor_requirements,omitempty" json:"sponsorRequirements,omitempty"`
	SponsorLogos        []string `bson:"sponsor_logos,omitempty" json:"sponsorLogos,omitempty"`
	SponsorLogoOrder    []string `bson:"sponsor_logo_order,omitempty" json:"sponsorLogoOrder,omitempty"`

	CertificateSettings *CertificateSettings `bson:"certificate_settings,omitempty" json:"certificateSettings,omitempty"`

	EventPoster    string   `bson:"event_poster,omitempty" json:"eventPoster,omitempty"`
	EventDocuments []string `bson:"event_documents,omitempty" json:"eventDocuments,omitempty"`

	ApprovalStatus   string `bson:"approval_status" json:"approvalStatus"`
	DisplayOnWebsite bool   `bson:"display_on_website" json:"displayOnWebsite"`

	CreatedBy primitive.ObjectID `bson:"created_by,omitempty" json:"createdBy,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
