package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Timestamp returns the current UTC time as an ISO-8601 string. All
// created_at fields are stored as strings so documents round-trip through
// the store without driver-specific date handling.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func newID() string {
	return uuid.New().String()
}

// OpportunityCreate is the client payload for creating or replacing an
// opportunity. CompliancePercentage is a pointer so a missing field can be
// told apart from an explicit 0.
type OpportunityCreate struct {
	Client               string   `json:"client"`
	ProjectType          string   `json:"project_type"`
	RFPReleaseDate       string   `json:"rfp_release_date"`
	SubmissionDeadline   string   `json:"submission_deadline"`
	ProposalOwner        string   `json:"proposal_owner"`
	Status               string   `json:"status"`
	CompliancePercentage *int     `json:"compliance_percentage"`
	PriorityLevel        string   `json:"priority_level"`
	PortalLink           string   `json:"portal_link"`
	RiskFlags            []string `json:"risk_flags"`
	SubmissionFormat     string   `json:"submission_format"`
	Budget               string   `json:"budget"`
	Industry             string   `json:"industry"`
}

func (c OpportunityCreate) Validate() error {
	if err := requireFields([]field{
		{"client", c.Client},
		{"project_type", c.ProjectType},
		{"rfp_release_date", c.RFPReleaseDate},
		{"submission_deadline", c.SubmissionDeadline},
		{"proposal_owner", c.ProposalOwner},
		{"status", c.Status},
		{"priority_level", c.PriorityLevel},
		{"submission_format", c.SubmissionFormat},
	}); err != nil {
		return err
	}
	if c.CompliancePercentage == nil {
		return fmt.Errorf("compliance_percentage is required")
	}
	return nil
}

// Opportunity is the stored shape of a tracked RFP. Extra fields present in
// old documents are dropped on decode; absent fields decode to their zero
// values.
type Opportunity struct {
	ID                   string   `json:"id" bson:"id"`
	Client               string   `json:"client" bson:"client"`
	ProjectType          string   `json:"project_type" bson:"project_type"`
	RFPReleaseDate       string   `json:"rfp_release_date" bson:"rfp_release_date"`
	SubmissionDeadline   string   `json:"submission_deadline" bson:"submission_deadline"`
	ProposalOwner        string   `json:"proposal_owner" bson:"proposal_owner"`
	Status               string   `json:"status" bson:"status"`
	CompliancePercentage int      `json:"compliance_percentage" bson:"compliance_percentage"`
	PriorityLevel        string   `json:"priority_level" bson:"priority_level"`
	PortalLink           string   `json:"portal_link" bson:"portal_link"`
	RiskFlags            []string `json:"risk_flags" bson:"risk_flags"`
	SubmissionFormat     string   `json:"submission_format" bson:"submission_format"`
	Budget               string   `json:"budget" bson:"budget"`
	Industry             string   `json:"industry" bson:"industry"`
	CreatedAt            string   `json:"created_at" bson:"created_at"`
}

// NewOpportunity builds a stored opportunity from a validated create
// payload, assigning a fresh id and creation timestamp.
func NewOpportunity(in OpportunityCreate) Opportunity {
	o := Opportunity{
		ID:                 newID(),
		Client:             in.Client,
		ProjectType:        in.ProjectType,
		RFPReleaseDate:     in.RFPReleaseDate,
		SubmissionDeadline: in.SubmissionDeadline,
		ProposalOwner:      in.ProposalOwner,
		Status:             in.Status,
		PriorityLevel:      in.PriorityLevel,
		PortalLink:         in.PortalLink,
		RiskFlags:          in.RiskFlags,
		SubmissionFormat:   in.SubmissionFormat,
		Budget:             in.Budget,
		Industry:           in.Industry,
		CreatedAt:          Timestamp(),
	}
	if in.CompliancePercentage != nil {
		o.CompliancePercentage = *in.CompliancePercentage
	}
	if o.RiskFlags == nil {
		o.RiskFlags = []string{}
	}
	return o
}

// ComplianceItemCreate is the client payload for a compliance checklist item.
type ComplianceItemCreate struct {
	OpportunityID string `json:"opportunity_id"`
	Requirement   string `json:"requirement"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	AssignedTo    string `json:"assigned_to"`
}

func (c ComplianceItemCreate) Validate() error {
	return requireFields([]field{
		{"opportunity_id", c.OpportunityID},
		{"requirement", c.Requirement},
		{"status", c.Status},
		{"assigned_to", c.AssignedTo},
	})
}

// ComplianceItem is a checklist requirement tied to one opportunity. The
// opportunity_id reference is not enforced by the store.
type ComplianceItem struct {
	ID            string `json:"id" bson:"id"`
	OpportunityID string `json:"opportunity_id" bson:"opportunity_id"`
	Requirement   string `json:"requirement" bson:"requirement"`
	Status        string `json:"status" bson:"status"`
	Notes         string `json:"notes" bson:"notes"`
	AssignedTo    string `json:"assigned_to" bson:"assigned_to"`
	CreatedAt     string `json:"created_at" bson:"created_at"`
}

func NewComplianceItem(in ComplianceItemCreate) ComplianceItem {
	return ComplianceItem{
		ID:            newID(),
		OpportunityID: in.OpportunityID,
		Requirement:   in.Requirement,
		Status:        in.Status,
		Notes:         in.Notes,
		AssignedTo:    in.AssignedTo,
		CreatedAt:     Timestamp(),
	}
}

// DocumentCreate is the client payload for a document metadata record.
type DocumentCreate struct {
	OpportunityID string `json:"opportunity_id"`
	DocumentName  string `json:"document_name"`
	Version       string `json:"version"`
	Category      string `json:"category"`
	UploadedBy    string `json:"uploaded_by"`
}

func (c DocumentCreate) Validate() error {
	return requireFields([]field{
		{"opportunity_id", c.OpportunityID},
		{"document_name", c.DocumentName},
		{"version", c.Version},
		{"category", c.Category},
		{"uploaded_by", c.UploadedBy},
	})
}

// Document is a file/version metadata record tied to one opportunity.
// Documents are immutable: new versions are new records with a bumped
// version field, never in-place edits.
type Document struct {
	ID            string `json:"id" bson:"id"`
	OpportunityID string `json:"opportunity_id" bson:"opportunity_id"`
	DocumentName  string `json:"document_name" bson:"document_name"`
	Version       string `json:"version" bson:"version"`
	Category      string `json:"category" bson:"category"`
	UploadedBy    string `json:"uploaded_by" bson:"uploaded_by"`
	CreatedAt     string `json:"created_at" bson:"created_at"`
}

func NewDocument(in DocumentCreate) Document {
	return Document{
		ID:            newID(),
		OpportunityID: in.OpportunityID,
		DocumentName:  in.DocumentName,
		Version:       in.Version,
		Category:      in.Category,
		UploadedBy:    in.UploadedBy,
		CreatedAt:     Timestamp(),
	}
}

// ActivityCreate is the client payload for an activity log entry.
type ActivityCreate struct {
	OpportunityID string `json:"opportunity_id"`
	ActivityType  string `json:"activity_type"`
	Description   string `json:"description"`
	User          string `json:"user"`
}

func (c ActivityCreate) Validate() error {
	return requireFields([]field{
		{"opportunity_id", c.OpportunityID},
		{"activity_type", c.ActivityType},
		{"description", c.Description},
		{"user", c.User},
	})
}

// Activity is an append-only audit log entry tied to one opportunity. There
// is no update or delete path for activities.
type Activity struct {
	ID            string `json:"id" bson:"id"`
	OpportunityID string `json:"opportunity_id" bson:"opportunity_id"`
	ActivityType  string `json:"activity_type" bson:"activity_type"`
	Description   string `json:"description" bson:"description"`
	User          string `json:"user" bson:"user"`
	CreatedAt     string `json:"created_at" bson:"created_at"`
}

func NewActivity(in ActivityCreate) Activity {
	return Activity{
		ID:            newID(),
		OpportunityID: in.OpportunityID,
		ActivityType:  in.ActivityType,
		Description:   in.Description,
		User:          in.User,
		CreatedAt:     Timestamp(),
	}
}

type field struct {
	name, value string
}

func requireFields(fields []field) error {
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	return nil
}
