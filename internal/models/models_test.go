package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func intPtr(v int) *int {
	return &v
}

func validOpportunityCreate() OpportunityCreate {
	return OpportunityCreate{
		Client:               "Acme Corp",
		ProjectType:          "ERP Rollout",
		RFPReleaseDate:       "2025-03-01",
		SubmissionDeadline:   "2025-04-01T17:00:00Z",
		ProposalOwner:        "Jane Doe",
		Status:               "Drafting",
		CompliancePercentage: intPtr(40),
		PriorityLevel:        "High",
		SubmissionFormat:     "Portal",
	}
}

func TestOpportunityCreateValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OpportunityCreate)
		wantErr string
	}{
		{
			name:   "Valid payload",
			mutate: func(c *OpportunityCreate) {},
		},
		{
			name:    "Missing client",
			mutate:  func(c *OpportunityCreate) { c.Client = "" },
			wantErr: "client",
		},
		{
			name:    "Missing status",
			mutate:  func(c *OpportunityCreate) { c.Status = "" },
			wantErr: "status",
		},
		{
			name:    "Missing compliance percentage",
			mutate:  func(c *OpportunityCreate) { c.CompliancePercentage = nil },
			wantErr: "compliance_percentage",
		},
		{
			name:   "Zero compliance percentage is valid",
			mutate: func(c *OpportunityCreate) { c.CompliancePercentage = intPtr(0) },
		},
		{
			name:   "Optional fields may be empty",
			mutate: func(c *OpportunityCreate) { c.PortalLink = ""; c.Budget = ""; c.Industry = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validOpportunityCreate()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid payload, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error naming %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestNewOpportunity(t *testing.T) {
	in := validOpportunityCreate()
	o := NewOpportunity(in)

	if _, err := uuid.Parse(o.ID); err != nil {
		t.Errorf("expected UUID id, got %q", o.ID)
	}
	if _, err := time.Parse(time.RFC3339Nano, o.CreatedAt); err != nil {
		t.Errorf("expected RFC3339 created_at, got %q", o.CreatedAt)
	}
	if o.Client != in.Client || o.Status != in.Status || o.SubmissionDeadline != in.SubmissionDeadline {
		t.Error("create payload fields not carried into stored record")
	}
	if o.CompliancePercentage != 40 {
		t.Errorf("expected compliance 40, got %d", o.CompliancePercentage)
	}
	if o.RiskFlags == nil {
		t.Error("risk_flags must default to an empty list, not nil")
	}
	if len(o.RiskFlags) != 0 {
		t.Errorf("expected no risk flags, got %v", o.RiskFlags)
	}
}

func TestNewOpportunityIDsAreUnique(t *testing.T) {
	in := validOpportunityCreate()
	a := NewOpportunity(in)
	b := NewOpportunity(in)
	if a.ID == b.ID {
		t.Errorf("two creations share id %q", a.ID)
	}
}

func TestChildCreateValidate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{
			name: "Valid compliance item",
			err: ComplianceItemCreate{
				OpportunityID: "op-1", Requirement: "ISO 27001", Status: "Pending", AssignedTo: "Sam",
			}.Validate(),
		},
		{
			name: "Compliance item notes are optional",
			err: ComplianceItemCreate{
				OpportunityID: "op-1", Requirement: "ISO 27001", Status: "Pending", Notes: "", AssignedTo: "Sam",
			}.Validate(),
		},
		{
			name:    "Compliance item missing opportunity_id",
			err:     ComplianceItemCreate{Requirement: "ISO 27001", Status: "Pending", AssignedTo: "Sam"}.Validate(),
			wantErr: "opportunity_id",
		},
		{
			name: "Valid document",
			err: DocumentCreate{
				OpportunityID: "op-1", DocumentName: "Proposal.docx", Version: "v2", Category: "Draft", UploadedBy: "Sam",
			}.Validate(),
		},
		{
			name:    "Document missing version",
			err:     DocumentCreate{OpportunityID: "op-1", DocumentName: "Proposal.docx", Category: "Draft", UploadedBy: "Sam"}.Validate(),
			wantErr: "version",
		},
		{
			name: "Valid activity",
			err: ActivityCreate{
				OpportunityID: "op-1", ActivityType: "status_change", Description: "Moved to Review", User: "Sam",
			}.Validate(),
		},
		{
			name:    "Activity missing user",
			err:     ActivityCreate{OpportunityID: "op-1", ActivityType: "status_change", Description: "Moved to Review"}.Validate(),
			wantErr: "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == "" {
				if tt.err != nil {
					t.Errorf("expected valid payload, got %v", tt.err)
				}
				return
			}
			if tt.err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(tt.err.Error(), tt.wantErr) {
				t.Errorf("expected error naming %q, got %q", tt.wantErr, tt.err.Error())
			}
		})
	}
}

func TestTimestampIsUTC(t *testing.T) {
	ts, err := time.Parse(time.RFC3339Nano, Timestamp())
	if err != nil {
		t.Fatalf("timestamp does not parse: %v", err)
	}
	if _, offset := ts.Zone(); offset != 0 {
		t.Errorf("expected UTC timestamp, got offset %d", offset)
	}
}
