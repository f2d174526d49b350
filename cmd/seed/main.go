package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/david/rfp-tracker/internal/config"
	"github.com/david/rfp-tracker/internal/db"
	"github.com/david/rfp-tracker/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtures struct {
	Opportunities []opportunitySeed `yaml:"opportunities"`
}

// opportunitySeed mirrors OpportunityCreate but carries the deadline as an
// offset from seed time, so fixtures stay useful no matter when they run.
type opportunitySeed struct {
	Client               string   `yaml:"client"`
	ProjectType          string   `yaml:"project_type"`
	RFPReleaseDate       string   `yaml:"rfp_release_date"`
	DeadlineInHours      int      `yaml:"deadline_in_hours"`
	ProposalOwner        string   `yaml:"proposal_owner"`
	Status               string   `yaml:"status"`
	CompliancePercentage int      `yaml:"compliance_percentage"`
	PriorityLevel        string   `yaml:"priority_level"`
	PortalLink           string   `yaml:"portal_link"`
	RiskFlags            []string `yaml:"risk_flags"`
	SubmissionFormat     string   `yaml:"submission_format"`
	Budget               string   `yaml:"budget"`
	Industry             string   `yaml:"industry"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.Mongo.URL)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer client.Disconnect(ctx)

	database := client.Database(cfg.Mongo.DBName)
	store := db.NewStore(database)

	var fx fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		log.Fatalf("Failed to parse fixtures: %v", err)
	}

	log.Print("Clearing existing data...")
	for _, name := range []string{db.CollOpportunities, db.CollCompliance, db.CollDocuments, db.CollActivities} {
		if _, err := database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}

	now := time.Now().UTC()
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Client", "Project", "Status", "Compliance", "Deadline"})

	for _, seed := range fx.Opportunities {
		pct := seed.CompliancePercentage
		deadline := now.Add(time.Duration(seed.DeadlineInHours) * time.Hour)

		opp := models.NewOpportunity(models.OpportunityCreate{
			Client:               seed.Client,
			ProjectType:          seed.ProjectType,
			RFPReleaseDate:       seed.RFPReleaseDate,
			SubmissionDeadline:   deadline.Format(time.RFC3339Nano),
			ProposalOwner:        seed.ProposalOwner,
			Status:               seed.Status,
			CompliancePercentage: &pct,
			PriorityLevel:        seed.PriorityLevel,
			PortalLink:           seed.PortalLink,
			RiskFlags:            seed.RiskFlags,
			SubmissionFormat:     seed.SubmissionFormat,
			Budget:               seed.Budget,
			Industry:             seed.Industry,
		})

		if err := store.InsertOpportunity(ctx, opp); err != nil {
			log.Fatalf("Failed to insert %s: %v", seed.Client, err)
		}

		t.AppendRow(table.Row{
			opp.Client, opp.ProjectType, opp.Status,
			fmt.Sprintf("%d%%", opp.CompliancePercentage),
			deadline.Format("2006-01-02 15:04"),
		})
	}

	t.Render()
	log.Printf("Inserted %d opportunities", len(fx.Opportunities))
}
