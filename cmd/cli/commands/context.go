package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nwainaina/fairway-crew/internal/config"
	"github.com/nwainaina/fairway-crew/pkg/clients/sheetsclient"
	"github.com/nwainaina/fairway-crew/pkg/core/affiliation"
	"github.com/nwainaina/fairway-crew/pkg/core/assignment"
	"github.com/nwainaina/fairway-crew/pkg/core/export"
	"github.com/nwainaina/fairway-crew/pkg/core/query"
	"github.com/nwainaina/fairway-crew/pkg/core/registration"
	"github.com/nwainaina/fairway-crew/pkg/core/teetime"
	"github.com/nwainaina/fairway-crew/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg          *config.Config
	Env          string
	Database     db.Database
	Normalizer   *affiliation.Normalizer
	Engine       *query.Engine
	Presets      *query.PresetService
	Assignments  *assignment.Service
	TeeTimes     *teetime.Manager
	Registration *registration.Service
	Formatter    *export.Formatter
	Logger       *zap.Logger
	Ctx          context.Context

	sheetsClient *sheetsclient.Client
}

// Actor returns the configured operator identity for audit attribution
func (app *AppContext) Actor() db.Actor {
	return db.Actor{
		ID:   app.Cfg.Actor.ID,
		Name: app.Cfg.Actor.Name,
		Role: app.Cfg.Actor.Role,
	}
}

// SheetsClient lazily builds the Google Sheets client. Only the export
// command needs it, so the OAuth flow runs only when publishing.
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if app.sheetsClient != nil {
		return app.sheetsClient, nil
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.sheetsClient = client
	return client, nil
}
