// Package api is the HTTP edge: request parsing, tenant extraction, webhook
// signature verification, and the single place service errors become status
// codes. Handlers stay thin; semantics live in the domain services.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/pkg/calls"
	"github.com/ringstack/ringstack/pkg/contacts"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/notify"
	"github.com/ringstack/ringstack/pkg/queue"
)

// CallService is the slice of pkg/calls the call endpoints use.
// Implemented by *calls.Service.
type CallService interface {
	Initiate(ctx context.Context, in calls.InitiateInput) (*calls.InitiateResult, error)
	Stop(ctx context.Context, tenantID, callID string) (*ent.Call, error)
	Get(ctx context.Context, tenantID, callID string) (*calls.Detail, error)
	QueueStatus(ctx context.Context, tenantID string) (*calls.QueueStatus, error)
}

// WebhookProcessor ingests provider callbacks. Implemented by
// *calls.WebhookService.
type WebhookProcessor interface {
	ProcessWebhook(ctx context.Context, ev *calls.WebhookEvent) error
}

// QueueRunner triggers queue passes. Implemented by *queue.Processor.
type QueueRunner interface {
	ProcessSmart(ctx context.Context) (queue.PassResult, error)
	ProcessImmediate(ctx context.Context, tenantID string) (queue.PassResult, error)
}

// Schedule is the cache surface behind the schedule endpoints. Implemented
// by *queue.ScheduleCache.
type Schedule interface {
	Current(ctx context.Context, now time.Time) (*queue.Snapshot, error)
	Refresh(ctx context.Context) (*queue.Snapshot, error)
}

// CampaignAdmin manages campaign definitions. Implemented by
// *queue.CampaignService.
type CampaignAdmin interface {
	Create(ctx context.Context, in queue.CreateCampaignInput) (*ent.Campaign, error)
	Activate(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error)
	Pause(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error)
	EnqueueContacts(ctx context.Context, tenantID, campaignID string, targets []queue.CampaignContact) (int, error)
}

// ContactCreator creates contacts. Implemented by *contacts.Service.
type ContactCreator interface {
	Create(ctx context.Context, in contacts.CreateInput) (*ent.Contact, error)
}

// NotificationService is the notify surface behind the preference and
// history endpoints. Implemented by *notify.Service.
type NotificationService interface {
	Preferences(ctx context.Context, tenantID string) (notify.Preferences, error)
	UpdatePreferences(ctx context.Context, tenantID string, patch notify.PreferencesPatch) (notify.Preferences, error)
	History(ctx context.Context, tenantID string, limit, offset int) ([]*ent.Notification, error)
}

// Server wires the HTTP routes to the domain services.
type Server struct {
	dbClient      *database.Client
	calls         CallService
	webhooks      WebhookProcessor
	processor     QueueRunner
	cache         Schedule
	campaigns     CampaignAdmin
	contacts      ContactCreator
	notifications NotificationService
	webhookSecret []byte

	echo       *echo.Echo
	httpServer *http.Server
}

// ServerDeps carries the collaborators a Server needs. WebhookSecret signs
// provider callbacks and must not be empty.
type ServerDeps struct {
	DBClient      *database.Client
	Calls         CallService
	Webhooks      WebhookProcessor
	Processor     QueueRunner
	Cache         Schedule
	Campaigns     CampaignAdmin
	Contacts      ContactCreator
	Notifications NotificationService
	WebhookSecret string
}

// NewServer creates the API server and registers all routes.
func NewServer(deps ServerDeps) *Server {
	if deps.DBClient == nil {
		panic("api.NewServer: db client is required")
	}
	if deps.Calls == nil {
		panic("api.NewServer: call service is required")
	}
	if deps.Webhooks == nil {
		panic("api.NewServer: webhook service is required")
	}
	if deps.Processor == nil {
		panic("api.NewServer: queue processor is required")
	}
	if deps.Cache == nil {
		panic("api.NewServer: schedule cache is required")
	}
	if deps.Campaigns == nil {
		panic("api.NewServer: campaign service is required")
	}
	if deps.Contacts == nil {
		panic("api.NewServer: contact service is required")
	}
	if deps.Notifications == nil {
		panic("api.NewServer: notification service is required")
	}
	if deps.WebhookSecret == "" {
		panic("api.NewServer: webhook secret is required")
	}

	s := &Server{
		dbClient:      deps.DBClient,
		calls:         deps.Calls,
		webhooks:      deps.Webhooks,
		processor:     deps.Processor,
		cache:         deps.Cache,
		campaigns:     deps.Campaigns,
		contacts:      deps.Contacts,
		notifications: deps.Notifications,
		webhookSecret: []byte(deps.WebhookSecret),
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	// Provider callbacks and infra endpoints: no tenant header.
	e.POST("/api/v1/webhooks/voice", s.voiceWebhookHandler)
	e.POST("/api/v1/queue/process", s.processQueueHandler)
	e.POST("/api/v1/queue/process/immediate", s.processImmediateHandler)
	e.GET("/api/v1/queue/schedule", s.scheduleHandler)
	e.POST("/api/v1/queue/schedule/refresh", s.refreshScheduleHandler)
	e.GET("/api/v1/health", s.healthHandler)

	// Tenant-scoped endpoints; handlers resolve X-Tenant-ID themselves.
	e.POST("/api/v1/calls/initiate", s.initiateCallHandler)
	e.GET("/api/v1/calls/queue/status", s.queueStatusHandler)
	e.POST("/api/v1/calls/:id/stop", s.stopCallHandler)
	e.GET("/api/v1/calls/:id", s.getCallHandler)
	e.POST("/api/v1/campaigns", s.createCampaignHandler)
	e.POST("/api/v1/campaigns/:id/activate", s.activateCampaignHandler)
	e.POST("/api/v1/campaigns/:id/pause", s.pauseCampaignHandler)
	e.POST("/api/v1/campaigns/:id/enqueue", s.enqueueCampaignHandler)
	e.POST("/api/v1/contacts", s.createContactHandler)
	e.GET("/api/v1/notifications/preferences", s.getPreferencesHandler)
	e.PUT("/api/v1/notifications/preferences", s.updatePreferencesHandler)
	e.GET("/api/v1/notifications/history", s.notificationHistoryHandler)

	return e
}

// Start begins serving on addr and blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
