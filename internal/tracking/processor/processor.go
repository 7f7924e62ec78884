package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"phishsim-server/internal/events"
	"phishsim-server/internal/metrics"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/google/uuid"
)

// TrackingStore defines the database operations required by TrackingProcessor
type TrackingStore interface {
	AdvanceFunnel(ctx context.Context, hit store.TrackingHit) (store.FunnelResult, error)
	RecordSubmission(ctx context.Context, params store.RecordSubmissionParams) (store.CollectedData, store.FunnelResult, error)
	GetRecipientByTrackingID(ctx context.Context, trackingID string) (store.CampaignRecipient, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	GetLandingPageByID(ctx context.Context, id uuid.UUID) (store.LandingPage, error)
}

// EventPublisher streams first-time funnel transitions
type EventPublisher interface {
	PublishRecipientOpened(ctx context.Context, e events.Engagement) error
	PublishRecipientClicked(ctx context.Context, e events.Engagement) error
	PublishRecipientSubmitted(ctx context.Context, e events.Engagement) error
}

var (
	ErrUnknownTrackingID = errors.New("unknown tracking id")
	ErrNoRedirectURL     = errors.New("no redirect url available")
)

const redactedValue = "[REDACTED]"

// passwordKeyMarkers identify form fields that carry a secret
var passwordKeyMarkers = []string{"pass", "pwd", "secret"}

type TrackingProcessor struct {
	store     TrackingStore
	publisher EventPublisher
	logger    *observability.Logger
}

func New(store TrackingStore, publisher EventPublisher, logger *observability.Logger) TrackingProcessor {
	return TrackingProcessor{store: store, publisher: publisher, logger: logger}
}

// Client is the network identity of the tracked request
type Client struct {
	IPAddress string
	UserAgent string
}

// SubmitResult tells the landing page where to send the user next
type SubmitResult struct {
	DataType    string
	RedirectURL *string
}

// RecordOpen registers an open of the email behind trackingID
func (p *TrackingProcessor) RecordOpen(ctx context.Context, trackingID string, client Client) error {
	result, err := p.store.AdvanceFunnel(ctx, store.TrackingHit{
		TrackingID: trackingID,
		Stage:      store.RecipientStatusOpened,
		IPAddress:  optional(client.IPAddress),
		UserAgent:  optional(client.UserAgent),
	})
	if err != nil {
		return p.trackingError("open", err)
	}

	metrics.RecordTrackingEvent("open", outcome(result))
	if result.Advanced {
		p.publish(ctx, result.Recipient, func(ctx context.Context, e events.Engagement) error {
			return p.publisher.PublishRecipientOpened(ctx, e)
		})
	}
	return nil
}

// RecordClick registers a click and returns where to redirect. The requested URL wins when it
// is a valid http(s) URL; otherwise the campaign landing page's redirect URL is used. A click
// is recorded even when no redirect target exists.
func (p *TrackingProcessor) RecordClick(ctx context.Context, trackingID, requestedURL string, client Client) (string, error) {
	target, _ := safeRedirect(requestedURL)

	hit := store.TrackingHit{
		TrackingID: trackingID,
		Stage:      store.RecipientStatusClicked,
		IPAddress:  optional(client.IPAddress),
		UserAgent:  optional(client.UserAgent),
		ClickedURL: optional(target),
	}
	result, err := p.store.AdvanceFunnel(ctx, hit)
	if err != nil {
		err = p.trackingError("click", err)
		if target != "" {
			if !errors.Is(err, ErrUnknownTrackingID) {
				p.logger.Error(ctx, "failed to record click", err)
			}
			return target, nil
		}
		return "", err
	}

	metrics.RecordTrackingEvent("click", outcome(result))
	if result.Advanced {
		p.publish(ctx, result.Recipient, func(ctx context.Context, e events.Engagement) error {
			e.ClickedURL = target
			return p.publisher.PublishRecipientClicked(ctx, e)
		})
	}

	if target != "" {
		return target, nil
	}
	_, page, err := p.landingPage(ctx, result.Recipient)
	if err != nil {
		return "", err
	}
	if page != nil && page.RedirectURL != nil {
		if fallback, ok := safeRedirect(*page.RedirectURL); ok {
			return fallback, nil
		}
	}
	return "", ErrNoRedirectURL
}

// RecordSubmission stores the submitted form. Payloads with a password-like field are
// classified as credentials; their secret values are redacted unless the landing page
// captures passwords.
func (p *TrackingProcessor) RecordSubmission(ctx context.Context, trackingID string, fields map[string]any, client Client) (SubmitResult, error) {
	recipient, err := p.store.GetRecipientByTrackingID(ctx, trackingID)
	if err != nil {
		return SubmitResult{}, p.trackingError("submit", err)
	}
	campaign, page, err := p.landingPage(ctx, recipient)
	if err != nil {
		return SubmitResult{}, err
	}

	dataType := Classify(fields)
	stored := store.JSONB{}
	for k, v := range fields {
		if isPasswordKey(k) && (page == nil || !page.CapturePasswords) {
			v = redactedValue
		}
		stored[k] = v
	}

	data, result, err := p.store.RecordSubmission(ctx, store.RecordSubmissionParams{
		TrackingID: trackingID,
		DataType:   dataType,
		Fields:     stored,
		IPAddress:  optional(client.IPAddress),
		UserAgent:  optional(client.UserAgent),
	})
	if err != nil {
		return SubmitResult{}, p.trackingError("submit", err)
	}

	metrics.RecordTrackingEvent("submit", outcome(result))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "collected_data_id", Value: data.ID},
		observability.Field{Key: "data_type", Value: dataType},
		observability.Field{Key: "first_submission", Value: result.Advanced},
	)
	p.logger.Info(ctx, "submission recorded")

	if result.Advanced {
		err := p.publisher.PublishRecipientSubmitted(ctx, events.Engagement{
			CompanyID:   campaign.CompanyID,
			CampaignID:  campaign.ID,
			RecipientID: recipient.ID,
			DataType:    dataType,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to publish recipient submitted event", err)
		}
	}

	out := SubmitResult{DataType: dataType}
	if page != nil && page.RedirectURL != nil {
		if redirect, ok := safeRedirect(*page.RedirectURL); ok {
			out.RedirectURL = &redirect
		}
	}
	return out, nil
}

// Classify returns the collected data type for a submitted payload
func Classify(fields map[string]any) string {
	for k := range fields {
		if isPasswordKey(k) {
			return store.CollectedDataTypeCredentials
		}
	}
	return store.CollectedDataTypeFormData
}

func isPasswordKey(key string) bool {
	key = strings.ToLower(key)
	for _, marker := range passwordKeyMarkers {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}

// landingPage loads the recipient's campaign and, when linked, its landing page
func (p *TrackingProcessor) landingPage(ctx context.Context, recipient store.CampaignRecipient) (store.Campaign, *store.LandingPage, error) {
	campaign, err := p.store.GetCampaignByID(ctx, recipient.CampaignID)
	if err != nil {
		return store.Campaign{}, nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.LandingPageID == nil {
		return campaign, nil, nil
	}

	page, err := p.store.GetLandingPageByID(ctx, *campaign.LandingPageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return campaign, nil, nil
		}
		return store.Campaign{}, nil, fmt.Errorf("failed to get landing page: %w", err)
	}
	return campaign, &page, nil
}

func (p *TrackingProcessor) publish(ctx context.Context, recipient store.CampaignRecipient, send func(context.Context, events.Engagement) error) {
	campaign, err := p.store.GetCampaignByID(ctx, recipient.CampaignID)
	if err == nil {
		err = send(ctx, events.Engagement{
			CompanyID:   campaign.CompanyID,
			CampaignID:  campaign.ID,
			RecipientID: recipient.ID,
		})
	}
	if err != nil {
		p.logger.Error(ctx, "failed to publish engagement event", err)
	}
}

func (p *TrackingProcessor) trackingError(event string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		metrics.RecordTrackingEvent(event, metrics.OutcomeUnknown)
		return ErrUnknownTrackingID
	}
	metrics.RecordTrackingEvent(event, metrics.OutcomeError)
	return fmt.Errorf("failed to record %s: %w", event, err)
}

// safeRedirect accepts absolute http and https URLs only
func safeRedirect(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}
	return u.String(), true
}

func outcome(result store.FunnelResult) string {
	if result.Advanced {
		return metrics.OutcomeFirst
	}
	return metrics.OutcomeRepeat
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
