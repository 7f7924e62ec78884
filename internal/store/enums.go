package store

// User role ENUMs
const (
	UserRoleSuperadmin = "superadmin"
	UserRoleAdmin      = "admin"
	UserRoleManager    = "manager"
)

// Email provider ENUMs
const (
	EmailProviderSendgrid = "sendgrid"
	EmailProviderMailgun  = "mailgun"
	EmailProviderAWSSES   = "aws-ses"
	EmailProviderResend   = "resend"
	EmailProviderSMTP     = "smtp"
)

// Campaign ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusSending   = "sending"
	CampaignStatusSent      = "sent"
	CampaignStatusPaused    = "paused"
	CampaignStatusCancelled = "cancelled"
)

// Recipient funnel ENUMs, in funnel order
const (
	RecipientStatusPending       = "pending"
	RecipientStatusSent          = "sent"
	RecipientStatusOpened        = "opened"
	RecipientStatusClicked       = "clicked"
	RecipientStatusSubmittedData = "submitted_data"
)

// Email event ENUMs
const (
	EmailEventSent         = "sent"
	EmailEventDelivered    = "delivered"
	EmailEventOpened       = "opened"
	EmailEventClicked      = "clicked"
	EmailEventBounced      = "bounced"
	EmailEventComplained   = "complained"
	EmailEventUnsubscribed = "unsubscribed"
)

// Collected data ENUMs
const (
	CollectedDataTypeCredentials    = "credentials"
	CollectedDataTypeFormData       = "form-data"
	CollectedDataTypeSurveyResponse = "survey-response"
)

const (
	CollectedDataStatusPending  = "pending"
	CollectedDataStatusVerified = "verified"
	CollectedDataStatusFlagged  = "flagged"
)
