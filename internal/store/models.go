package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	quoted := make([]string, len(a))
	for i, s := range a {
		quoted[i] = `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.TrimSuffix(strings.TrimPrefix(str, "{"), "}")
	if str == "" {
		*a = []string{}
		return nil
	}

	var (
		items   []string
		current strings.Builder
		quoted  bool
		escaped bool
	)
	for _, r := range str {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			items = append(items, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	*a = append(items, current.String())
	return nil
}

type Company struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Domain            *string   `db:"domain" json:"domain,omitempty"`
	ContactEmail      *string   `db:"contact_email" json:"contact_email,omitempty"`
	MonthlyEmailLimit int       `db:"monthly_email_limit" json:"monthly_email_limit"`
	DailyEmailLimit   int       `db:"daily_email_limit" json:"daily_email_limit"`
	MonthlyEmailsUsed int       `db:"monthly_emails_used" json:"monthly_emails_used"`
	DailyEmailsUsed   int       `db:"daily_emails_used" json:"daily_emails_used"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	FirstName    *string    `db:"first_name" json:"first_name,omitempty"`
	LastName     *string    `db:"last_name" json:"last_name,omitempty"`
	Role         string     `db:"role" json:"role"`
	CompanyID    *uuid.UUID `db:"company_id" json:"company_id,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	PasswordHash *string    `db:"password_hash" json:"-"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// UserWithCompany is a user row joined with its company's name, used by the admin listing.
type UserWithCompany struct {
	User
	CompanyName *string `db:"company_name" json:"company_name,omitempty"`
}

type Template struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	CompanyID   *uuid.UUID  `db:"company_id" json:"company_id,omitempty"`
	Name        string      `db:"name" json:"name"`
	Description *string     `db:"description" json:"description,omitempty"`
	Category    *string     `db:"category" json:"category,omitempty"`
	Subject     string      `db:"subject" json:"subject"`
	HTMLContent string      `db:"html_content" json:"html_content"`
	TextContent *string     `db:"text_content" json:"text_content,omitempty"`
	Variables   StringArray `db:"variables" json:"variables"`
	IsGlobal    bool        `db:"is_global" json:"is_global"`
	UsageCount  int         `db:"usage_count" json:"usage_count"`
	CreatedBy   *uuid.UUID  `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

type LandingPage struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	CompanyID          *uuid.UUID `db:"company_id" json:"company_id,omitempty"`
	Name               string     `db:"name" json:"name"`
	Description        *string    `db:"description" json:"description,omitempty"`
	HTMLContent        string     `db:"html_content" json:"html_content"`
	CaptureCredentials bool       `db:"capture_credentials" json:"capture_credentials"`
	CapturePasswords   bool       `db:"capture_passwords" json:"capture_passwords"`
	RedirectURL        *string    `db:"redirect_url" json:"redirect_url,omitempty"`
	IsGlobal           bool       `db:"is_global" json:"is_global"`
	CreatedBy          *uuid.UUID `db:"created_by" json:"created_by,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// EmailService holds provider credentials. Secrets never leave the server; see MarshalJSON.
type EmailService struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	CompanyID         *uuid.UUID `db:"company_id" json:"company_id,omitempty"`
	Name              string     `db:"name" json:"name"`
	Provider          string     `db:"provider" json:"provider"`
	APIKey            *string    `db:"api_key" json:"-"`
	APISecret         *string    `db:"api_secret" json:"-"`
	Domain            *string    `db:"domain" json:"domain,omitempty"`
	Region            *string    `db:"region" json:"region,omitempty"`
	SMTPHost          *string    `db:"smtp_host" json:"smtp_host,omitempty"`
	SMTPPort          *int       `db:"smtp_port" json:"smtp_port,omitempty"`
	SMTPUsername      *string    `db:"smtp_username" json:"smtp_username,omitempty"`
	SMTPPassword      *string    `db:"smtp_password" json:"-"`
	FromEmail         string     `db:"from_email" json:"from_email"`
	FromName          *string    `db:"from_name" json:"from_name,omitempty"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	IsPlatformDefault bool       `db:"is_platform_default" json:"is_platform_default"`
	LastUsedAt        *time.Time `db:"last_used_at" json:"last_used_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// MarshalJSON replaces credential fields with presence flags.
func (e EmailService) MarshalJSON() ([]byte, error) {
	type alias EmailService
	return json.Marshal(struct {
		alias
		HasAPIKey       bool `json:"has_api_key"`
		HasAPISecret    bool `json:"has_api_secret"`
		HasSMTPPassword bool `json:"has_smtp_password"`
	}{
		alias:           alias(e),
		HasAPIKey:       e.APIKey != nil && *e.APIKey != "",
		HasAPISecret:    e.APISecret != nil && *e.APISecret != "",
		HasSMTPPassword: e.SMTPPassword != nil && *e.SMTPPassword != "",
	})
}

type ContactGroup struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CompanyID    uuid.UUID `db:"company_id" json:"company_id"`
	Name         string    `db:"name" json:"name"`
	Description  *string   `db:"description" json:"description,omitempty"`
	ContactCount int       `db:"contact_count" json:"contact_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Contact struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	CompanyID      uuid.UUID  `db:"company_id" json:"company_id"`
	GroupID        *uuid.UUID `db:"group_id" json:"group_id,omitempty"`
	Email          string     `db:"email" json:"email"`
	FirstName      *string    `db:"first_name" json:"first_name,omitempty"`
	LastName       *string    `db:"last_name" json:"last_name,omitempty"`
	CustomFields   JSONB      `db:"custom_fields" json:"custom_fields,omitempty"`
	IsSubscribed   bool       `db:"is_subscribed" json:"is_subscribed"`
	UnsubscribedAt *time.Time `db:"unsubscribed_at" json:"unsubscribed_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

type Campaign struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	CompanyID          uuid.UUID  `db:"company_id" json:"company_id"`
	Name               string     `db:"name" json:"name"`
	Subject            string     `db:"subject" json:"subject"`
	Status             string     `db:"status" json:"status"`
	TemplateID         *uuid.UUID `db:"template_id" json:"template_id,omitempty"`
	EmailServiceID     *uuid.UUID `db:"email_service_id" json:"email_service_id,omitempty"`
	LandingPageID      *uuid.UUID `db:"landing_page_id" json:"landing_page_id,omitempty"`
	ContactGroupID     *uuid.UUID `db:"contact_group_id" json:"contact_group_id,omitempty"`
	FromEmail          *string    `db:"from_email" json:"from_email,omitempty"`
	FromName           *string    `db:"from_name" json:"from_name,omitempty"`
	ReplyTo            *string    `db:"reply_to" json:"reply_to,omitempty"`
	HTMLContent        *string    `db:"html_content" json:"html_content,omitempty"`
	TextContent        *string    `db:"text_content" json:"text_content,omitempty"`
	ScheduledAt        *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`
	LaunchedAt         *time.Time `db:"launched_at" json:"launched_at,omitempty"`
	SentAt             *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	TotalRecipients    int        `db:"total_recipients" json:"total_recipients"`
	SentCount          int        `db:"sent_count" json:"sent_count"`
	DeliveredCount     int        `db:"delivered_count" json:"delivered_count"`
	OpenedCount        int        `db:"opened_count" json:"opened_count"`
	ClickedCount       int        `db:"clicked_count" json:"clicked_count"`
	BouncedCount       int        `db:"bounced_count" json:"bounced_count"`
	UnsubscribedCount  int        `db:"unsubscribed_count" json:"unsubscribed_count"`
	SubmittedDataCount int        `db:"submitted_data_count" json:"submitted_data_count"`
	CreatedBy          *uuid.UUID `db:"created_by" json:"created_by,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type CampaignRecipient struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	CampaignID      uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	ContactID       uuid.UUID  `db:"contact_id" json:"contact_id"`
	TrackingID      string     `db:"tracking_id" json:"tracking_id"`
	Status          string     `db:"status" json:"status"`
	SentAt          *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	OpenedAt        *time.Time `db:"opened_at" json:"opened_at,omitempty"`
	ClickedAt       *time.Time `db:"clicked_at" json:"clicked_at,omitempty"`
	SubmittedDataAt *time.Time `db:"submitted_data_at" json:"submitted_data_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// RecipientWithContact is a recipient row joined with the contact it targets.
type RecipientWithContact struct {
	CampaignRecipient
	Email     string  `db:"email" json:"email"`
	FirstName *string `db:"first_name" json:"first_name,omitempty"`
	LastName  *string `db:"last_name" json:"last_name,omitempty"`
}

type EmailEvent struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	CampaignID  uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	RecipientID *uuid.UUID `db:"recipient_id" json:"recipient_id,omitempty"`
	TrackingID  string     `db:"tracking_id" json:"tracking_id"`
	EventType   string     `db:"event_type" json:"event_type"`
	ClickedURL  *string    `db:"clicked_url" json:"clicked_url,omitempty"`
	IPAddress   *string    `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent   *string    `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

type CollectedData struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	CampaignID  uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	RecipientID *uuid.UUID `db:"recipient_id" json:"recipient_id,omitempty"`
	DataType    string     `db:"data_type" json:"data_type"`
	Fields      JSONB      `db:"fields" json:"fields"`
	IPAddress   *string    `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent   *string    `db:"user_agent" json:"user_agent,omitempty"`
	SubmittedAt time.Time  `db:"submitted_at" json:"submitted_at"`
	Status      string     `db:"status" json:"status"`
	VerifiedAt  *time.Time `db:"verified_at" json:"verified_at,omitempty"`
	FlaggedAt   *time.Time `db:"flagged_at" json:"flagged_at,omitempty"`
	FlagReason  *string    `db:"flag_reason" json:"flag_reason,omitempty"`
}

// CollectedDataWithCampaign is a collected data row with the owning campaign's tenant and name.
type CollectedDataWithCampaign struct {
	CollectedData
	CompanyID      uuid.UUID `db:"company_id" json:"company_id"`
	CampaignName   string    `db:"campaign_name" json:"campaign_name"`
	RecipientEmail *string   `db:"recipient_email" json:"recipient_email,omitempty"`
}
