package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
	seq    int
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

func (f *Fixtures) next() int {
	f.seq++
	return f.seq
}

func (f *Fixtures) CreateCompany() Company {
	f.t.Helper()
	company, err := f.testDB.Store.CreateCompany(f.ctx, CreateCompanyParams{
		Name: fmt.Sprintf("Company %d", f.next()),
	})
	require.NoError(f.t, err, "failed to create test company")
	return company
}

func (f *Fixtures) CreateUser(companyID uuid.UUID, role string) User {
	f.t.Helper()
	user, err := f.testDB.Store.CreateUser(f.ctx, CreateUserParams{
		Email:     fmt.Sprintf("user%d@example.test", f.next()),
		Role:      role,
		CompanyID: &companyID,
	})
	require.NoError(f.t, err, "failed to create test user")
	return user
}

func (f *Fixtures) CreateContactGroup(companyID uuid.UUID) ContactGroup {
	f.t.Helper()
	group, err := f.testDB.Store.CreateContactGroup(f.ctx, companyID, fmt.Sprintf("Group %d", f.next()), nil)
	require.NoError(f.t, err, "failed to create test contact group")
	return group
}

func (f *Fixtures) CreateContact(companyID uuid.UUID, groupID *uuid.UUID) Contact {
	f.t.Helper()
	contact, err := f.testDB.Store.CreateContact(f.ctx, companyID, ContactInput{
		Email:   fmt.Sprintf("contact%d@example.test", f.next()),
		GroupID: groupID,
	})
	require.NoError(f.t, err, "failed to create test contact")
	return contact
}

func (f *Fixtures) CreateCampaign(companyID uuid.UUID, opts ...func(*CreateCampaignParams)) Campaign {
	f.t.Helper()
	params := CreateCampaignParams{
		CompanyID: companyID,
		Name:      fmt.Sprintf("Campaign %d", f.next()),
		Subject:   "Action required: verify your account",
	}
	for _, fn := range opts {
		fn(&params)
	}
	campaign, err := f.testDB.Store.CreateCampaign(f.ctx, params)
	require.NoError(f.t, err, "failed to create test campaign")
	return campaign
}

// CreateRecipient attaches a fresh contact to the campaign and returns the recipient row.
func (f *Fixtures) CreateRecipient(campaign Campaign) CampaignRecipient {
	f.t.Helper()
	contact := f.CreateContact(campaign.CompanyID, nil)
	created, err := f.testDB.Store.AddRecipients(f.ctx, campaign.ID, campaign.CompanyID, []uuid.UUID{contact.ID})
	require.NoError(f.t, err, "failed to add test recipient")
	require.Equal(f.t, 1, created)

	var recipient CampaignRecipient
	err = f.testDB.GetDB().GetContext(f.ctx, &recipient,
		`SELECT `+recipientColumns+` FROM campaign_recipients WHERE campaign_id = $1 AND contact_id = $2`,
		campaign.ID, contact.ID)
	require.NoError(f.t, err, "failed to load test recipient")
	return recipient
}

func (f *Fixtures) CountRows(query string, args ...interface{}) int {
	f.t.Helper()
	var n int
	require.NoError(f.t, f.testDB.GetDB().GetContext(f.ctx, &n, query, args...))
	return n
}
