package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/bizmarket/internal/audit"
	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/db/dbtest"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/infra/repository"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type fixture struct {
	db         *gorm.DB
	users      *repository.UserGormRepository
	businesses *repository.BusinessGormRepository
	enquiries  *repository.EnquiryGormRepository
	ads        *repository.AdvertisementGormRepository
	auditLog   *audit.Logger
	dispatcher *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	gdb := dbtest.New(t)
	f := &fixture{
		db:         gdb,
		users:      repository.NewUserGormRepository(gdb),
		businesses: repository.NewBusinessGormRepository(gdb),
		enquiries:  repository.NewEnquiryGormRepository(gdb),
		ads:        repository.NewAdvertisementGormRepository(gdb),
		auditLog:   audit.New(gdb),
	}
	f.dispatcher = audit.NewDispatcher(f.auditLog, zap.NewNop())
	t.Cleanup(f.dispatcher.Close)
	return f
}

var admin = &auth.Principal{User: &models.User{ID: "admin-1", UserType: "admin"}}

func (f *fixture) business(t *testing.T, status string) *models.Business {
	b := &models.Business{
		OwnerID:      "seller-1",
		Title:        "Corner Cafe",
		Description:  "Busy cafe near the station.",
		Industry:     "Food",
		BusinessType: "acquisition",
		Location:     "Boston",
		AskingPrice:  50000,
		Status:       status,
	}
	notice := &models.Enquiry{Type: "new_listing", Message: "New business listing: Corner Cafe", Status: "unread"}
	require.NoError(t, f.businesses.CreateWithNotice(context.Background(), b, notice))
	return b
}

func (f *fixture) advertisement(t *testing.T) *models.Advertisement {
	ad := &models.Advertisement{
		OwnerID:      "seller-1",
		Title:        "Spring promo",
		Description:  "Promote your listing to every buyer on the marketplace this spring.",
		Category:     "Retail",
		Location:     "Boston",
		ContactEmail: "ads@example.com",
		Budget:       500,
		Duration:     30,
		AdType:       "premium",
		Price:        99,
		Status:       "pending",
	}
	require.NoError(t, f.ads.Create(context.Background(), ad))
	return ad
}

// flush waits for queued audit events to be written.
func (f *fixture) flush() {
	f.dispatcher.Close()
}

func TestApproveBusiness(t *testing.T) {
	f := newFixture(t)
	b := f.business(t, "pending")
	uc := NewApproveBusiness(f.businesses, f.dispatcher)
	ctx := context.Background()

	got, err := uc.Execute(ctx, admin, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", got.Status)

	// repeating is a no-op rather than an error
	got, err = uc.Execute(ctx, admin, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", got.Status)

	f.flush()
	logs, err := f.auditLog.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "approve_business", logs[0].Action)
	assert.Equal(t, b.ID, *logs[0].EntityID)
	assert.Equal(t, "admin-1", *logs[0].ActorID)
}

func TestApproveBusiness_InvalidState(t *testing.T) {
	f := newFixture(t)
	b := f.business(t, "sold")
	uc := NewApproveBusiness(f.businesses, f.dispatcher)

	_, err := uc.Execute(context.Background(), admin, b.ID)
	require.Error(t, err)
	assert.True(t, httperr.Is(err, "invalid_state"))
	assert.Contains(t, httperr.As(err).Message, "sold")
}

func TestModerate_UnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := NewRejectBusiness(f.businesses, f.dispatcher).Execute(context.Background(), admin, "missing")
	assert.True(t, httperr.Is(err, "business_not_found"))

	_, err = NewMarkEnquiryRead(f.enquiries, f.dispatcher).Execute(context.Background(), admin, "missing")
	assert.True(t, httperr.Is(err, "enquiry_not_found"))

	_, err = NewActivateAdvertisement(f.ads, f.dispatcher).Execute(context.Background(), admin, "missing")
	assert.True(t, httperr.Is(err, "advertisement_not_found"))
}

func TestRejectThenApproveBusiness(t *testing.T) {
	f := newFixture(t)
	b := f.business(t, "active")
	ctx := context.Background()

	got, err := NewRejectBusiness(f.businesses, f.dispatcher).Execute(ctx, admin, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)

	got, err = NewApproveBusiness(f.businesses, f.dispatcher).Execute(ctx, admin, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", got.Status)
}

func TestMarkEnquiryRead(t *testing.T) {
	f := newFixture(t)
	f.business(t, "pending")
	ctx := context.Background()

	list, err := f.enquiries.ListByStatus(ctx, "unread")
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := NewMarkEnquiryRead(f.enquiries, f.dispatcher).Execute(ctx, admin, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "read", got.Status)

	unread, err := f.enquiries.CountByStatus(ctx, "unread")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestActivateAdvertisement_StampsActivatedAt(t *testing.T) {
	f := newFixture(t)
	ad := f.advertisement(t)
	ctx := context.Background()

	got, err := NewActivateAdvertisement(f.ads, f.dispatcher).Execute(ctx, admin, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", got.Status)
	require.NotNil(t, got.ActivatedAt)
	assert.Equal(t, "pending", got.PaymentStatus)

	got, err = NewRejectAdvertisement(f.ads, f.dispatcher).Execute(ctx, admin, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)
}

func TestGetDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &models.User{
		Email: "seller@example.com", PasswordHash: "x", FullName: "Sam Seller", UserType: "seller",
	}))
	f.business(t, "pending")
	f.business(t, "active")
	f.advertisement(t)

	out, err := NewGetDashboard(f.users, f.businesses, f.enquiries, f.ads).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Stats.TotalUsers)
	assert.Equal(t, int64(2), out.Stats.TotalBusinesses)
	assert.Equal(t, int64(1), out.Stats.PendingBusinesses)
	assert.Equal(t, int64(2), out.Stats.TotalEnquiries)
	assert.Equal(t, int64(2), out.Stats.UnreadEnquiries)
	assert.Equal(t, int64(1), out.Stats.TotalAdvertisements)
	assert.Equal(t, int64(1), out.Stats.PendingAds)
	assert.Len(t, out.RecentBusinesses, 2)
	assert.Len(t, out.RecentEnquiries, 2)
}

func TestGetDashboard_Empty(t *testing.T) {
	f := newFixture(t)

	out, err := NewGetDashboard(f.users, f.businesses, f.enquiries, f.ads).Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.Stats.TotalBusinesses)
	assert.NotNil(t, out.RecentBusinesses)
	assert.NotNil(t, out.RecentEnquiries)
}

func TestListings_FilterByStatus(t *testing.T) {
	f := newFixture(t)
	f.business(t, "pending")
	f.business(t, "rejected")
	uc := NewListings(f.businesses, f.enquiries, f.ads, f.auditLog)
	ctx := context.Background()

	all, err := uc.Businesses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	rejected, err := uc.Businesses(ctx, "rejected")
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, "rejected", rejected[0].Status)

	logs, err := uc.AuditLogs(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
