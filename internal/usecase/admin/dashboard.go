package admin

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/domain/enquiry"
	"github.com/BruksfildServices01/bizmarket/internal/domain/user"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

const (
	recentBusinesses = 5
	recentEnquiries  = 10
)

type GetDashboard struct {
	users      user.Repository
	businesses business.Repository
	enquiries  enquiry.Repository
	ads        advertisement.Repository
}

func NewGetDashboard(
	users user.Repository,
	businesses business.Repository,
	enquiries enquiry.Repository,
	ads advertisement.Repository,
) *GetDashboard {
	return &GetDashboard{
		users:      users,
		businesses: businesses,
		enquiries:  enquiries,
		ads:        ads,
	}
}

func (uc *GetDashboard) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	var (
		out dto.DashboardDTO
		err error
	)

	counts := []struct {
		dst *int64
		fn  func() (int64, error)
	}{
		{&out.Stats.TotalUsers, func() (int64, error) { return uc.users.Count(ctx) }},
		{&out.Stats.TotalBusinesses, func() (int64, error) { return uc.businesses.CountByStatus(ctx, "") }},
		{&out.Stats.PendingBusinesses, func() (int64, error) {
			return uc.businesses.CountByStatus(ctx, string(business.StatusPending))
		}},
		{&out.Stats.TotalEnquiries, func() (int64, error) { return uc.enquiries.CountByStatus(ctx, "") }},
		{&out.Stats.UnreadEnquiries, func() (int64, error) {
			return uc.enquiries.CountByStatus(ctx, string(enquiry.StatusUnread))
		}},
		{&out.Stats.TotalAdvertisements, func() (int64, error) { return uc.ads.CountByStatus(ctx, "") }},
		{&out.Stats.PendingAds, func() (int64, error) {
			return uc.ads.CountByStatus(ctx, string(advertisement.StatusPending))
		}},
	}
	for _, c := range counts {
		if *c.dst, err = c.fn(); err != nil {
			return nil, err
		}
	}

	if out.RecentBusinesses, err = uc.businesses.Recent(ctx, recentBusinesses); err != nil {
		return nil, err
	}
	if out.RecentEnquiries, err = uc.enquiries.Recent(ctx, recentEnquiries); err != nil {
		return nil, err
	}

	if out.RecentBusinesses == nil {
		out.RecentBusinesses = []models.Business{}
	}
	if out.RecentEnquiries == nil {
		out.RecentEnquiries = []models.Enquiry{}
	}

	return &out, nil
}
