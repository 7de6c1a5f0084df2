package admin

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/audit"
	"github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/domain/enquiry"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

const defaultAuditLimit = 100

// Listings gives admins unfiltered views across every status.
type Listings struct {
	businesses business.Repository
	enquiries  enquiry.Repository
	ads        advertisement.Repository
	auditLog   *audit.Logger
}

func NewListings(
	businesses business.Repository,
	enquiries enquiry.Repository,
	ads advertisement.Repository,
	auditLog *audit.Logger,
) *Listings {
	return &Listings{
		businesses: businesses,
		enquiries:  enquiries,
		ads:        ads,
		auditLog:   auditLog,
	}
}

func (uc *Listings) Businesses(ctx context.Context, status string) ([]models.Business, error) {
	return uc.businesses.ListByStatus(ctx, status)
}

func (uc *Listings) Enquiries(ctx context.Context, status string) ([]models.Enquiry, error) {
	return uc.enquiries.ListByStatus(ctx, status)
}

func (uc *Listings) Advertisements(ctx context.Context, status string) ([]models.Advertisement, error) {
	return uc.ads.ListByStatus(ctx, status)
}

func (uc *Listings) AuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	return uc.auditLog.List(ctx, limit)
}
