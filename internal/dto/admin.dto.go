package dto

import "github.com/BruksfildServices01/bizmarket/internal/models"

type BusinessIDRequest struct {
	BusinessID string `json:"business_id" binding:"required"`
}

type EnquiryIDRequest struct {
	EnquiryID string `json:"enquiry_id" binding:"required"`
}

type AdIDRequest struct {
	AdID string `json:"ad_id" binding:"required"`
}

type BusinessStatusFilter struct {
	Status string `json:"status" binding:"omitempty,oneof=pending active rejected sold draft"`
}

type EnquiryStatusFilter struct {
	Status string `json:"status" binding:"omitempty,oneof=unread read"`
}

type AdStatusFilter struct {
	Status string `json:"status" binding:"omitempty,oneof=pending active rejected"`
}

type AuditLogFilter struct {
	Limit int `json:"limit" binding:"omitempty,gte=1,lte=500"`
}

type DashboardStats struct {
	TotalUsers          int64 `json:"total_users"`
	TotalBusinesses     int64 `json:"total_businesses"`
	PendingBusinesses   int64 `json:"pending_businesses"`
	TotalEnquiries      int64 `json:"total_enquiries"`
	UnreadEnquiries     int64 `json:"unread_enquiries"`
	TotalAdvertisements int64 `json:"total_advertisements"`
	PendingAds          int64 `json:"pending_advertisements"`
}

type DashboardDTO struct {
	Stats            DashboardStats    `json:"stats"`
	RecentBusinesses []models.Business `json:"recent_businesses"`
	RecentEnquiries  []models.Enquiry  `json:"recent_enquiries"`
}

type ModerationResult struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
