package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/bizmarket/internal/audit"
	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/config"
	"github.com/BruksfildServices01/bizmarket/internal/handlers"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	infraRepo "github.com/BruksfildServices01/bizmarket/internal/infra/repository"
	"github.com/BruksfildServices01/bizmarket/internal/middleware"
	"github.com/BruksfildServices01/bizmarket/internal/payment"
	ucAdmin "github.com/BruksfildServices01/bizmarket/internal/usecase/admin"
	ucAd "github.com/BruksfildServices01/bizmarket/internal/usecase/advertisement"
	ucAuth "github.com/BruksfildServices01/bizmarket/internal/usecase/auth"
	ucBusiness "github.com/BruksfildServices01/bizmarket/internal/usecase/business"
	ucPayment "github.com/BruksfildServices01/bizmarket/internal/usecase/payment"
	"github.com/BruksfildServices01/bizmarket/internal/validators"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Config  *config.Config
	Log     *zap.Logger
	Gateway payment.Gateway
	Audit   *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Recovery(),
		middleware.CORSMiddleware(),
		middleware.Metrics(),
	)

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "route_not_found", "Route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		httperr.Write(c, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	})

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	businessRepo := infraRepo.NewBusinessGormRepository(d.DB)
	enquiryRepo := infraRepo.NewEnquiryGormRepository(d.DB)
	adRepo := infraRepo.NewAdvertisementGormRepository(d.DB)
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(d.DB)

	auditLogger := audit.New(d.DB)

	authenticator := auth.NewAuthenticator(
		auth.NewIssuer(d.Config.JWTSecret, d.Config.TokenTTL),
		auth.NewSessionStore(d.Redis),
		userRepo,
	)

	// ======================================================
	// USE CASES
	// ======================================================
	recordPaymentUC := ucAd.NewRecordPayment(adRepo, d.Audit)

	authHandler := handlers.NewAuthHandler(
		ucAuth.NewSignUp(userRepo, authenticator, validators.NewDomainChecker(d.Config.VerifyEmailDomain)),
		ucAuth.NewSignIn(userRepo, authenticator),
		ucAuth.NewVerify(authenticator),
		ucAuth.NewSignOut(authenticator),
	)

	businessHandler := handlers.NewBusinessHandler(
		ucBusiness.NewCreateBusiness(businessRepo),
		ucBusiness.NewGetBusiness(businessRepo),
		ucBusiness.NewListBusinesses(businessRepo),
		ucBusiness.NewUpdateBusiness(businessRepo),
		ucBusiness.NewSendEnquiry(businessRepo, enquiryRepo),
	)

	adHandler := handlers.NewAdvertisementHandler(
		ucAd.NewCreateAdvertisement(adRepo),
		ucAd.NewListAdvertisements(adRepo),
		ucAd.NewUpdateAdvertisement(adRepo),
		ucAd.NewConfirmPayment(adRepo, d.Gateway, recordPaymentUC, d.Config.PaymentTimeout),
	)

	adminHandler := handlers.NewAdminHandler(
		ucAdmin.NewGetDashboard(userRepo, businessRepo, enquiryRepo, adRepo),
		ucAdmin.NewListings(businessRepo, enquiryRepo, adRepo, auditLogger),
		handlers.AdminModeration{
			ApproveBusiness:       ucAdmin.NewApproveBusiness(businessRepo, d.Audit),
			RejectBusiness:        ucAdmin.NewRejectBusiness(businessRepo, d.Audit),
			MarkEnquiryRead:       ucAdmin.NewMarkEnquiryRead(enquiryRepo, d.Audit),
			ActivateAdvertisement: ucAdmin.NewActivateAdvertisement(adRepo, d.Audit),
			RejectAdvertisement:   ucAdmin.NewRejectAdvertisement(adRepo, d.Audit),
		},
	)

	paymentHandler := handlers.NewPaymentHandler(
		ucPayment.NewCreatePaymentIntent(adRepo, d.Gateway, d.Config.PaymentCurrency, d.Config.PaymentTimeout),
		ucPayment.NewCreateSubscription(subscriptionRepo, d.Gateway, d.Config.PaymentCurrency, d.Config.PaymentTimeout),
		ucPayment.NewHandleWebhook(
			d.Gateway,
			recordPaymentUC,
			subscriptionRepo,
			d.Redis,
			d.Config.PaymentWebhookSecret,
			d.Config.PaymentTimeout,
			d.Log.Named("webhook"),
		),
	)

	requireUser := middleware.RequireUser(authenticator)
	optionalAuth := middleware.OptionalAuth(authenticator)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API
	// ======================================================
	r.POST("/auth",
		middleware.RateLimit(d.Redis, "auth", d.Config.RateLimitPerMinute),
		authHandler.Actions().Serve,
	)

	r.GET("/businesses", businessHandler.List)
	r.GET("/businesses/:id", optionalAuth, businessHandler.Get)
	r.POST("/businesses", optionalAuth, businessHandler.Actions().Serve)
	r.PUT("/businesses/:id", requireUser, businessHandler.Update)

	r.GET("/advertisements", adHandler.List)
	r.POST("/advertisements", requireUser, adHandler.Actions().Serve)
	r.PUT("/advertisements/:id", requireUser, adHandler.Update)

	me := r.Group("/me", requireUser)
	{
		me.GET("/businesses", businessHandler.Mine)
		me.GET("/advertisements", adHandler.Mine)
	}

	r.POST("/admin", middleware.RequireAdmin(authenticator), adminHandler.Actions().Serve)

	r.POST("/payments", optionalAuth, paymentHandler.Actions().Serve)
	r.POST("/payments/webhook", paymentHandler.Webhook)
}
