package api

import (
	"net/http"

	analyticsHandler "phishsim-server/internal/analytics/handler"
	authHandler "phishsim-server/internal/auth/handler"
	"phishsim-server/internal/authz"
	campaignHandler "phishsim-server/internal/campaign/handler"
	campaignProcessor "phishsim-server/internal/campaign/processor"
	collectedDataHandler "phishsim-server/internal/collecteddata/handler"
	companiesHandler "phishsim-server/internal/companies/handler"
	contactsHandler "phishsim-server/internal/contacts/handler"
	emailServicesHandler "phishsim-server/internal/emailservices/handler"
	landingPagesHandler "phishsim-server/internal/landingpages/handler"
	recipientsHandler "phishsim-server/internal/recipients/handler"
	"phishsim-server/internal/store"
	templatesHandler "phishsim-server/internal/templates/handler"
	trackingHandler "phishsim-server/internal/tracking/handler"
	usersHandler "phishsim-server/internal/users/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every route handler the API exposes
type Handlers struct {
	Auth          authHandler.Handler
	Companies     companiesHandler.Handler
	Users         usersHandler.Handler
	Templates     templatesHandler.Handler
	LandingPages  landingPagesHandler.Handler
	EmailServices emailServicesHandler.Handler
	Contacts      contactsHandler.Handler
	Campaigns     campaignHandler.Handler
	Recipients    recipientsHandler.Handler
	Tracking      trackingHandler.Handler
	CollectedData collectedDataHandler.Handler
	Analytics     analyticsHandler.Handler
}

// Middleware holds the request guards applied to route groups
type Middleware struct {
	Session           gin.HandlerFunc
	AuthRateLimit     gin.HandlerFunc
	TrackingRateLimit gin.HandlerFunc
}

type API struct {
	router     *gin.RouterGroup
	handlers   Handlers
	middleware Middleware
}

func New(router *gin.RouterGroup, handlers Handlers, middleware Middleware) API {
	return API{
		router:     router,
		handlers:   handlers,
		middleware: middleware,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/register", a.middleware.AuthRateLimit, a.handlers.Auth.HandleRegister)
		authGroup.POST("/login", a.middleware.AuthRateLimit, a.handlers.Auth.HandleLogin)
		authGroup.GET("/me", a.middleware.Session, a.handlers.Auth.HandleMe)
		apiGroup.GET("/logout", a.handlers.Auth.HandleLogout)
	}

	// Embedded in outbound email and landing page HTML; no session
	trackGroup := apiGroup.Group("/track")
	{
		trackGroup.GET("/open/:trackingId", a.handlers.Tracking.HandleOpen)
		trackGroup.GET("/click/:trackingId", a.handlers.Tracking.HandleClick)
		trackGroup.POST("/submit/:trackingId", a.middleware.TrackingRateLimit, a.handlers.Tracking.HandleSubmit)
	}

	protected := apiGroup.Group("", a.middleware.Session)
	a.registerAdminRoutes(protected)
	a.registerContentRoutes(protected)
	a.registerAudienceRoutes(protected)
	a.registerCampaignRoutes(protected)
	a.registerReportingRoutes(protected)
}

func (a *API) registerAdminRoutes(protected *gin.RouterGroup) {
	companies := protected.Group("/companies", authz.RequireRoles(store.UserRoleSuperadmin))
	{
		companies.GET("", a.handlers.Companies.HandleListCompanies)
		companies.POST("", a.handlers.Companies.HandleCreateCompany)
		companies.GET("/:id", a.handlers.Companies.HandleGetCompany)
		companies.PATCH("/:id", a.handlers.Companies.HandleUpdateCompany)
		companies.DELETE("/:id", a.handlers.Companies.HandleDeleteCompany)
	}

	users := protected.Group("/users")
	{
		users.POST("/:id/change-password", a.handlers.Users.HandleChangePassword)

		adminOnly := users.Group("", authz.RequireRoles(store.UserRoleAdmin, store.UserRoleSuperadmin))
		adminOnly.GET("", a.handlers.Users.HandleListUsers)
		adminOnly.POST("", a.handlers.Users.HandleCreateUser)
		adminOnly.GET("/:id", a.handlers.Users.HandleGetUser)
		adminOnly.PATCH("/:id", a.handlers.Users.HandleUpdateUser)
		adminOnly.DELETE("/:id", a.handlers.Users.HandleDeleteUser)
	}
}

func (a *API) registerContentRoutes(protected *gin.RouterGroup) {
	templates := protected.Group("/templates")
	{
		templates.GET("", a.handlers.Templates.HandleListTemplates)
		templates.POST("", a.handlers.Templates.HandleCreateTemplate)
		templates.GET("/:id", a.handlers.Templates.HandleGetTemplate)
		templates.PATCH("/:id", a.handlers.Templates.HandleUpdateTemplate)
		templates.DELETE("/:id", a.handlers.Templates.HandleDeleteTemplate)
	}

	landingPages := protected.Group("/landing-pages")
	{
		landingPages.GET("", a.handlers.LandingPages.HandleListLandingPages)
		landingPages.POST("", a.handlers.LandingPages.HandleCreateLandingPage)
		landingPages.GET("/:id", a.handlers.LandingPages.HandleGetLandingPage)
		landingPages.PATCH("/:id", a.handlers.LandingPages.HandleUpdateLandingPage)
		landingPages.DELETE("/:id", a.handlers.LandingPages.HandleDeleteLandingPage)
	}

	emailServices := protected.Group("/email-services")
	{
		emailServices.GET("", a.handlers.EmailServices.HandleListEmailServices)
		emailServices.POST("", a.handlers.EmailServices.HandleCreateEmailService)
		emailServices.GET("/:id", a.handlers.EmailServices.HandleGetEmailService)
		emailServices.PATCH("/:id", a.handlers.EmailServices.HandleUpdateEmailService)
		emailServices.DELETE("/:id", a.handlers.EmailServices.HandleDeleteEmailService)
		emailServices.POST("/:id/test", a.handlers.EmailServices.HandleTestEmailService)
	}
}

func (a *API) registerAudienceRoutes(protected *gin.RouterGroup) {
	groups := protected.Group("/contact-groups")
	{
		groups.GET("", a.handlers.Contacts.HandleListGroups)
		groups.POST("", a.handlers.Contacts.HandleCreateGroup)
		groups.GET("/:id", a.handlers.Contacts.HandleGetGroup)
		groups.PATCH("/:id", a.handlers.Contacts.HandleUpdateGroup)
		groups.DELETE("/:id", a.handlers.Contacts.HandleDeleteGroup)
	}

	contacts := protected.Group("/contacts")
	{
		contacts.GET("", a.handlers.Contacts.HandleListContacts)
		contacts.POST("", a.handlers.Contacts.HandleCreateContact)
		contacts.POST("/bulk", a.handlers.Contacts.HandleBulkCreateContacts)
		contacts.POST("/import", a.handlers.Contacts.HandleImportContacts)
		contacts.GET("/export", a.handlers.Contacts.HandleExportContacts)
		contacts.GET("/:id", a.handlers.Contacts.HandleGetContact)
		contacts.PATCH("/:id", a.handlers.Contacts.HandleUpdateContact)
		contacts.DELETE("/:id", a.handlers.Contacts.HandleDeleteContact)
	}
}

func (a *API) registerCampaignRoutes(protected *gin.RouterGroup) {
	campaigns := protected.Group("/campaigns")
	{
		campaigns.GET("", a.handlers.Campaigns.HandleListCampaigns)
		campaigns.POST("", a.handlers.Campaigns.HandleCreateCampaign)
		campaigns.GET("/:id", a.handlers.Campaigns.HandleGetCampaign)
		campaigns.PATCH("/:id", a.handlers.Campaigns.HandleUpdateCampaign)
		campaigns.DELETE("/:id", a.handlers.Campaigns.HandleDeleteCampaign)
		campaigns.GET("/:id/events", a.handlers.Campaigns.HandleListEvents)
		campaigns.POST("/:id/launch", a.handlers.Campaigns.HandleTransition(campaignProcessor.ActionLaunch))
		campaigns.POST("/:id/schedule", a.handlers.Campaigns.HandleTransition(campaignProcessor.ActionSchedule))
		campaigns.POST("/:id/pause", a.handlers.Campaigns.HandleTransition(campaignProcessor.ActionPause))
		campaigns.POST("/:id/resume", a.handlers.Campaigns.HandleTransition(campaignProcessor.ActionResume))
		campaigns.POST("/:id/complete", a.handlers.Campaigns.HandleTransition(campaignProcessor.ActionComplete))
		campaigns.POST("/:id/cancel", a.handlers.Campaigns.HandleTransition(campaignProcessor.ActionCancel))
	}

	// :id is the campaign on the list route and the recipient elsewhere
	recipients := protected.Group("/campaign-recipients")
	{
		recipients.GET("/:id", a.handlers.Recipients.HandleListRecipients)
		recipients.POST("", a.handlers.Recipients.HandleAddRecipients)
		recipients.POST("/import", a.handlers.Recipients.HandleImportRecipients)
		recipients.DELETE("/:id", a.handlers.Recipients.HandleRemoveRecipient)
		recipients.POST("/:id/mark-sent", a.handlers.Recipients.HandleMarkSent)
	}
}

func (a *API) registerReportingRoutes(protected *gin.RouterGroup) {
	collected := protected.Group("/collected-data")
	{
		collected.GET("", a.handlers.CollectedData.HandleList)
		collected.GET("/:id", a.handlers.CollectedData.HandleGet)
		collected.PATCH("/:id/status", a.handlers.CollectedData.HandleUpdateStatus)
		collected.DELETE("/:id", a.handlers.CollectedData.HandleDelete)
	}

	protected.GET("/stats", a.handlers.Analytics.HandleDashboard)
	protected.GET("/stats/campaigns/:id", a.handlers.Analytics.HandleCampaignFunnel)

	admin := protected.Group("/admin", authz.RequireRoles(store.UserRoleSuperadmin))
	{
		admin.GET("/stats", a.handlers.Analytics.HandlePlatformStats)
		admin.GET("/users", a.handlers.Analytics.HandleListUsers)
		admin.GET("/exports/companies", a.handlers.Analytics.HandleExportCompanies)
		admin.GET("/exports/users", a.handlers.Analytics.HandleExportUsers)
		admin.GET("/exports/campaigns", a.handlers.Analytics.HandleExportCampaigns)
		admin.GET("/exports/collected-data", a.handlers.Analytics.HandleExportCollectedData)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
