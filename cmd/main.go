package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/binahub/building-service/internal/app"
	"github.com/binahub/building-service/internal/config"
	"github.com/binahub/building-service/internal/controllers"
	"github.com/binahub/building-service/internal/middleware"
	"github.com/binahub/building-service/internal/repositories"
	"github.com/binahub/building-service/internal/routes"
	"github.com/binahub/building-service/internal/services"
	"github.com/binahub/building-service/internal/utils"
)

// Stale onboarding selections are purged hourly.
const onboardingCleanupCronSpec = "0 * * * *"

const onboardingCleanupTimeout = 30 * time.Second

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize building-service:", err)
	}
	defer application.Close()

	// Repositories
	buildingRepo := repositories.NewBuildingRepository(application.DB)
	profileRepo := repositories.NewUserProfileRepository(application.DB)
	apartmentRepo := repositories.NewApartmentRepository(application.DB)
	announcementRepo := repositories.NewAnnouncementRepository(application.DB)
	issueRepo := repositories.NewIssueRepository(application.DB)
	inviteRepo := repositories.NewInviteCodeRepository(application.DB)
	onboardingRepo := repositories.NewOnboardingRepository(application.DB)

	if cfg.SeedTestData {
		if err := app.SeedAllTestData(context.Background(), buildingRepo, profileRepo, apartmentRepo, announcementRepo, issueRepo, inviteRepo); err != nil {
			utils.Logger.Fatal("Failed to seed test data:", err)
		}
	}

	// Services
	mailer := services.NewMailer(cfg)
	buildingService := services.NewBuildingService(buildingRepo, profileRepo)
	profileService := services.NewProfileService(profileRepo)
	apartmentService := services.NewApartmentService(apartmentRepo, profileRepo)
	announcementService := services.NewAnnouncementService(announcementRepo, profileRepo)
	issueService := services.NewIssueService(issueRepo, apartmentRepo, profileRepo)
	inviteService := services.NewInviteService(inviteRepo, profileRepo, buildingRepo, mailer)
	onboardingService := services.NewOnboardingService(onboardingRepo)
	onboardingCleanupService := services.NewOnboardingCleanupService(onboardingRepo)

	// Controllers
	healthController := controllers.NewHealthController(application)
	onboardingController := controllers.NewOnboardingController(onboardingService)
	buildingController := controllers.NewBuildingController(buildingService)
	profileController := controllers.NewProfileController(profileService)
	apartmentController := controllers.NewApartmentController(apartmentService)
	announcementController := controllers.NewAnnouncementController(announcementService)
	issueController := controllers.NewIssueController(issueService)
	inviteController := controllers.NewInviteController(inviteService)

	// Router setup
	router := mux.NewRouter()

	// Public routes. The onboarding selection is session-cookie scoped and
	// happens before the caller has a token.
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.OnboardingSelection, onboardingController.SetSelectionHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.OnboardingSelection, onboardingController.GetSelectionHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.OnboardingSelection, onboardingController.ConsumeSelectionHandler).Methods(http.MethodDelete)

	// Secured routes for members
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))
	secured.HandleFunc(routes.ProfileLogin, profileController.RecordLoginHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Profile, profileController.GetProfileHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Profile, profileController.SaveProfileHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.Buildings, buildingController.CreateBuildingHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.BuildingMe, buildingController.GetCallerBuildingHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.BuildingMembers, buildingController.ListMembersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Invites, inviteController.CreateInviteCodeHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Invites, inviteController.ListInviteCodesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.InvitesRedeem, inviteController.RedeemInviteCodeHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Apartments, apartmentController.CreateApartmentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Apartments, apartmentController.ListApartmentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Announcements, announcementController.CreateAnnouncementHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Announcements, announcementController.ListAnnouncementsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Issues, issueController.ReportIssueHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Issues, issueController.ListIssuesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.IssueClose, issueController.CloseIssueHandler).Methods(http.MethodPost)

	// Cron job setup
	c := cron.New(cron.WithLocation(time.UTC))
	_, err = c.AddFunc(onboardingCleanupCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), onboardingCleanupTimeout)
		defer cancel()
		if err := onboardingCleanupService.CleanupStale(ctx); err != nil {
			utils.Logger.WithError(err).Error("Failed to purge stale onboarding selections")
		}
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule onboarding cleanup cron")
	}
	c.Start()
	utils.Logger.Info("Scheduled onboarding cleanup cron job")

	allowedOrigins := []string{cfg.AppUrl}
	if cfg.CORSAllowLocalhost {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000")
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("building-service failed to start:", err)
	}
}
