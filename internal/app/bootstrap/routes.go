// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	blogfeature "github.com/dalemusser/clubhub/internal/app/features/blog"
	eventsfeature "github.com/dalemusser/clubhub/internal/app/features/events"
	healthfeature "github.com/dalemusser/clubhub/internal/app/features/health"
	joinfeature "github.com/dalemusser/clubhub/internal/app/features/join"
	projectsfeature "github.com/dalemusser/clubhub/internal/app/features/projects"
	servicesfeature "github.com/dalemusser/clubhub/internal/app/features/services"
	teamfeature "github.com/dalemusser/clubhub/internal/app/features/team"
	ticketsfeature "github.com/dalemusser/clubhub/internal/app/features/tickets"
	"github.com/dalemusser/clubhub/internal/app/system/media"
	"github.com/dalemusser/clubhub/internal/app/system/sheets"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. ClubHub builds the media store
// and sheet fetcher from app config, then mounts a feature router per
// resource. The ticket endpoints are registered flat on the root router
// because existing clients call /verify-ticket and /sheet-data directly.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.ClubHubMongoDatabase

	var mediaStore media.Store
	if appCfg.CloudinaryCloud != "" {
		cld, err := media.NewCloudinary(appCfg.CloudinaryCloud, appCfg.CloudinaryKey,
			appCfg.CloudinarySecret, appCfg.CloudinaryFolder)
		if err != nil {
			logger.Error("cloudinary init failed", zap.Error(err))
			return nil, err
		}
		mediaStore = cld
	} else {
		logger.Warn("cloudinary not configured, image uploads disabled")
		mediaStore = media.Disabled()
	}

	sheetSource := sheets.New(appCfg.SheetID, appCfg.SheetRange, appCfg.SheetAPIKey, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ClubHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	blogHandler := blogfeature.NewHandler(db, mediaStore, logger)
	r.Mount("/blog", blogfeature.Routes(blogHandler))

	projectsHandler := projectsfeature.NewHandler(db, mediaStore, logger)
	r.Mount("/projects", projectsfeature.Routes(projectsHandler))

	teamHandler := teamfeature.NewHandler(db, mediaStore, logger)
	r.Mount("/team-members", teamfeature.Routes(teamHandler))

	eventsHandler := eventsfeature.NewHandler(db, mediaStore, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler))

	servicesHandler := servicesfeature.NewHandler(db, logger)
	r.Mount("/our-service", servicesfeature.Routes(servicesHandler))

	joinHandler := joinfeature.NewHandler(db, logger)
	r.Mount("/join", joinfeature.Routes(joinHandler))

	ticketsHandler := ticketsfeature.NewHandler(db, sheetSource, logger)
	ticketsfeature.Register(r, ticketsHandler)

	return r, nil
}
