package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/hackkaliboi/DXN/internal/gateway"
	"github.com/hackkaliboi/DXN/internal/middleware"
	"github.com/hackkaliboi/DXN/internal/modules/auth"
	"github.com/hackkaliboi/DXN/internal/modules/content/archive"
	"github.com/hackkaliboi/DXN/internal/modules/content/author"
	"github.com/hackkaliboi/DXN/internal/modules/content/category"
	"github.com/hackkaliboi/DXN/internal/modules/content/comment"
	"github.com/hackkaliboi/DXN/internal/modules/content/interaction"
	"github.com/hackkaliboi/DXN/internal/modules/content/post"
	"github.com/hackkaliboi/DXN/internal/modules/stats/dashboard"
	"github.com/hackkaliboi/DXN/internal/modules/storage/image"
)

const httpCacheTTL = 15 * time.Second

// registerRoutes mounts every module under /api/v1.
func (a *App) registerRoutes() {
	rdb := a.rdb.Raw()

	api := a.router.Group("/api/v1")
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.RateLimit(rdb))
	api.Use(middleware.Idempotence(rdb))
	api.Use(middleware.HTTPCache(rdb, middleware.HTTPCacheOptions{
		TTL: httpCacheTTL,
		SkipPaths: []string{
			"/api/v1/auth/*",
			"/api/v1/admin/*",
			"*/interactions",
			"*/comments",
		},
	}))

	store := gateway.NewStore(a.db)
	authMW := middleware.Auth()

	notifier := auth.NewNotifier()
	authHandler := auth.NewHandler(auth.NewService(a.db, notifier))
	authHandler.RegisterRoutes(api, authMW)

	postHandler := post.NewHandler(post.NewService(a.db, store), a.cfg.SiteURL)
	postHandler.RegisterRoutes(api, authMW, middleware.RequireAdmin(a.db))

	archive.NewHandler(store).RegisterRoutes(api)
	author.NewHandler(author.NewService(a.db)).RegisterRoutes(api)

	category.NewHandler(category.NewService(a.db, store)).
		RegisterRoutes(api, authMW, middleware.RequireAdmin(a.db))

	interaction.NewHandler(interaction.NewService(store, a.cfg.SiteURL)).RegisterRoutes(api)
	comment.NewHandler(comment.NewLoader(store)).RegisterRoutes(api)

	dashboard.NewHandler(dashboard.NewService(a.db)).
		RegisterRoutes(api, authMW, middleware.RequireAdmin(a.db))

	if imgSvc, err := image.NewService(a.cfg.S3); err != nil {
		a.logger.Warn("image uploads disabled", zap.Error(err))
	} else {
		image.NewHandler(imgSvc).RegisterRoutes(api, authMW, middleware.RequireAdmin(a.db))
	}
}
