package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Import this to execute the init function in docs.go which sets up the Swagger docs.
	_ "tubeline-api/docs"

	channelHTTP "tubeline-api/internal/channel/delivery/http"
	channelUC "tubeline-api/internal/channel/usecase"
	"tubeline-api/internal/middleware"
	subscriptionHTTP "tubeline-api/internal/subscription/delivery/http"
	subscriptionUC "tubeline-api/internal/subscription/usecase"
	userHTTP "tubeline-api/internal/user/delivery/http"
	userUC "tubeline-api/internal/user/usecase"
	videoHTTP "tubeline-api/internal/video/delivery/http"
	videoUC "tubeline-api/internal/video/usecase"

	channelPostgre "tubeline-api/internal/channel/repository/postgre"
	subscriptionPostgre "tubeline-api/internal/subscription/repository/postgre"
	userPostgre "tubeline-api/internal/user/repository/postgre"
	videoPostgre "tubeline-api/internal/video/repository/postgre"
	videoRedis "tubeline-api/internal/video/repository/redis"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	// Repositories
	channelRepo := channelPostgre.New(srv.l, srv.db)
	userRepo := userPostgre.New(srv.l, srv.db)
	videoRepo := videoPostgre.New(srv.l, srv.db)
	pendingStore := videoRedis.New(srv.l, srv.redis)
	subscriptionRepo := subscriptionPostgre.New(srv.l, srv.db)

	// Usecases
	channelUseCase := channelUC.New(srv.l, channelRepo)
	userUseCase := userUC.New(srv.l, userRepo, srv.encrypter)
	subscriptionUseCase := subscriptionUC.New(srv.l, subscriptionRepo, srv.redis)
	videoUseCase := videoUC.New(srv.l, videoUC.Config{
		Repo:        videoRepo,
		Pending:     pendingStore,
		ChannelRepo: channelRepo,
		UserRepo:    userRepo,
		WhatsApp:    srv.whatsapp,
		Encrypter:   srv.encrypter,
		Storage:     srv.minio,
	})

	// Handlers
	channelHandler := channelHTTP.New(srv.l, channelUseCase)
	userHandler := userHTTP.New(srv.l, userUseCase)
	subscriptionHandler := subscriptionHTTP.New(srv.l, subscriptionUseCase)
	videoHandler := videoHTTP.New(srv.l, videoUseCase)

	mw := middleware.New(srv.l, srv.jwtMgr, subscriptionUseCase, srv.whatsapp)

	srv.gin.Use(mw.Recovery())
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := srv.gin.Group(Api)
	api.Use(mw.Auth())
	api.Use(mw.RequireSubscription())

	channelHandler.MapRoutes(api.Group("/channels"))
	userHandler.MapRoutes(api.Group("/users"))
	videoHandler.MapRoutes(api.Group("/videos"))
	subscriptionHandler.MapRoutes(api.Group("/subscription"))

	return nil
}
