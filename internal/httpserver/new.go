package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tubeline-api/pkg/encrypter"
	pkgLog "tubeline-api/pkg/log"
	pkgMinio "tubeline-api/pkg/minio"
	pkgRedis "tubeline-api/pkg/redis"
	"tubeline-api/pkg/scope"
	"tubeline-api/pkg/whatsapp"
)

// HTTPServer holds the wired dependencies of the API process. New only
// validates and wires; Run (in httpserver.go) starts serving.
type HTTPServer struct {
	gin  *gin.Engine
	l    pkgLog.Logger
	port int
	mode string

	db        *gorm.DB
	redis     pkgRedis.IRedis
	minio     pkgMinio.IMinIO
	jwtMgr    scope.Manager
	whatsapp  whatsapp.IWhatsApp
	encrypter encrypter.Encrypter
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	DB         *gorm.DB
	Redis      pkgRedis.IRedis
	MinIO      pkgMinio.IMinIO
	JWTManager scope.Manager
	WhatsApp   whatsapp.IWhatsApp
	Encrypter  encrypter.Encrypter
}

// New creates a new HTTPServer instance with the provided configuration.
// It does not start any goroutines; use Run to start serving.
func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:         l,
		port:      cfg.Port,
		mode:      cfg.Mode,
		db:        cfg.DB,
		redis:     cfg.Redis,
		minio:     cfg.MinIO,
		jwtMgr:    cfg.JWTManager,
		whatsapp:  cfg.WhatsApp,
		encrypter: cfg.Encrypter,
	}
	if err := srv.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)
	srv.gin = gin.New()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.port <= 0 {
		return errors.New("httpserver: port is required")
	}
	if srv.db == nil {
		return errors.New("httpserver: db is required")
	}
	if srv.redis == nil {
		return errors.New("httpserver: redis is required")
	}
	if srv.minio == nil {
		return errors.New("httpserver: minio is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("httpserver: jwt manager is required")
	}
	if srv.whatsapp == nil {
		return errors.New("httpserver: whatsapp client is required")
	}
	if srv.encrypter == nil {
		return errors.New("httpserver: encrypter is required")
	}
	return nil
}
