package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/ncov-charts/chart"
	"github.com/bitmark-inc/ncov-charts/geo"
	"github.com/bitmark-inc/ncov-charts/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	reader store.SnapshotReader

	// rendered pages
	chartDir string

	renderer *chart.Renderer
	buckets  int
}

// NewServer new instance of server
func NewServer(reader store.SnapshotReader, chartDir string, resolver geo.NameResolver, buckets int) *Server {
	if buckets <= 0 {
		buckets = chart.DefaultRanges
	}

	return &Server{
		reader:   reader,
		chartDir: chartDir,
		renderer: chart.New(chart.Config{Dir: chartDir, Buckets: buckets}, resolver, nil),
		buckets:  buckets,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	snapshotRoute := apiRoute.Group("/snapshots")
	{
		snapshotRoute.GET("/:date", s.snapshotStatus)
		snapshotRoute.GET("/:date/provinces/:name", s.provinceStatus)
	}

	chartRoute := r.Group("/charts")
	chartRoute.Use(ginrus("Chart"))
	chartRoute.Static("/", s.chartDir)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db when the reader is backed by one
	if p, ok := s.reader.(store.Pinger); ok {
		if shouldInterupt(p.Ping(), c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"buckets": s.buckets,
			"pages":   []string{chart.TendencyFile, chart.PieFile, chart.MapFile},
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
