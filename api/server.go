package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"sync"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wandermate/wandermate-api/external/geoinfo"
	"github.com/wandermate/wandermate-api/external/overpass"
	"github.com/wandermate/wandermate-api/logmodule"
	"github.com/wandermate/wandermate-api/nearby"
	"github.com/wandermate/wandermate-api/store"
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
	store      store.WanderCore
	mongoStore store.MongoStore

	// Place discovery
	finder *nearby.Finder

	// Per-account position resolvers
	resolvers sync.Map

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtKey *rsa.PrivateKey,
	geoClient geoinfo.GeoInfo) *Server {
	httpClient := &http.Client{
		Timeout: 5 * time.Minute,
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	overpassClient := overpass.New(
		viper.GetString("overpass.endpoint"),
		httpClient,
		viper.GetBool("overpass.synthetic_ratings"),
	)

	return &Server{
		store:         store.NewWanderStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		finder:        nearby.NewFinder(overpassClient, geoClient),
		jwtPrivateKey: jwtKey,
		httpClient:    httpClient,
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
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Geo-Position", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)
	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// api routes below apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)
	apiRoute.Use(s.recognizeAccountMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	placeRoute := apiRoute.Group("/places")
	{
		placeRoute.GET("", s.listPlaces)
		placeRoute.GET("/nearby", s.nearbyPlaces)
		placeRoute.GET("/nearest", s.nearestPlaces)
	}

	favoriteRoute := apiRoute.Group("/favorites")
	{
		favoriteRoute.GET("", s.listFavorites)
		favoriteRoute.POST("/:placeID", s.toggleFavorite)
	}

	reviewRoute := apiRoute.Group("/reviews")
	{
		reviewRoute.GET("", s.listReviews)
		reviewRoute.POST("", s.addReview)
		reviewRoute.PATCH("/:reviewID/like", s.toggleReviewLike)
		reviewRoute.DELETE("/:reviewID", s.deleteReview)
	}

	bookingRoute := apiRoute.Group("/bookings")
	{
		bookingRoute.GET("", s.listBookings)
		bookingRoute.POST("", s.addBooking)
		bookingRoute.DELETE("/:bookingID", s.cancelBooking)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/accounts/:accountNumber", s.adminAccountDetail)
	}

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
	// Ping databases
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
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
			"region": "Zambia",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
