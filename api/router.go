// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"bucketlist/bucket-api/db"
	"bucketlist/bucket-api/internal/store"
	"bucketlist/bucket-api/pkg/middleware"
	"bucketlist/bucket-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Store  *store.Store
	Router *gin.Engine
	Argon  *security.ArgonHash
	Tokens *security.TokenIssuer
}

func NewRouter() (*API, error) {
	a := &API{}

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = conn
	a.Store = store.New(conn)

	makeLogger()

	a.Argon = security.New()
	a.Tokens = security.NewTokenIssuer(
		viper.GetString("jwt.secret"),
		viper.GetDuration("jwt.ttl"),
	)

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(a.Store.Users, a.Tokens)

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		main.HEAD("/validate", jwt, a.Validate)
	}

	users := main.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/users 		-> Registers a new user
		users.POST("", a.UserRegister)

		// POST /api/users/login 	-> Logs in a user and returns a JWT token
		users.POST("/login", a.UserLogin)

		// GET /api/users		-> Returns the caller's profile and newest buckets
		users.GET("", jwt, a.UserFetch)

		// DELETE /api/users		-> Deletes the caller's account with everything in it
		users.DELETE("", jwt, a.UserDelete)
	}

	buckets := main.Group("/buckets", jwt, middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/buckets		-> Creates a new bucket
		buckets.POST("", a.BucketCreate)

		// GET /api/buckets		-> Returns the caller's buckets in bulk
		buckets.GET("", a.BucketFetchBulk)

		// GET /api/buckets/search	-> Full-text search over the caller's buckets
		buckets.GET("/search", a.BucketSearch)

		// GET /api/buckets/:bucketID	-> Returns a single bucket
		buckets.GET("/:bucketID", a.BucketFetch)

		// PUT /api/buckets/:bucketID	-> Updates name/description/category
		buckets.PUT("/:bucketID", a.BucketUpdate)

		// DELETE /api/buckets/:bucketID -> Deletes a bucket and its activities
		buckets.DELETE("/:bucketID", a.BucketDelete)

		// POST /api/buckets/:bucketID/activities	-> Logs a new activity
		buckets.POST("/:bucketID/activities", a.ActivityCreate)

		// GET /api/buckets/:bucketID/activities	-> Lists a bucket's activities
		buckets.GET("/:bucketID/activities", a.ActivityFetchBulk)

		// PUT /api/buckets/:bucketID/activities/:activityID	-> Updates an activity
		buckets.PUT("/:bucketID/activities/:activityID", a.ActivityUpdate)

		// DELETE /api/buckets/:bucketID/activities/:activityID	-> Deletes an activity
		buckets.DELETE("/:bucketID/activities/:activityID", a.ActivityDelete)
	}

	activities := main.Group("/activities", jwt)
	{
		// GET /api/activities/search	-> Full-text search over the caller's activities
		activities.GET("/search", a.ActivitySearch)
	}

	categories := main.Group("/categories")
	{
		// GET /api/categories		-> Lists every known category
		categories.GET("", cacheFor(30), a.CategoryFetch)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
