package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hotel-pms-backend/controllers"
	"hotel-pms-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the route tree.
func SetupRouter(
	rmc *controllers.RoomController,
	gc *controllers.GuestController,
	rc *controllers.ReservationController,
	pc *controllers.PaymentController,
	hc *controllers.HousekeepingController,
	bc *controllers.BillingController,
	akc *controllers.AccessKeyController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	summaryCache := gocache.New(30*time.Second, time.Minute)

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		// public, rate-limited: customers redeem onboarding keys here
		api.POST("/access-keys/redeem",
			middleware.RateLimiter(rate.Limit(1), 5),
			akc.RedeemAccessKey,
		)

		admin := api.Group("")
		admin.Use(middleware.RequireAuth())
		{
			rooms := admin.Group("/rooms")
			{
				rooms.GET("", rmc.GetRooms)
				rooms.GET("/:id", rmc.GetRoomByID)
				rooms.POST("", rmc.CreateRoom)
				rooms.PUT("/:id", rmc.UpdateRoom)
				rooms.PATCH("/:id", rmc.UpdateRoom)
				rooms.PATCH("/:id/status", rmc.SetRoomStatus)
			}

			guests := admin.Group("/guests")
			{
				guests.GET("", gc.GetGuests)
				guests.GET("/:id", gc.GetGuestByID)
				guests.POST("", gc.CreateGuest)
				guests.PUT("/:id", gc.UpdateGuest)
				guests.DELETE("/:id", gc.DeleteGuest)
			}

			reservations := admin.Group("/reservations")
			{
				reservations.GET("", rc.GetReservations)
				reservations.GET("/:id", rc.GetReservationByID)
				reservations.POST("", rc.CreateReservation)
				reservations.PUT("/:id", rc.UpdateReservation)
				reservations.POST("/:id/confirm", rc.ConfirmReservation)
				reservations.POST("/:id/cancel", rc.CancelReservation)
				reservations.POST("/:id/no-show", rc.MarkNoShow)
				reservations.POST("/:id/verify", rc.VerifyIdentity)
				reservations.POST("/:id/checkin", rc.CheckIn)
				reservations.POST("/:id/checkout", rc.CheckOut)
			}

			payments := admin.Group("/payments")
			{
				payments.GET("", pc.GetPayments)
				payments.GET("/:id", pc.GetPaymentByID)
				payments.POST("", pc.RecordPayment)
			}

			housekeeping := admin.Group("/housekeeping")
			{
				housekeeping.GET("", hc.GetTasks)
				housekeeping.GET("/:id", hc.GetTaskByID)
				housekeeping.POST("", hc.CreateTask)
				housekeeping.PUT("/:id", hc.UpdateTask)
				housekeeping.POST("/:id/advance", hc.AdvanceTask)
				housekeeping.DELETE("/:id", hc.DeleteTask)
			}

			billing := admin.Group("/billing")
			{
				billing.GET("/summary", middleware.Cache(summaryCache, 30*time.Second), bc.GetSummary)
				billing.GET("/transactions", bc.GetCashTransactions)
				billing.POST("/transactions", bc.CreateCashTransaction)
				billing.DELETE("/transactions/:id", bc.DeleteCashTransaction)
			}

			keys := admin.Group("/access-keys")
			{
				keys.GET("", akc.GetAccessKeys)
				keys.POST("", akc.GenerateAccessKey)
				keys.DELETE("/:id", akc.DeleteAccessKey)
			}

			settings := admin.Group("/settings")
			{
				settings.GET("/hotel", controllers.GetHotelSettings)
				settings.PUT("/hotel", controllers.UpdateHotelSettings)
			}
		}
	}

	return r
}
