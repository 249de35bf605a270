package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hammer-backend/auth"
	"hammer-backend/controllers"
	"hammer-backend/middleware"
	"hammer-backend/services"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
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

// SetupRouter wires every route with its gate chain. Authentication always
// comes first in a chain; the admin and ownership checks only ever run after
// it succeeded.
func SetupRouter(
	uc *controllers.UserController,
	pc *controllers.ProductController,
	bc *controllers.BookingController,
	rc *controllers.ReviewController,
	prc *controllers.ProfileController,
	pay *controllers.PaymentController,
	tokens *auth.TokenService,
	users *services.UserService,
	corsOrigins string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins(corsOrigins)
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

	authed := middleware.Gate(middleware.Authenticated(tokens))
	adminOnly := middleware.Gate(middleware.Authenticated(tokens), middleware.AdminOnly(users))
	ownVisitor := middleware.Gate(middleware.Authenticated(tokens), middleware.OwnsVisitor())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello HAMMER.BD SERVER")
	})

	user := r.Group("/user")
	{
		user.PUT("/admin/:email", adminOnly, uc.MakeAdmin)
		user.PUT("/:email", uc.UpsertUser)
		user.GET("", authed, uc.ListUsers)
	}

	r.GET("/admin/:email", uc.CheckAdmin)

	product := r.Group("/product")
	{
		product.GET("", pc.ListProducts)
		product.GET("/:id", pc.GetProduct)
	}

	booking := r.Group("/booking")
	{
		booking.GET("", ownVisitor, bc.ListBookings)
		booking.GET("/:id", authed, bc.GetBooking)
		booking.POST("", bc.CreateBooking)
		booking.PATCH("/:id", authed, bc.MarkPaid)
	}

	addProduct := r.Group("/addProduct", adminOnly)
	{
		addProduct.GET("", pc.ListProducts)
		addProduct.POST("", pc.CreateProduct)
		addProduct.DELETE("/:email", pc.DeleteProduct)
	}

	addReview := r.Group("/addReview")
	{
		addReview.GET("", rc.ListReviews)
		addReview.POST("", rc.CreateReview)
	}

	r.POST("/updateProfile", prc.UpdateProfile)
	r.POST("/create-payment-intent", authed, pay.CreatePaymentIntent)

	return r
}
