// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/eventrix/eventrix-backend/internal/cache"
	"github.com/eventrix/eventrix-backend/internal/config"
	"github.com/eventrix/eventrix-backend/internal/handlers"
	"github.com/eventrix/eventrix-backend/internal/middleware"
	"github.com/eventrix/eventrix-backend/internal/repository"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

// Initialize wires repositories, services and handlers into a gin engine.
// viewCache holds facet views; denylist holds revoked token ids.
func Initialize(db *gorm.DB, viewCache cache.Cache, denylist cache.Denylist, limiters *middleware.Limiters, cfg *config.Config) *gin.Engine {
	// Repositories
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	sidebarRepo := repository.NewSidebarRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	vendorRepo := repository.NewVendorRepo(db)
	enquiryRepo := repository.NewEnquiryRepo(db)
	userRepo := repository.NewUserRepo(db)
	blogRepo := repository.NewBlogRepo(db)

	// Services
	sidebarService := services.NewSidebarService(sidebarRepo, categoryRepo, viewCache, cfg.Cache.SidebarTTL)
	categoryService := services.NewCategoryService(categoryRepo, sidebarService)
	productService := services.NewProductService(productRepo, categoryRepo, vendorRepo)
	listingService := services.NewListingService(categoryRepo, productRepo, reviewRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	vendorService := services.NewVendorService(vendorRepo)
	enquiryService := services.NewEnquiryService(enquiryRepo)
	blogService := services.NewBlogService(blogRepo)
	authService := services.NewAuthService(userRepo, denylist, cfg.JWT.AccessTokenTTL)

	// Handlers
	sidebarHandler := handlers.NewSidebarHandler(sidebarService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	listingHandler := handlers.NewListingHandler(listingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	authHandler := handlers.NewAuthHandler(authService)
	blogHandler := handlers.NewBlogHandler(blogService)

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	utils.SetJWTIssuer(cfg.JWT.Issuer)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Session(denylist))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(limiters.General.Middleware())
	r.Use(middleware.AuditLogMiddleware(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	admin := []gin.HandlerFunc{middleware.AuthRequired(), middleware.AdminRequired()}

	// Authentication
	auth := api.Group("/auth")
	auth.Use(limiters.Auth.Middleware())
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}

	// Facet configuration
	api.POST("/sidebar", sidebarHandler.SaveSidebar)
	api.GET("/sidebar/:categoryId", sidebarHandler.GetSidebar)
	api.DELETE("/sidebar/:categoryId", sidebarHandler.DeleteSidebar)

	// Categories
	api.POST("/add-category", append(admin, categoryHandler.CreateCategory)...)
	api.GET("/all-categories", categoryHandler.GetCategories)
	api.GET("/top-categories", categoryHandler.GetTopCategories)
	api.GET("/single-category/:id", categoryHandler.GetCategory)
	api.PUT("/update-category/:id", append(admin, categoryHandler.UpdateCategory)...)
	api.DELETE("/delete-category/:id", append(admin, categoryHandler.DeleteCategory)...)

	// Products and listings
	api.POST("/add-product", append(admin, productHandler.CreateProduct)...)
	api.GET("/all-added-products", productHandler.GetProducts)
	api.GET("/products/:productId", productHandler.GetProduct)
	api.GET("/single-product/:productId", productHandler.GetProduct)
	api.PUT("/update-product/:id", append(admin, productHandler.UpdateProduct)...)
	api.DELETE("/delete-product/:id", append(admin, productHandler.DeleteProduct)...)
	api.GET("/products/category/:categoryId", listingHandler.GetCategoryProducts)
	api.POST("/products/category/:categoryId/filter", listingHandler.FilterCategoryProducts)

	// Reviews
	api.POST("/reviews", reviewHandler.CreateReview)
	api.GET("/allreviews", reviewHandler.GetReviews)

	// Vendors and outlets
	api.POST("/vendors", append(admin, vendorHandler.CreateVendor)...)
	api.GET("/vendors", vendorHandler.GetVendors)
	api.GET("/vendors/:id", vendorHandler.GetVendor)
	api.POST("/outlets", append(admin, vendorHandler.CreateOutlet)...)
	api.GET("/outlets", vendorHandler.GetOutlets)

	// Enquiries
	api.POST("/submit-enquiry", enquiryHandler.SubmitEnquiry)
	api.POST("/reply-enquiry/:id", enquiryHandler.ReplyEnquiry)

	// Blogs
	api.POST("/add-blog", append(admin, blogHandler.CreateBlog)...)
	api.GET("/all-blogs", blogHandler.GetBlogs)
	api.GET("/single-blogs/:id", blogHandler.GetBlog)
	api.DELETE("/blogs/:id", append(admin, blogHandler.DeleteBlog)...)

	return r
}
