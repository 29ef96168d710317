package api

import (
	"github.com/Mondoloni/Billed/docs"
	"github.com/Mondoloni/Billed/internal/api/handlers"
	"github.com/Mondoloni/Billed/pkg/auth"
	"github.com/Mondoloni/Billed/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	billHandler *handlers.BillHandler,
	jwtManager *auth.JWTManager,
	uploadDir string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the swagger spec through its init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Stored receipt images, linked from the bill list's proof modal.
	app.Static("/uploads", uploadDir)

	// Auth routes (public)
	user := app.Group("/user")
	authRoutes := user.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	bills := protected.Group("/bills")
	bills.Get("", billHandler.ListBills)
	bills.Post("", billHandler.SubmitBill)
	bills.Post("/upload", billHandler.UploadReceipt)
	bills.Put("/:id", billHandler.UpdateBill)
	bills.Put("/:id/review", middleware.RequireAdmin(appLogger), billHandler.ReviewBill)

	return app
}
