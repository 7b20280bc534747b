package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/api"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/config"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/dynamo"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/repository"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/s3"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/service"
)

func main() {
	cfg := config.Load()

	api.SetupGlobalLogger("clinic-api")

	ctx := context.Background()

	db, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}
	log.Println("DynamoDB client initialized.")

	uploader, err := s3.NewFileUploader(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}
	log.Println("S3 uploader initialized.")

	userRepo := repository.NewDynamoUserRepository(db, cfg.UsersTable)
	blogRepo := repository.NewDynamoBlogRepository(db, cfg.BlogsTable)
	serviceRepo := repository.NewDynamoServiceRepository(db, cfg.ServicesTable)

	userService := service.NewUserService(userRepo)
	blogService := service.NewBlogService(blogRepo)
	catalogService := service.NewCatalogService(serviceRepo)

	userHandler := api.NewUserHandler(userService)
	authHandler := api.NewAuthHandler(userService)
	blogHandler := api.NewBlogHandler(blogService, uploader)
	serviceHandler := api.NewServiceHandler(catalogService, uploader)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "clinic-api"})
	})

	admin := api.AdminAuthMiddleware(cfg.AdminSecret)

	apiGroup := app.Group("/api")

	apiGroup.Post("/auth/login", authHandler.Login)

	users := apiGroup.Group("/users", admin)
	users.Post("/", userHandler.CreateUser)
	users.Get("/", userHandler.ListUsers)
	users.Delete("/:id", userHandler.DeleteUser)

	blogs := apiGroup.Group("/blogs")
	blogs.Get("/getAllBlogs", blogHandler.GetAllBlogs)
	blogs.Get("/getBlogbyId/:id", blogHandler.GetBlogByID)
	blogs.Post("/addBlog", admin, blogHandler.AddBlog)
	blogs.Put("/updateBlog/:id", admin, blogHandler.UpdateBlog)
	blogs.Put("/:id/toggle", admin, blogHandler.ToggleBlogStatus)
	blogs.Post("/uploadblogImage", admin, blogHandler.UploadBlogImage)

	services := apiGroup.Group("/services")
	services.Get("/getAllServices", serviceHandler.GetAllServices)
	services.Get("/getServiceById/:id", serviceHandler.GetServiceByID)
	services.Post("/addService", admin, serviceHandler.AddService)
	services.Put("/updateService/:id", admin, serviceHandler.UpdateService)
	services.Put("/:id/toggle", admin, serviceHandler.ToggleServiceStatus)
	services.Post("/uploadServiceImage", admin, serviceHandler.UploadServiceImage)

	log.Printf("Listening clinic-api on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
