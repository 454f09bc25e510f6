package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rangehub/member_service/config"
	"github.com/rangehub/member_service/infra/queue"
	"github.com/rangehub/member_service/internal/api/rest/handlers"
	"github.com/rangehub/member_service/internal/api/rest/middleware"
	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/helper"
	"github.com/rangehub/member_service/internal/repository"
	"github.com/rangehub/member_service/internal/services"
	"github.com/rangehub/member_service/pkg/cloudinary"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	// one fixed id shared by every instance so only one runs the migration
	const migrateLockID int64 = 20260401

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Permission{},
		&domain.UserPermission{},
		&domain.Plan{},
		&domain.Member{},
		&domain.Address{},
		&domain.MemberDocument{},
		&domain.City{},
		&domain.AuditLog{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	seedPermissions(db)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cloudinary.NewCloudinaryUploader(cld)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	userPermRepo := repository.NewUserPermissionRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	planRepo := repository.NewPlanRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	cityRepo := repository.NewCityRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// ---------- Services ----------
	auditTrail := services.NewAuditTrail(auditRepo, kafkaProducer)
	userSvc := services.NewUserService(userRepo, userPermRepo, permissionRepo, auditTrail, authHelper)
	memberSvc := services.NewMemberService(memberRepo, addressRepo, planRepo, documentRepo, userRepo, up, auditTrail)
	planSvc := services.NewPlanService(planRepo, userRepo, auditTrail)
	catalogSvc := services.NewCatalogService(permissionRepo, cityRepo)

	// ---------- Handlers ----------
	userHandler := handlers.NewUserHandler(userSvc, authHelper)
	memberHandler := handlers.NewMemberHandler(memberSvc)
	planHandler := handlers.NewPlanHandler(planSvc)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	userHandler.SetupPublicRoutes(api)

	api.Use(middleware.AuthMiddleware(authHelper))
	userHandler.SetupRoutes(api)
	memberHandler.SetupRoutes(api)
	planHandler.SetupRoutes(api)
	catalogHandler.SetupRoutes(api)

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

func seedPermissions(db *gorm.DB) {
	seeds := []domain.Permission{
		{Code: "members.read", Name: "List and view members"},
		{Code: "members.write", Name: "Create and update members"},
		{Code: "plans.read", Name: "List and view plans"},
		{Code: "plans.write", Name: "Create and update plans"},
		{Code: "users.read", Name: "List and view users"},
		{Code: "users.write", Name: "Create and update users"},
	}

	for _, seed := range seeds {
		var p domain.Permission
		err := db.Where("code = ?", seed.Code).First(&p).Error
		if err == gorm.ErrRecordNotFound {
			_ = db.Create(&domain.Permission{
				Code: seed.Code,
				Name: seed.Name,
			}).Error
		}
	}
}
