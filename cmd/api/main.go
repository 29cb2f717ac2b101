package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Rupamjb/Healiofyre/internal/appointment"
	"github.com/Rupamjb/Healiofyre/internal/auth"
	"github.com/Rupamjb/Healiofyre/internal/chatbot"
	"github.com/Rupamjb/Healiofyre/internal/db"
	"github.com/Rupamjb/Healiofyre/internal/doctor"
	"github.com/Rupamjb/Healiofyre/internal/llm"
	"github.com/Rupamjb/Healiofyre/internal/middleware"
	"github.com/Rupamjb/Healiofyre/internal/prescription"
	"github.com/Rupamjb/Healiofyre/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// GROQ_API_KEY is deliberately not required here: without it the
	// analysis endpoints degrade to their fallback responses.
	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	// Image archival is optional; without R2 config uploads are
	// analyzed but not archived.
	var imageStore prescription.Storage
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		imageStore = r2Client
	} else {
		log.Println("R2 not configured, prescription images will not be archived")
	}

	// ───────────────────────── LLM ─────────────────────────
	groqClient := llm.NewGroqClient()

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", authHandler.Me)
			protected.PUT("/profile", authHandler.UpdateProfile)
			protected.PUT("/password", authHandler.ChangePassword)
		}
	}

	// ───────────────────────── DOCTORS ─────────────────────────
	doctorRepo := doctor.NewPostgresRepository(pgDB)
	if err := doctor.Seed(doctorRepo); err != nil {
		log.Fatal("❌ Doctor seed failed:", err)
	}
	doctorService := doctor.NewService(doctorRepo)
	doctorHandler := doctor.NewHandler(doctorService)

	doctors := r.Group("/api/doctors")
	{
		doctors.GET("", doctorHandler.GetDoctors)
		doctors.GET("/specialty/:specialty", doctorHandler.GetDoctorsBySpecialty)
		doctors.GET("/:id", doctorHandler.GetDoctorByID)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/doctors/reseed", doctorHandler.Reseed)
	}

	// ───────────────────────── APPOINTMENTS ─────────────────────────
	appointmentRepo := appointment.NewPostgresRepository(pgDB)
	appointmentService := appointment.NewService(appointmentRepo, doctorService)
	appointmentHandler := appointment.NewHandler(appointmentService)

	appointments := r.Group("/api/appointments")
	appointments.Use(middleware.AuthMiddleware())
	{
		appointments.POST("", appointmentHandler.Book)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.GetByID)
		appointments.PATCH("/:id", appointmentHandler.UpdateStatus)
	}

	// ───────────────────────── PRESCRIPTIONS ─────────────────────────
	prescriptionRepo := prescription.NewPostgresRepository(pgDB)
	prescriptionService := prescription.NewService(
		prescription.NewExtractor(groqClient),
		prescription.NewAnalyzer(groqClient),
		prescriptionRepo,
	)
	prescriptionHandler := prescription.NewHandler(prescriptionService, groqClient, imageStore)

	prescriptions := r.Group("/api/prescriptions")
	prescriptions.Use(middleware.AuthMiddleware())
	{
		prescriptions.POST("/preprocess", prescriptionHandler.Preprocess)
		prescriptions.POST("/analyze", prescriptionHandler.Analyze)
		prescriptions.POST("/extract-text", prescriptionHandler.ExtractText)
		prescriptions.GET("/history", prescriptionHandler.History)
	}

	// ───────────────────────── CHATBOT ─────────────────────────
	chatbotService := chatbot.NewService(groqClient, prescriptionRepo)
	chatbotHandler := chatbot.NewHandler(chatbotService)

	r.POST("/api/chatbot", middleware.AuthMiddleware(), chatbotHandler.Chat)

	// ───────────────────────── HEALTH ─────────────────────────
	healthCheck := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	r.GET("/health", healthCheck)
	r.GET("/api/health", healthCheck)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
