package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lennykioko/School-Mngmt-Backend/internal/config"
	"github.com/lennykioko/School-Mngmt-Backend/internal/graph"
	"github.com/lennykioko/School-Mngmt-Backend/internal/handlers"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
	"github.com/lennykioko/School-Mngmt-Backend/internal/services"
	"github.com/lennykioko/School-Mngmt-Backend/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var db *database.Database
	switch cfg.DBDriver {
	case "postgres":
		db, err = database.NewPostgres(cfg.DBDSN)
	default:
		db, err = database.NewSQLite(cfg.DBPath)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureAdminUser(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Failed to create admin user: %v", err)
	}

	userRepo := repository.NewUserRepository(db.DB)
	guardianRepo := repository.NewGuardianRepository(db.DB)
	teacherRepo := repository.NewTeacherRepository(db.DB)
	studentRepo := repository.NewStudentRepository(db.DB)
	subjectRepo := repository.NewSubjectRepository(db.DB)
	classRoomRepo := repository.NewClassRoomRepository(db.DB)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiration)

	schema, err := graph.New(graph.Deps{
		Users:      userRepo,
		Guardians:  guardianRepo,
		Teachers:   teacherRepo,
		Students:   studentRepo,
		Subjects:   subjectRepo,
		ClassRooms: classRoomRepo,
		Auth:       authService,
	})
	if err != nil {
		log.Fatalf("Failed to build graphql schema: %v", err)
	}

	graphqlHandler := handlers.NewGraphQLHandler(schema)

	router := gin.Default()
	router.Use(handlers.CORSMiddleware())
	router.Use(handlers.AuthMiddleware(authService))

	router.POST("/graphql", graphqlHandler.Handle)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Printf("School management API listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
