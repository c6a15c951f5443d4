// Seeds the database with a small set of demo records.
//
//	go run ./scripts
package main

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lennykioko/School-Mngmt-Backend/internal/config"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
	"github.com/lennykioko/School-Mngmt-Backend/internal/repository"
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

	subjectRepo := repository.NewSubjectRepository(db.DB)
	teacherRepo := repository.NewTeacherRepository(db.DB)
	classRoomRepo := repository.NewClassRoomRepository(db.DB)
	guardianRepo := repository.NewGuardianRepository(db.DB)
	studentRepo := repository.NewStudentRepository(db.DB)

	math := models.Subject{Name: "Math"}
	english := models.Subject{Name: "English"}
	for _, subject := range []*models.Subject{&math, &english} {
		if err := subjectRepo.Create(subject); err != nil {
			log.Fatalf("Failed to create subject %q: %v", subject.Name, err)
		}
	}

	joined := time.Date(2019, 1, 7, 0, 0, 0, 0, time.UTC)
	idNumber := "T-1001"
	teacher := models.Teacher{
		FullName: "Alice Wanjiru",
		Phone:    "0700000001",
		Email:    "alice@school.local",
		IDNumber: &idNumber,
		Gender:   models.GenderFemale,
		JoinedAt: &joined,
		Active:   true,
	}
	if err := teacherRepo.Create(&teacher, []uuid.UUID{math.ID, english.ID}); err != nil {
		log.Fatalf("Failed to create teacher: %v", err)
	}

	classRoom := models.ClassRoom{Name: "5A", ClassTeacherID: teacher.ID}
	if err := classRoomRepo.Create(&classRoom); err != nil {
		log.Fatalf("Failed to create classroom: %v", err)
	}

	guardian := models.Guardian{
		FullName:   "Jane Kamau",
		Phone:      "0700000002",
		Profession: "Nurse",
		Active:     true,
	}
	if err := guardianRepo.Create(&guardian); err != nil {
		log.Fatalf("Failed to create guardian: %v", err)
	}

	regNo := "S-2024-001"
	student := models.Student{
		FullName:           "Brian Kamau",
		ClassRoomID:        classRoom.ID,
		RegistrationNumber: &regNo,
		Gender:             models.GenderMale,
		Active:             true,
	}
	if err := studentRepo.Create(&student, []uuid.UUID{guardian.ID}); err != nil {
		log.Fatalf("Failed to create student: %v", err)
	}

	log.Println("Seeded demo records")
}
