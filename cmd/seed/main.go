package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskhub/internal/config"
	"taskhub/internal/db"
	"taskhub/internal/model"
	"taskhub/internal/repository"
)

const (
	demoEmail    = "demo@taskhub.local"
	demoPassword = "demo-password"
)

var demoTasks = []model.Task{
	{Title: "Buy groceries", Description: "Milk, eggs, bread", Status: model.TaskStatusPending, Priority: model.TaskPriorityMedium},
	{Title: "Write project proposal", Description: "First draft due Friday", Status: model.TaskStatusInProgress, Priority: model.TaskPriorityHigh},
	{Title: "Book dentist appointment", Status: model.TaskStatusPending, Priority: model.TaskPriorityLow},
	{Title: "Review pull requests", Description: "Backend repo", Status: model.TaskStatusCompleted, Priority: model.TaskPriorityMedium},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Acquire(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == gorm.ErrRecordNotFound {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user = &model.User{
			Name:         "Demo User",
			Email:        demoEmail,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create demo user: %v", err)
		}
		log.Printf("Created demo user %s", demoEmail)
	} else if err != nil {
		log.Fatalf("find demo user: %v", err)
	} else {
		log.Printf("Demo user %s already exists", demoEmail)
	}

	existing, err := taskRepo.FindByOwner(ctx, user.ID, model.TaskFilter{})
	if err != nil {
		log.Fatalf("list demo tasks: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d tasks, skipping", len(existing))
		return
	}

	for _, t := range demoTasks {
		task := t
		task.OwnerID = user.ID
		if err := taskRepo.Create(ctx, &task); err != nil {
			log.Fatalf("create task %q: %v", task.Title, err)
		}
	}
	log.Printf("Seeded %d tasks for %s", len(demoTasks), demoEmail)
}
