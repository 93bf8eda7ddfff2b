package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"prodboard/internal/database"
	"prodboard/internal/domain/attachment"
	"prodboard/internal/domain/calendar"
	"prodboard/internal/domain/client"
	"prodboard/internal/domain/finance"
	"prodboard/internal/domain/notification"
	"prodboard/internal/domain/project"
	"prodboard/internal/domain/task"
	"prodboard/internal/domain/team"
)

func main() {
	db, err := database.Connect("prodboard.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&team.Member{},
		&client.Client{},
		&project.Project{},
		&task.Task{},
		&calendar.Event{},
		&finance.Record{},
		&attachment.Attachment{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM attachments")
	db.Exec("DELETE FROM financial_records")
	db.Exec("DELETE FROM calendar_events")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM members")

	// ================== TEAM ==================
	log.Println("Creating team members...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := team.Member{
		Name:         "Maya Ortiz",
		Email:        "maya@prodboard.dev",
		PasswordHash: string(adminHash),
		Role:         team.RoleAdmin,
		Position:     "Studio Director",
	}
	db.Create(&admin)
	log.Println("Admin created: maya@prodboard.dev / admin123")

	members := []team.Member{}
	seedMembers := []struct {
		name, email, position string
		role                  team.Role
	}{
		{"Jonas Kvist", "jonas@prodboard.dev", "Producer", team.RoleProducer},
		{"Dana Reeve", "dana@prodboard.dev", "Lead Editor", team.RoleEditor},
		{"Priya Nair", "priya@prodboard.dev", "Motion Designer", team.RoleMember},
	}
	for _, sm := range seedMembers {
		hash, _ := bcrypt.GenerateFromPassword([]byte("team1234"), bcrypt.DefaultCost)
		m := team.Member{
			Name:         sm.name,
			Email:        sm.email,
			PasswordHash: string(hash),
			Role:         sm.role,
			Position:     sm.position,
		}
		db.Create(&m)
		members = append(members, m)
	}

	// ================== CLIENTS ==================
	log.Println("Creating clients...")

	clients := []client.Client{
		{Name: "Acme Studios", ContactName: "Rita Falk", Email: "rita@acmestudios.com", Status: client.StatusActive},
		{Name: "Northline Apparel", ContactName: "Tom Becker", Email: "tom@northline.co", Status: client.StatusActive},
		{Name: "Harbor & Co", ContactName: "Ava Lindqvist", Email: "ava@harborco.io", Status: client.StatusPaused},
	}
	for i := range clients {
		db.Create(&clients[i])
	}

	// ================== PROJECTS ==================
	log.Println("Creating projects...")

	start := time.Now().AddDate(0, -1, 0)
	due := time.Now().AddDate(0, 1, 0)
	projects := []project.Project{
		{
			ClientID:    clients[0].ID,
			Title:       "Brand Film 2026",
			Description: "90s hero film for the spring campaign",
			Status:      project.StatusProduction,
			Budget:      decimal.NewFromInt(42000),
			StartDate:   &start,
			DueDate:     &due,
		},
		{
			ClientID: clients[0].ID,
			Title:    "Social Cutdowns",
			Status:   project.StatusPlanning,
			Budget:   decimal.NewFromInt(8500),
		},
		{
			ClientID: clients[1].ID,
			Title:    "Lookbook Teaser",
			Status:   project.StatusPost,
			Budget:   decimal.NewFromInt(15000),
		},
	}
	for i := range projects {
		db.Create(&projects[i])
	}

	// ================== TASKS ==================
	log.Println("Creating tasks...")

	taskDue := time.Now().AddDate(0, 0, 7)
	tasks := []task.Task{
		{ProjectID: projects[0].ID, AssigneeID: &members[1].ID, Title: "Edit teaser cut", Status: task.StatusInProgress, Priority: task.PriorityHigh, DueDate: &taskDue},
		{ProjectID: projects[0].ID, AssigneeID: &members[2].ID, Title: "Title animations", Status: task.StatusTodo, Priority: task.PriorityMedium},
		{ProjectID: projects[2].ID, AssigneeID: &members[1].ID, Title: "Color grade", Status: task.StatusTodo, Priority: task.PriorityHigh},
	}
	for i := range tasks {
		db.Create(&tasks[i])
	}

	// ================== CALENDAR ==================
	log.Println("Creating calendar events...")

	shootStart := time.Now().AddDate(0, 0, 3)
	events := []calendar.Event{
		{
			Title:     "Studio shoot day",
			Kind:      calendar.KindShoot,
			ProjectID: &projects[0].ID,
			Location:  "Stage B",
			StartsAt:  shootStart,
			EndsAt:    shootStart.Add(9 * time.Hour),
			CreatedBy: &members[0].ID,
		},
		{
			Title:     "Lookbook delivery",
			Kind:      calendar.KindDeadline,
			ProjectID: &projects[2].ID,
			StartsAt:  due,
			EndsAt:    due,
			AllDay:    true,
		},
	}
	for i := range events {
		db.Create(&events[i])
	}

	// ================== FINANCE ==================
	log.Println("Creating financial records...")

	records := []finance.Record{
		{Kind: finance.KindIncome, Category: "production", Description: "Brand Film first invoice", Amount: decimal.NewFromInt(21000), ClientID: &clients[0].ID, ProjectID: &projects[0].ID, OccurredAt: time.Now().AddDate(0, 0, -20)},
		{Kind: finance.KindExpense, Category: "equipment", Description: "Lens rental", Amount: decimal.NewFromInt(1800), ProjectID: &projects[0].ID, OccurredAt: time.Now().AddDate(0, 0, -12)},
		{Kind: finance.KindExpense, Category: "crew", Description: "Freelance gaffer", Amount: decimal.NewFromInt(950), ProjectID: &projects[0].ID, OccurredAt: time.Now().AddDate(0, 0, -11)},
		{Kind: finance.KindIncome, Category: "post", Description: "Lookbook grading", Amount: decimal.NewFromInt(6000), ClientID: &clients[1].ID, ProjectID: &projects[2].ID, OccurredAt: time.Now().AddDate(0, 0, -4)},
	}
	for i := range records {
		db.Create(&records[i])
	}

	// ================== ATTACHMENTS ==================
	log.Println("Creating attachments...")

	uploadedBy := members[1].ID
	attachments := []attachment.Attachment{
		{
			ID:         uuid.New().String(),
			OwnerType:  attachment.OwnerClient,
			OwnerID:    clients[0].ID,
			FileName:   "master-agreement.pdf",
			FileSize:   482_113,
			MimeType:   "application/pdf",
			FilePath:   "client/2026/08/seed_master-agreement.pdf",
			StorageURL: "/static/uploads/client/2026/08/seed_master-agreement.pdf",
			UploadedBy: &uploadedBy,
			Tags:       []string{"contract"},
		},
		{
			ID:         uuid.New().String(),
			OwnerType:  attachment.OwnerProject,
			OwnerID:    projects[0].ID,
			FileName:   "storyboard-v3.png",
			FileSize:   2_310_552,
			MimeType:   "image/png",
			FilePath:   "project/2026/08/seed_storyboard-v3.png",
			StorageURL: "/static/uploads/project/2026/08/seed_storyboard-v3.png",
			UploadedBy: &uploadedBy,
		},
		{
			ID:         uuid.New().String(),
			OwnerType:  attachment.OwnerTask,
			OwnerID:    tasks[0].ID,
			FileName:   "teaser-notes.txt",
			FileSize:   1_204,
			MimeType:   "text/plain",
			FilePath:   "task/2026/08/seed_teaser-notes.txt",
			StorageURL: "/static/uploads/task/2026/08/seed_teaser-notes.txt",
			Tags:       []string{"notes", "draft"},
		},
	}
	for i := range attachments {
		db.Create(&attachments[i])
	}

	log.Println("Seed complete.")
	fmt.Printf("members=%d clients=%d projects=%d tasks=%d events=%d records=%d attachments=%d\n",
		len(members)+1, len(clients), len(projects), len(tasks), len(events), len(records), len(attachments))
}
