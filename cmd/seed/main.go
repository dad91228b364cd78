package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rentpark/internal/database"
	"rentpark/internal/domain"
	"rentpark/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rentpark.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM balances")

	ctx := context.Background()

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		LastName:      "Durand",
		FirstName:     "Claire",
		Email:         "admin@rentpark.io",
		PasswordHash:  string(adminHash),
		Role:          domain.RoleAdmin,
		AccountStatus: "active",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@rentpark.io / admin123")

	clients := []domain.User{}
	clientEmails := []string{"marc@gmail.com", "sofia@gmail.com", "karim@gmail.com"}
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := domain.User{
			LastName:      fmt.Sprintf("Client%d", i+1),
			FirstName:     "Demo",
			Email:         email,
			PasswordHash:  string(hash),
			Phone:         fmt.Sprintf("+33 6 12 34 56 %02d", i+10),
			Role:          domain.RoleClient,
			AccountStatus: "active",
		}
		db.Create(&client)
		clients = append(clients, client)
	}

	agentHash, _ := bcrypt.GenerateFromPassword([]byte("agent123"), bcrypt.DefaultCost)
	agent := domain.User{
		LastName:      "Moreau",
		FirstName:     "Lucas",
		Email:         "lucas@rentpark.io",
		PasswordHash:  string(agentHash),
		Role:          domain.RoleAgent,
		AccountStatus: "active",
	}
	db.Create(&agent)

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")

	units := []domain.Equipment{
		{Matricule: "EXC-001", Category: "excavator", Make: "Caterpillar", Model: "320", DailyPrice: 450, Status: domain.EquipmentAvailable},
		{Matricule: "EXC-002", Category: "excavator", Make: "Komatsu", Model: "PC210", DailyPrice: 420, Status: domain.EquipmentAvailable},
		{Matricule: "CRN-001", Category: "crane", Make: "Liebherr", Model: "LTM 1030", DailyPrice: 900, Status: domain.EquipmentAvailable},
		{Matricule: "GEN-001", Category: "generator", Make: "Atlas Copco", Model: "QAS 60", DailyPrice: 120, Status: domain.EquipmentAvailable},
		{Matricule: "GEN-002", Category: "generator", Make: "Atlas Copco", Model: "QAS 100", DailyPrice: 180, Status: domain.EquipmentMaintenance},
	}
	for i := range units {
		db.Create(&units[i])
	}

	// ================== BOOKINGS ==================
	// Go through the repository so equipment status and the balance
	// stay in sync with what the API would produce.
	log.Println("Creating bookings...")

	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	b1 := domain.Booking{
		ClientID:  clients[0].ID,
		AgentID:   &agent.ID,
		Matricule: "EXC-001",
		StartDate: today,
		EndDate:   today.AddDate(0, 0, 2),
		Status:    domain.BookingActive,
	}
	b1.Amount = float64(b1.Days()) * 450
	if err := bookingRepo.Create(ctx, &b1, b1.Amount); err != nil {
		log.Fatal("seed booking failed:", err)
	}

	b2 := domain.Booking{
		ClientID:  clients[1].ID,
		Matricule: "GEN-001",
		StartDate: today.AddDate(0, 0, 7),
		EndDate:   today.AddDate(0, 0, 9),
		Status:    domain.BookingActive,
	}
	b2.Amount = float64(b2.Days()) * 120
	if err := bookingRepo.Create(ctx, &b2, b2.Amount); err != nil {
		log.Fatal("seed booking failed:", err)
	}

	// ================== PAYMENTS ==================
	log.Println("Creating payments...")

	p1 := domain.Payment{
		BookingID: b1.ID,
		Amount:    b1.Amount,
		Method:    "card",
		Status:    domain.PaymentPaid,
	}
	if err := paymentRepo.Create(ctx, &p1); err != nil {
		log.Fatal("seed payment failed:", err)
	}

	log.Println("Seed complete.")
	log.Printf("  users:     %d", len(clients)+2)
	log.Printf("  equipment: %d", len(units))
	log.Printf("  bookings:  2, payments: 1")
}
