// Seeds or resets an admin dashboard account.
// cmd/create-admin/main.go
package main

import (
	"flag"
	"foundation-site-api/config"
	"foundation-site-api/models"
	"foundation-site-api/utils"
	"log"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	fname := flag.String("fname", "Admin", "first name")
	lname := flag.String("lname", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Both -email and -password are required")
	}
	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatal(msg)
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	if err := config.DB.AutoMigrate(&models.User{}); err != nil {
		log.Fatal("Failed to migrate users table:", err)
	}

	// Hash password
	hashed, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()

	// Update the account if it already exists
	var user models.User
	if err := config.DB.Where("email = ?", *email).First(&user).Error; err == nil {
		user.Password = hashed
		user.UpdateAt = &now
		if err := config.DB.Save(&user).Error; err != nil {
			log.Fatal("Failed to update admin account:", err)
		}
		log.Printf("Password reset for existing admin %s\n", *email)
		return
	}

	user = models.User{
		UserFname: *fname,
		UserLname: *lname,
		Email:     *email,
		Password:  hashed,
		CreateAt:  &now,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create admin account:", err)
	}

	log.Printf("Admin account created for %s\n", *email)
}
