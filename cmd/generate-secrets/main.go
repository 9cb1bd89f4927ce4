package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gestionale-hr/personnel-backend/internal/utils"
)

func main() {
	adminPassword := flag.String("admin-password", "", "plaintext admin password to hash")
	viewerPassword := flag.String("viewer-password", "", "plaintext viewer password to hash")
	flag.Parse()

	secret, err := utils.GenerateSecret(32) // 256-bit
	if err != nil {
		log.Fatalf("Failed to generate JWT secret: %v", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Printf("JWT_SECRET=%s\n", secret)

	if *adminPassword != "" {
		hash, err := utils.HashPassword(*adminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		fmt.Printf("AUTH_ADMIN_PASSWORD_HASH=%s\n", hash)
	}
	if *viewerPassword != "" {
		hash, err := utils.HashPassword(*viewerPassword)
		if err != nil {
			log.Fatalf("Failed to hash viewer password: %v", err)
		}
		fmt.Printf("AUTH_VIEWER_PASSWORD_HASH=%s\n", hash)
	}

	fmt.Println()
	fmt.Println("Keep these values out of version control.")
}
