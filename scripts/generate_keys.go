//go:build ignore

// This script generates secure random API keys for tenants.
// Run with: go run scripts/generate_keys.go [tenant ...]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	fmt.Println("=== Translation Service API Key Generator ===")
	fmt.Println()

	tenants := os.Args[1:]
	if len(tenants) == 0 {
		tenants = []string{"tenant1"}
	}

	entries := make([]string, 0, len(tenants))
	for _, tenant := range tenants {
		apiKey, err := generateSecureKey(24)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key for %s: %v\n", tenant, err)
			os.Exit(1)
		}
		entries = append(entries, tenant+":"+apiKey)
	}

	fmt.Println("Add this to your .env file:")
	fmt.Println()
	fmt.Printf("API_KEYS=%s\n", strings.Join(entries, ","))
	fmt.Println()
	fmt.Println("Each tenant authenticates with the X-API-Key header.")
}
