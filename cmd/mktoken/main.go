package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	token := flag.String("token", "", "Token value to hash (default: generate a random one)")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	value := *token
	if value == "" {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
			os.Exit(1)
		}
		value = base64.RawURLEncoding.EncodeToString(raw)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(value), *cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]string{
			"token":      value,
			"token_hash": string(hash),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	fmt.Println("API Token Generated")
	fmt.Println("===================")
	fmt.Printf("Token: %s\n", value)
	fmt.Println()
	fmt.Println("Configure the server with:")
	fmt.Printf("  export API_TOKEN_HASH='%s'\n", string(hash))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/bookmarks\n", value)
}
