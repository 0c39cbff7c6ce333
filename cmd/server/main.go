package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/awarelabs/aware/internal/analysis"
	"github.com/awarelabs/aware/internal/api"
	"github.com/awarelabs/aware/internal/auth"
	"github.com/awarelabs/aware/internal/nlp"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var tagger nlp.Tagger = nlp.NewProseTagger()
	var segmenter nlp.Segmenter = nlp.NewProseSegmenter()
	if os.Getenv("AWARE_DISABLE_POS") != "" {
		tagger = nlp.RegexTagger{}
		segmenter = nlp.RegexSegmenter{}
	}
	analyzer := analysis.NewAnalyzer(tagger, segmenter)

	var authService *auth.Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret != "" {
		clientSecret := os.Getenv("CLIENT_SECRET")
		if clientSecret == "" {
			log.Fatal("CLIENT_SECRET is required when JWT_SECRET is set")
		}
		hash, err := auth.HashSecret(clientSecret)
		if err != nil {
			log.Fatalf("Failed to hash client secret: %v", err)
		}
		clientID := os.Getenv("CLIENT_ID")
		if clientID == "" {
			clientID = "aware"
		}
		authService = auth.NewService(auth.Config{
			SecretKey:        jwtSecret,
			TokenDuration:    24 * time.Hour,
			ClientID:         clientID,
			ClientSecretHash: hash,
		})
	} else {
		log.Println("JWT_SECRET not set; authentication disabled")
	}

	server := api.NewServer(api.ServerConfig{
		Analyzer: analyzer,
		Auth:     authService,
	})

	fmt.Printf("Starting aware server on port %s\n", port)
	if err := server.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
