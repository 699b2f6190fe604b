// Command token prints a bearer token for a user id, for local testing
// against the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/pkg/jwt"
	"github.com/sirupsen/logrus"
)

func main() {
	userID := flag.Int64("user", 0, "user id to issue the token for")
	flag.Parse()

	if *userID <= 0 {
		logrus.Fatal("-user must be a positive user id")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	token, err := jwt.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour).GenerateToken(*userID)
	if err != nil {
		logrus.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
