// tokengen mints a signed access token for a user id and role. Accounts have
// no registration flow; operators hand tokens out through the chat platform.
package main

import (
	"flag"
	"fmt"
	"os"

	"keyvend/internal/pkg/config"
	"keyvend/internal/pkg/jwt"

	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "", "user id to embed in the token")
	role := flag.String("role", jwt.RoleMember, "role: member or admin")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -user <id> [-role member|admin]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	token, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.TokenDuration).GenerateToken(*userID, *role)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
