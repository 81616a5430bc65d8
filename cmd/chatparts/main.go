package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/casualjim/chatparts/internal/cli"
)

func main() {
	cli.Execute()
}
