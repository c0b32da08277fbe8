package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/tracreed/ebina/cmd"
	"github.com/tracreed/ebina/common/log"
)

func main() {
	defer log.Sync()

	if err := cmd.Run(); err != nil {
		log.Fatal(err)
	}
}
