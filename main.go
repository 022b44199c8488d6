package main

import (
	"fmt"
	"os"

	"github.com/asccclass/jadualbot/cmd"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load("envfile"); err != nil && !os.IsNotExist(err) {
		fmt.Printf("⚠️  [Main] envfile exists but cannot be loaded: %v\n", err)
		return
	}
	cmd.Execute()
}
