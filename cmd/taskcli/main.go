package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"

	"taskboard/internal/client/api"
	"taskboard/internal/client/cli"
	"taskboard/internal/client/session"
)

func main() {
	_ = godotenv.Load()

	defaultAddr := os.Getenv("TASKBOARD_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://localhost:5000"
	}
	addr := flag.String("addr", defaultAddr, "taskboard server base URL")
	sessPath := flag.String("session", "", "session file path (default ~/.taskboard/session.json)")
	flag.Parse()

	path := *sessPath
	if path == "" {
		p, err := session.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot resolve session path:", err)
			os.Exit(1)
		}
		path = p
	}

	app, err := cli.NewApp(api.New(*addr), session.NewStore(path))
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}

	fmt.Println("taskboard cli - type 'help' for commands")
	app.Run(context.Background())
}
