//go:build integration

package postgres

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

var testPool *pgxpool.Pool

// TestMain spins up a throwaway Postgres container, runs the embedded
// migrations against it and tears everything down afterwards. Needs Docker.
func TestMain(m *testing.M) {
	ctx := context.Background()

	const (
		dbName = "quiz_test"
		dbUser = "quiz"
		dbPass = "quiz"
		dbPort = "5432"
	)

	run := exec.Command("docker", "run", "-d", "--rm",
		"--network", "host",
		"-e", "POSTGRES_DB="+dbName,
		"-e", "POSTGRES_USER="+dbUser,
		"-e", "POSTGRES_PASSWORD="+dbPass,
		"postgres:14",
	)
	var out bytes.Buffer
	run.Stdout = &out
	if err := run.Run(); err != nil {
		log.Fatalf("starting postgres container: %v (is Docker running?)", err)
	}
	containerID := strings.TrimSpace(out.String())[:12]
	stopContainer := func() { _ = exec.Command("docker", "stop", containerID).Run() }

	connStr := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", dbUser, dbPass, dbPort, dbName)
	var err error
	for attempt := 1; attempt <= 15; attempt++ {
		if testPool, err = pgxpool.Connect(ctx, connStr); err == nil {
			break
		}
		log.Printf("waiting for postgres (attempt %d/15)", attempt)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		stopContainer()
		log.Fatalf("test database never became reachable: %v", err)
	}

	if err := Migrate(ctx, testPool); err != nil {
		stopContainer()
		log.Fatalf("applying migrations: %v", err)
	}

	code := m.Run()

	testPool.Close()
	stopContainer()
	os.Exit(code)
}

func cleanup(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE
			users, quizzes, questions, quiz_attempts, answers,
			user_images, subscriptions, transactions
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		t.Fatalf("truncating test tables: %v", err)
	}
}
