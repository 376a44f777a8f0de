package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridrival/sweepstakes/go/internal/dbconfig"
)

// Driver mirrors the JSON snapshot structure
type Driver struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TeamName  string `json:"team_name"`
	IsActive  bool   `json:"is_active"`
}

func main() {
	// 1) Load the JSON snapshot
	path := "go/internal/assets/drivers.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var drivers []Driver
	if err := json.Unmarshal(data, &drivers); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert and count
	var (
		total    = len(drivers)
		inserted int
		skipped  int
		errs     int
	)

	for _, d := range drivers {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO drivers (
              id, first_name, last_name, team_name, is_active
            ) VALUES (
              $1,$2,$3,$4,$5
            )
            ON CONFLICT (id) DO NOTHING
        `,
			d.ID, d.FirstName, d.LastName, d.TeamName, d.IsActive,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting driver %s: %v\n", d.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	// 4) Print summary
	fmt.Printf(
		"Drivers seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		total, inserted, skipped, errs,
	)
}
