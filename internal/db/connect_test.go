package db

import (
	"context"
	"testing"
)

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := "file:connect_test?mode=memory&cache=shared"
	first, err := Open(ctx, DriverSQLite, dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	if _, err := first.ExecContext(ctx,
		`INSERT INTO quiz_results (id,learner_id,score,total,completed_at) VALUES ('r1','a',4,5,0)`); err != nil {
		t.Fatal(err)
	}

	// schema creation runs again against the same shared memory DB
	second, err := Open(ctx, DriverSQLite, dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	var n int
	if err := second.QueryRowContext(ctx, `SELECT COUNT(*) FROM quiz_results`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("rows = %d, want 1", n)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Driver("mysql"), ""); err == nil {
		t.Fatal("expected error")
	}
}
