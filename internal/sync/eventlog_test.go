package syncx

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mind-engage/mindengage-media/internal/db"
)

func TestEventRepoAppendSince(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, "file:eventlog_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	repo := NewEventRepo(conn)

	for _, key := range []string{"s1", "s2", "s3"} {
		e, err := NewEvent(TypeQuizSubmitted, key, map[string]int{"score": 4})
		if err != nil {
			t.Fatal(err)
		}
		if err := repo.Append(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	all, err := repo.Since(ctx, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].Key != "s1" || all[2].Key != "s3" {
		t.Fatalf("events = %+v", all)
	}
	if all[0].SiteID != "local" || all[0].Type != TypeQuizSubmitted {
		t.Fatalf("event = %+v", all[0])
	}
	var data map[string]int
	if err := json.Unmarshal([]byte(all[1].DataJSON), &data); err != nil || data["score"] != 4 {
		t.Fatalf("data = %q, %v", all[1].DataJSON, err)
	}

	rest, err := repo.Since(ctx, all[0].Offset, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 1 || rest[0].Key != "s2" {
		t.Fatalf("since = %+v", rest)
	}
}
