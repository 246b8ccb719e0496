package results

import (
	"context"
	"testing"

	"github.com/mind-engage/mindengage-media/internal/db"
)

func TestSQLStore(t *testing.T) {
	conn, err := db.Open(context.Background(), db.DriverSQLite, "file:results_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	exerciseStore(t, NewSQLStore(conn))
}

func TestSQLStoreRejectsDuplicateID(t *testing.T) {
	conn, err := db.Open(context.Background(), db.DriverSQLite, "file:results_dup?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	st := NewSQLStore(conn)
	e := Entry{ID: "same", LearnerID: "a", Score: 1, Total: 5}
	if err := st.Append(context.Background(), e); err != nil {
		t.Fatal(err)
	}
	if err := st.Append(context.Background(), e); err == nil {
		t.Fatal("expected unique violation")
	}
}
