package db

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"debatecoach/models"
)

func TestExtractDBName(t *testing.T) {
	cases := map[string]string{
		"mongodb://localhost:27017/debates":          "debates",
		"mongodb://localhost:27017/":                 "test",
		"mongodb://localhost:27017":                  "test",
		"mongodb+srv://u:p@cluster.example/prod?x=1": "prod",
		"://bad uri":                                 "test",
	}
	for uri, want := range cases {
		if got := extractDBName(uri); got != want {
			t.Errorf("extractDBName(%q) = %q, want %q", uri, got, want)
		}
	}
}

func TestMemoryStoreInsertAndList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.InsertStatusCheck(ctx, models.StatusCheck{ID: fmt.Sprint(i), ClientName: "c"})
		}()
	}
	wg.Wait()

	all, err := s.ListStatusChecks(ctx, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 20 {
		t.Errorf("Expected 20 checks, got %d", len(all))
	}

	limited, _ := s.ListStatusChecks(ctx, 5)
	if len(limited) != 5 {
		t.Errorf("Expected limit to apply, got %d", len(limited))
	}

	limited[0].ClientName = "mutated"
	again, _ := s.ListStatusChecks(ctx, 5)
	if again[0].ClientName == "mutated" {
		t.Error("List must return a copy")
	}
}
