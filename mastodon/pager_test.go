package mastodon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// pageJSON builds a statuses page with the given IDs, newest first.
func pageJSON(ids ...string) string {
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = statusJSON(id)
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestFetchAllStatusesExhaustion(t *testing.T) {
	var requests int
	var maxIDs []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		maxIDs = append(maxIDs, r.URL.Query().Get("max_id"))
		switch requests {
		case 1:
			fmt.Fprint(w, pageJSON("10", "9", "8"))
		case 2:
			fmt.Fprint(w, pageJSON("7", "6", "5"))
		default:
			fmt.Fprint(w, "[]")
		}
	}))
	defer srv.Close()

	statuses, err := testClient(srv.URL).FetchAllStatuses(context.Background(), PageOptions{
		PageLimit: 3,
		MaxPages:  10,
	})
	if err != nil {
		t.Fatalf("FetchAllStatuses error: %v", err)
	}

	if len(statuses) != 6 {
		t.Errorf("got %d statuses, want 6", len(statuses))
	}
	if requests != 3 {
		t.Errorf("made %d requests, want 3 (two pages plus the empty one)", requests)
	}

	// Ordering must match upstream: newest first across pages.
	wantIDs := []string{"10", "9", "8", "7", "6", "5"}
	for i, want := range wantIDs {
		if got := statuses[i].ID.String(); got != want {
			t.Errorf("statuses[%d].ID = %s, want %s", i, got, want)
		}
	}

	// The cursor after each page is the last ID of that page.
	wantCursors := []string{"", "8", "5"}
	for i, want := range wantCursors {
		if maxIDs[i] != want {
			t.Errorf("request %d max_id = %q, want %q", i+1, maxIDs[i], want)
		}
	}
}

func TestFetchAllStatusesPageCeiling(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// Never exhausts; the ceiling must stop the walk.
		fmt.Fprint(w, pageJSON(fmt.Sprintf("%d", 100-requests*2), fmt.Sprintf("%d", 99-requests*2)))
	}))
	defer srv.Close()

	statuses, err := testClient(srv.URL).FetchAllStatuses(context.Background(), PageOptions{
		PageLimit: 2,
		MaxPages:  2,
	})
	if err != nil {
		t.Fatalf("FetchAllStatuses error: %v", err)
	}

	if len(statuses) != 4 {
		t.Errorf("got %d statuses, want exactly 2 pages' worth (4)", len(statuses))
	}
	if requests != 2 {
		t.Errorf("made %d requests, want 2", requests)
	}
}

func TestFetchAllStatusesAuthAborts(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			fmt.Fprint(w, pageJSON("10", "9"))
			return
		}
		http.Error(w, `{"error": "invalid token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	statuses, err := testClient(srv.URL).FetchAllStatuses(context.Background(), PageOptions{
		PageLimit: 2,
		MaxPages:  5,
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("FetchAllStatuses error = %v, want ErrUnauthorized", err)
	}
	if statuses != nil {
		t.Errorf("got %d statuses with auth failure, want none", len(statuses))
	}
}

func TestFetchAllStatusesPartialOnFailure(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			fmt.Fprint(w, pageJSON("10", "9"))
			return
		}
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	statuses, err := testClient(srv.URL).FetchAllStatuses(context.Background(), PageOptions{
		PageLimit: 2,
		MaxPages:  5,
	})
	if err != nil {
		t.Fatalf("FetchAllStatuses error = %v, want nil (partial results)", err)
	}
	if len(statuses) != 2 {
		t.Errorf("got %d statuses, want the 2 collected before the failure", len(statuses))
	}
}
