package luxebid

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/luxebid/luxebid/pkg/model"
)

func TestAggregateWonAuctions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auctions/won/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "title": "Vintage watch"},
			{"id": 2, "title": "Oil painting"},
			{"id": 3, "title": "First edition"}
		]`))
	})
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("auction") {
		case "1":
			w.Write([]byte(`[{"id": 11, "auction_id": 1, "status": "paid", "total": "820.00"}]`))
		case "2":
			// Hung lookup: never answers within the item timeout.
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		case "3":
			w.Write([]byte(`[{"id": 33, "auction_id": 3, "status": "pending", "total": "95.50"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	})
	mux.HandleFunc("/payments/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("order") == "11" {
			w.Write([]byte(`[{"id": 101, "order_id": 11, "amount": "820.00", "method": "card"}]`))
			return
		}
		w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, mux)

	start := time.Now()
	won, err := c.AggregateWonAuctions(context.Background(), AggregateOptions{
		Concurrency: 3,
		ItemTimeout: 150 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("AggregateWonAuctions: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("aggregation took %v; a hung item must not stall the rest", elapsed)
	}

	if len(won) != 3 {
		t.Fatalf("got %d items, want 3", len(won))
	}

	// Backend order preserved.
	for i, wantID := range []int64{1, 2, 3} {
		if won[i].Auction.ID != wantID {
			t.Errorf("won[%d].Auction.ID = %d, want %d", i, won[i].Auction.ID, wantID)
		}
	}

	if won[0].Status != model.OrderPaid || won[0].Payment == nil {
		t.Errorf("item 1 = status %q, payment %v; want paid with receipt", won[0].Status, won[0].Payment)
	}
	if won[1].Status != model.OrderUnknown || won[1].Order != nil {
		t.Errorf("item 2 = status %q; a timed-out lookup must degrade to unknown", won[1].Status)
	}
	if won[2].Status != model.OrderPending || won[2].Payment != nil {
		t.Errorf("item 3 = status %q, payment %v; want pending without receipt", won[2].Status, won[2].Payment)
	}
}

func TestAggregateWonAuctionsBoundedConcurrency(t *testing.T) {
	const items = 8
	const limit = 2

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0

	mux := http.NewServeMux()
	mux.HandleFunc("/auctions/won/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[`)
		for i := 1; i <= items; i++ {
			if i > 1 {
				fmt.Fprint(w, `,`)
			}
			fmt.Fprintf(w, `{"id": %d, "title": "Lot %d"}`, i, i)
		}
		fmt.Fprint(w, `]`)
	})
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(30 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, mux)

	won, err := c.AggregateWonAuctions(context.Background(), AggregateOptions{
		Concurrency: limit,
		ItemTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("AggregateWonAuctions: %v", err)
	}
	if len(won) != items {
		t.Fatalf("got %d items, want %d", len(won), items)
	}

	mu.Lock()
	defer mu.Unlock()
	if maxInFlight > limit {
		t.Errorf("max in-flight lookups = %d, want <= %d", maxInFlight, limit)
	}
}

func TestAggregateWonAuctionsEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auctions/won/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	})

	c, _ := newTestClient(t, mux)

	won, err := c.AggregateWonAuctions(context.Background(), AggregateOptions{})
	if err != nil {
		t.Fatalf("AggregateWonAuctions: %v", err)
	}
	if len(won) != 0 {
		t.Errorf("got %d items, want 0", len(won))
	}
}
