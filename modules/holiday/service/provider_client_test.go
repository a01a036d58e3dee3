package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:  3,
		BaseDelay: time.Millisecond,
		MaxDelay:  4 * time.Millisecond,
	}
}

func TestFetchParsesProviderResponse(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `[
			{"date":"2025-07-14","localName":"Fête nationale","name":"Bastille Day","countryCode":"FR"},
			{"date":"2025-12-25","localName":"Noël","name":"Christmas Day","countryCode":"FR"}
		]`)
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, testRetryPolicy())
	holidays, err := client.Fetch(context.Background(), "FR", 2025)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if gotPath != "/PublicHolidays/2025/FR" {
		t.Errorf("request path = %s, want /PublicHolidays/2025/FR", gotPath)
	}
	if len(holidays) != 2 {
		t.Fatalf("len(holidays) = %d, want 2", len(holidays))
	}
	if holidays[0].Date != "2025-07-14" || holidays[0].Name != "Bastille Day" || holidays[0].CountryCode != "FR" {
		t.Errorf("holidays[0] = %+v, want Bastille Day on 2025-07-14", holidays[0])
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `[{"date":"2025-01-01","localName":"Nouvel an","name":"New Year's Day","countryCode":"FR"}]`)
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, testRetryPolicy())
	holidays, err := client.Fetch(context.Background(), "FR", 2025)
	if err != nil {
		t.Fatalf("Fetch returned error after retries: %v", err)
	}

	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("requests = %d, want 3 (two failures then success)", calls)
	}
	if len(holidays) != 1 {
		t.Errorf("len(holidays) = %d, want 1", len(holidays))
	}
}

func TestFetchGivesUpAfterAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, testRetryPolicy())
	if _, err := client.Fetch(context.Background(), "FR", 2025); err == nil {
		t.Fatal("Fetch = nil error, want failure after exhausting retries")
	}

	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("requests = %d, want exactly 3 attempts", calls)
	}
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, testRetryPolicy())
	if _, err := client.Fetch(context.Background(), "XX", 2025); err == nil {
		t.Fatal("Fetch = nil error, want rejection for unknown country")
	}

	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("requests = %d, want 1 (client errors are not retried)", calls)
	}
}

func TestFetchRejectsMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"not":"a list"}`)
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, testRetryPolicy())
	if _, err := client.Fetch(context.Background(), "FR", 2025); err == nil {
		t.Fatal("Fetch = nil error, want decode failure")
	}
}
