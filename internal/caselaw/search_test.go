package caselaw

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nyaysetu/legalchat/internal/models"
	"go.uber.org/zap"
)

func TestNoopSearch(t *testing.T) {
	if got := (Noop{}).Search(context.Background(), "bail", 5); got != nil {
		t.Errorf("Noop.Search = %v, want nil", got)
	}
}

func TestClientSearchCachesResults(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		if r.URL.Query().Get("q") != "anticipatory bail" {
			t.Errorf("q = %q", r.URL.Query().Get("q"))
		}
		json.NewEncoder(w).Encode(searchResponse{Results: []models.CaseLaw{
			{Title: "Gurbaksh Singh Sibbia v. State of Punjab", Court: "Supreme Court"},
			{Title: "Sushila Aggarwal v. State (NCT of Delhi)", Court: "Supreme Court"},
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 8, time.Minute, zap.NewNop())
	ctx := context.Background()

	first := c.Search(ctx, "anticipatory bail", 5)
	if len(first) != 2 {
		t.Fatalf("len = %d, want 2", len(first))
	}
	second := c.Search(ctx, "anticipatory bail", 5)
	if len(second) != 2 {
		t.Fatalf("len = %d, want 2", len(second))
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1 (second hit served from cache)", fetches)
	}
}

func TestClientSearchClipsToLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{Results: []models.CaseLaw{
			{Title: "one"}, {Title: "two"}, {Title: "three"},
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 8, time.Minute, zap.NewNop())
	got := c.Search(context.Background(), "bail", 2)
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestClientSearchFailuresReturnNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 8, time.Minute, zap.NewNop())
	if got := c.Search(context.Background(), "bail", 5); got != nil {
		t.Errorf("Search = %v, want nil on server error", got)
	}
}

func TestClientSearchEmptyInputs(t *testing.T) {
	c := NewClient("", time.Second, 8, time.Minute, zap.NewNop())
	if got := c.Search(context.Background(), "bail", 5); got != nil {
		t.Error("unconfigured endpoint must return nil")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty query must not reach the endpoint")
	}))
	defer srv.Close()
	c = NewClient(srv.URL, time.Second, 8, time.Minute, zap.NewNop())
	if got := c.Search(context.Background(), "", 5); got != nil {
		t.Error("empty query must return nil")
	}
}
