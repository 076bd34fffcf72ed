package enrich

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lookup" {
			t.Errorf("path = %s, want /lookup", r.URL.Path)
		}
		if got := r.URL.Query().Get("upc"); got != "012345678905" {
			t.Errorf("upc = %q", got)
		}
		w.Write([]byte(`{"items":[{"title":"Whole Milk","brand":"DairyCo","lowest_recorded_price":"3.99","description":"One gallon","images":["https://img.example/milk.jpg"]}]}`))
	}))
	defer ts.Close()

	c := NewProductClient(ts.URL)
	candidate, err := c.Lookup(context.Background(), "012345678905")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if candidate.UPC != "012345678905" {
		t.Errorf("UPC = %q", candidate.UPC)
	}
	if candidate.Title != "Whole Milk" || candidate.Brand != "DairyCo" {
		t.Errorf("candidate = %+v", candidate)
	}
	if candidate.LowestRecordedPrice != 3.99 {
		t.Errorf("price = %v, want 3.99", candidate.LowestRecordedPrice)
	}
	if len(candidate.Images) != 1 {
		t.Errorf("images = %v", candidate.Images)
	}
}

func TestLookupNumericPrice(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"title":"Eggs","lowest_recorded_price":2.5}]}`))
	}))
	defer ts.Close()

	c := NewProductClient(ts.URL)
	candidate, err := c.Lookup(context.Background(), "111111111111")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if candidate.LowestRecordedPrice != 2.5 {
		t.Errorf("price = %v, want 2.5", candidate.LowestRecordedPrice)
	}
}

func TestLookupEmptyItemsIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer ts.Close()

	c := NewProductClient(ts.URL)
	_, err := c.Lookup(context.Background(), "000000000000")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestLookup404IsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewProductClient(ts.URL)
	_, err := c.Lookup(context.Background(), "000000000000")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestLookupServerErrorIsNotNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewProductClient(ts.URL)
	_, err := c.Lookup(context.Background(), "012345678905")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrProductNotFound) {
		t.Fatal("server error must stay distinct from not-found")
	}
}
