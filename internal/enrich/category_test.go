package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClassify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classify" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("title"); got != "Whole Milk" {
			t.Errorf("title = %q", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key = %q", got)
		}
		w.Write([]byte(`{"category":"Dairy","usdaCode":1077}`))
	}))
	defer ts.Close()

	c := NewCategoryClient(ts.URL, "test-key")
	result, err := c.Classify(context.Background(), "Whole Milk")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if result.Category != "Dairy" || result.USDACode != 1077 {
		t.Errorf("result = %+v", result)
	}
}

func TestClassifyServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewCategoryClient(ts.URL, "test-key")
	if _, err := c.Classify(context.Background(), "Whole Milk"); err == nil {
		t.Fatal("expected error")
	}
}
