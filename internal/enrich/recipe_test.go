package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMatchRecipes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipes/findByIngredients" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("ingredients"); got != "Eggs,Milk" {
			t.Errorf("ingredients = %q", got)
		}
		if got := q.Get("number"); got != "10" {
			t.Errorf("number = %q", got)
		}
		if got := q.Get("ranking"); got != "1" {
			t.Errorf("ranking = %q", got)
		}
		w.Write([]byte(`[{"id":42,"title":"Omelette","image":"https://img.example/omelette.jpg","usedIngredientCount":2,"missedIngredientCount":1,"usedIngredients":[{"amount":2,"unit":"","name":"eggs"},{"amount":0.5,"unit":"cup","name":"milk"}],"missedIngredients":[{"amount":1,"unit":"tbsp","name":"butter"}]}]`))
	}))
	defer ts.Close()

	c := NewRecipeClient(ts.URL, "test-key")
	matches, err := c.MatchRecipes(context.Background(), []string{"Eggs", "Milk"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("matches = %+v", matches)
	}
	m := matches[0]
	if m.ID != 42 || m.Title != "Omelette" {
		t.Errorf("match = %+v", m)
	}
	if m.UsedIngredientCount != 2 || m.MissedIngredientCount != 1 {
		t.Errorf("counts = %d used, %d missed", m.UsedIngredientCount, m.MissedIngredientCount)
	}
	if len(m.UsedIngredients) != 2 || m.UsedIngredients[1].Unit != "cup" {
		t.Errorf("used ingredients = %+v", m.UsedIngredients)
	}
	if len(m.MissedIngredients) != 1 || m.MissedIngredients[0].Name != "butter" {
		t.Errorf("missed ingredients = %+v", m.MissedIngredients)
	}
}

func TestMatchRecipesServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewRecipeClient(ts.URL, "test-key")
	if _, err := c.MatchRecipes(context.Background(), []string{"Eggs"}); err == nil {
		t.Fatal("expected error")
	}
}
