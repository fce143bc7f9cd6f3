package manager

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"

	"menuboard/internal/catalog"
	"menuboard/internal/storage"
)

// fakeCatalog stands in for the external menu API.
type fakeCatalog struct {
	items   []catalog.MenuItem
	listErr error

	created []catalog.MenuItem
	updated []catalog.MenuItem
	deleted []string
	saveErr error
}

func (f *fakeCatalog) List(ctx context.Context) ([]catalog.MenuItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCatalog) Create(ctx context.Context, item catalog.MenuItem) (catalog.MenuItem, error) {
	if f.saveErr != nil {
		return catalog.MenuItem{}, f.saveErr
	}
	item.ID = "new-id"
	f.created = append(f.created, item)
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeCatalog) Update(ctx context.Context, item catalog.MenuItem) (catalog.MenuItem, error) {
	if f.saveErr != nil {
		return catalog.MenuItem{}, f.saveErr
	}
	f.updated = append(f.updated, item)
	return item, nil
}

func (f *fakeCatalog) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func strptr(s string) *string { return &s }

func setup(t *testing.T, api *fakeCatalog) (*gin.Engine, *Controller) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := NewController(api, catalog.NewCache(), nil, storage.NewImageIndex())

	r := gin.New()
	r.GET("/manager", ctrl.Page)
	r.GET("/manager/items", ctrl.Items)
	r.POST("/manager/items", ctrl.Save)
	r.POST("/manager/items/:id/delete-request", ctrl.RequestDelete)
	r.POST("/manager/items/:id/delete", ctrl.ConfirmDelete)
	r.POST("/manager/items/:id/cancel-delete", ctrl.CancelDelete)

	return r, ctrl
}

func postForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func redirectParam(t *testing.T, w *httptest.ResponseRecorder, key string) string {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", w.Code)
	}
	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("bad redirect location: %v", err)
	}
	return loc.Query().Get(key)
}

func TestSaveWithoutIDCreates(t *testing.T) {
	api := &fakeCatalog{}
	r, _ := setup(t, api)

	values := url.Values{}
	values.Set("ITEM", "Fries")
	values.Set("CATEGORY", "SNACKSIDE")
	values.Set("CAL", "320")

	w := postForm(r, "/manager/items", values)

	if msg := redirectParam(t, w, "toast"); msg == "" {
		t.Error("expected a success toast")
	}
	if len(api.created) != 1 || len(api.updated) != 0 {
		t.Fatalf("expected 1 create and 0 updates, got %d/%d", len(api.created), len(api.updated))
	}
	if v, ok := api.created[0].Nutrient("CAL"); !ok || v != "320" {
		t.Errorf("CAL not carried through: %q (present=%v)", v, ok)
	}
}

func TestSaveWithIDUpdates(t *testing.T) {
	api := &fakeCatalog{items: []catalog.MenuItem{{ID: "7", Item: "Fries", Category: "SNACKSIDE"}}}
	r, _ := setup(t, api)

	values := url.Values{}
	values.Set("id", "7")
	values.Set("ITEM", "Large Fries")
	values.Set("CATEGORY", "SNACKSIDE")

	w := postForm(r, "/manager/items", values)

	redirectParam(t, w, "toast")
	if len(api.updated) != 1 || len(api.created) != 0 {
		t.Fatalf("expected 1 update and 0 creates, got %d/%d", len(api.updated), len(api.created))
	}
	if api.updated[0].ID != "7" {
		t.Errorf("update sent to wrong id: %q", api.updated[0].ID)
	}
}

func TestSaveSurfacesAPIErrorMessage(t *testing.T) {
	api := &fakeCatalog{saveErr: &catalog.APIError{StatusCode: 422, Message: "name too long"}}
	r, _ := setup(t, api)

	values := url.Values{}
	values.Set("ITEM", "x")
	values.Set("CATEGORY", "SALAD")

	w := postForm(r, "/manager/items", values)

	if msg := redirectParam(t, w, "alert"); msg != "name too long" {
		t.Errorf("expected the API's message, got %q", msg)
	}
}

func TestSaveTransportErrorIsGeneric(t *testing.T) {
	api := &fakeCatalog{saveErr: errors.New("dial tcp: connection refused")}
	r, _ := setup(t, api)

	values := url.Values{}
	values.Set("ITEM", "x")
	values.Set("CATEGORY", "SALAD")

	w := postForm(r, "/manager/items", values)

	msg := redirectParam(t, w, "alert")
	if strings.Contains(msg, "dial tcp") {
		t.Errorf("transport detail leaked to the user: %q", msg)
	}
	if msg == "" {
		t.Error("expected a generic failure message")
	}
}

func TestSaveRequiresNameAndCategory(t *testing.T) {
	api := &fakeCatalog{}
	r, _ := setup(t, api)

	w := postForm(r, "/manager/items", url.Values{})

	if msg := redirectParam(t, w, "alert"); msg == "" {
		t.Error("expected a validation alert")
	}
	if len(api.created) != 0 {
		t.Error("invalid form must not reach the API")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	api := &fakeCatalog{items: []catalog.MenuItem{{ID: "7", Item: "Fries", Category: "SNACKSIDE"}}}
	r, ctrl := setup(t, api)

	if err := ctrl.refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Confirming without a pending token issues no request.
	w := postForm(r, "/manager/items/7/delete", url.Values{"token": {"bogus"}})
	redirectParam(t, w, "alert")
	if len(api.deleted) != 0 {
		t.Fatal("delete issued without confirmation")
	}

	// Full flow: request, read the token off the confirm page, confirm.
	w = postForm(r, "/manager/items/7/delete-request", url.Values{})
	if w.Code != http.StatusOK {
		t.Fatalf("expected confirm page, got %d", w.Code)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	token, ok := doc.Find(`input[name="token"]`).Attr("value")
	if !ok || token == "" {
		t.Fatal("confirm page carries no token")
	}

	w = postForm(r, "/manager/items/7/delete", url.Values{"token": {token}})
	redirectParam(t, w, "toast")
	if len(api.deleted) != 1 || api.deleted[0] != "7" {
		t.Fatalf("expected one delete of item 7, got %v", api.deleted)
	}

	// The token is single-use: replaying it must not delete again.
	w = postForm(r, "/manager/items/7/delete", url.Values{"token": {token}})
	redirectParam(t, w, "alert")
	if len(api.deleted) != 1 {
		t.Fatalf("stale token fired a second delete: %v", api.deleted)
	}
}

func TestCancelDiscardsPendingDeletion(t *testing.T) {
	api := &fakeCatalog{items: []catalog.MenuItem{{ID: "7", Item: "Fries", Category: "SNACKSIDE"}}}
	r, ctrl := setup(t, api)

	if err := ctrl.refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	w := postForm(r, "/manager/items/7/delete-request", url.Values{})
	doc, _ := goquery.NewDocumentFromReader(w.Body)
	token, _ := doc.Find(`input[name="token"]`).Attr("value")

	postForm(r, "/manager/items/7/cancel-delete", url.Values{})

	w = postForm(r, "/manager/items/7/delete", url.Values{"token": {token}})
	redirectParam(t, w, "alert")
	if len(api.deleted) != 0 {
		t.Fatal("cancelled deletion still issued a request")
	}
}

func TestPageDegradesWhenBackendUnreachable(t *testing.T) {
	api := &fakeCatalog{listErr: errors.New("connection refused")}
	r, _ := setup(t, api)

	req := httptest.NewRequest(http.MethodGet, "/manager", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find("#createButton").Length() != 0 {
		t.Error("create affordance must be hidden when the backend is unreachable")
	}
	if doc.Find(".empty").Length() == 0 {
		t.Error("expected an inline unavailable message")
	}
}

func TestItemsFragmentFiltering(t *testing.T) {
	api := &fakeCatalog{items: []catalog.MenuItem{
		{ID: "1", Item: "World Famous Fries", Category: "SNACKSIDE"},
		{ID: "2", Item: "Hamburger", Category: "BEEFPORK"},
		{ID: "3", Item: "FRIES Basket", Category: "SNACKSIDE"},
	}}
	r, ctrl := setup(t, api)

	if err := ctrl.refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/manager/items?search=fries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find(".card").Length(); got != 2 {
		t.Errorf("expected 2 matching cards, got %d", got)
	}
}

func TestCardOmitsAbsentNutritionRows(t *testing.T) {
	item := catalog.MenuItem{
		ID:       "1",
		Item:     "Hamburger",
		Category: "BEEFPORK",
		Calories: strptr("250"),
		Protein:  strptr("12"),
	}

	card := buildCard(item)
	if len(card.Facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(card.Facts))
	}
	if card.Facts[0].Label != "Calories" || card.Facts[1].Label != "Protein" {
		t.Errorf("unexpected fact order: %+v", card.Facts)
	}
}
