package manager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuboard/internal/catalog"
	"menuboard/internal/nutrition"
	"menuboard/internal/storage"
)

// Catalog is the slice of the external menu API the manager view uses.
type Catalog interface {
	List(ctx context.Context) ([]catalog.MenuItem, error)
	Create(ctx context.Context, item catalog.MenuItem) (catalog.MenuItem, error)
	Update(ctx context.Context, item catalog.MenuItem) (catalog.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// Uploader stores item image assets and returns their public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// Controller owns the manager view: the item form, the card list, and
// every mutation against the catalog API. All element state the page
// needs is built here and handed to the templates; handlers never
// share globals.
type Controller struct {
	api     Catalog
	cache   *catalog.Cache
	uploads Uploader
	images  *storage.ImageIndex
	tokens  *deleteTokens
}

func NewController(api Catalog, cache *catalog.Cache, uploads Uploader, images *storage.ImageIndex) *Controller {
	return &Controller{
		api:     api,
		cache:   cache,
		uploads: uploads,
		images:  images,
		tokens:  newDeleteTokens(),
	}
}

// refresh pulls the full catalog and swaps the cache. Mutations call
// this instead of patching the snapshot in place.
func (ctrl *Controller) refresh(ctx context.Context) error {
	items, err := ctrl.api.List(ctx)
	if err != nil {
		return err
	}
	ctrl.cache.ReplaceAll(items)
	return nil
}

// userMessage maps a catalog failure to the message shown to the user:
// structured API errors surface their own message, transport failures
// collapse to a generic one.
func userMessage(err error) string {
	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Could not reach the menu service. Please try again."
}

// Page renders the manager view. When the initial fetch fails the page
// degrades to read-only-unavailable: no create affordance, inline
// message instead of cards.
func (ctrl *Controller) Page(c *gin.Context) {
	view := pageView{
		Toast:    c.Query("toast"),
		Alert:    c.Query("alert"),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Fields:   nutrition.Fields,
	}
	view.Categories = categoryOptions(view.Category)

	if err := ctrl.refresh(c.Request.Context()); err != nil {
		view.Unavailable = true
		view.Message = "Menu data is unavailable right now."
		renderPage(c, "manager.gohtml", view)
		return
	}

	items := Filter(ctrl.cache.Items(), view.Search, view.Category)
	view.Cards = buildCards(items)
	if len(view.Cards) == 0 {
		view.Message = "No menu items found."
	}

	if editID := c.Query("edit"); editID != "" {
		if item, ok := ctrl.cache.Find(editID); ok {
			view.Editing = buildFormView(item)
		}
	}

	renderPage(c, "manager.gohtml", view)
}

// Items renders just the card list for the current search/category
// selection. The fragment replaces the whole container on the client;
// rebuilds are full, never incremental.
func (ctrl *Controller) Items(c *gin.Context) {
	items := Filter(ctrl.cache.Items(), c.Query("search"), c.Query("category"))

	view := pageView{Cards: buildCards(items)}
	if len(view.Cards) == 0 {
		view.Message = "No menu items found."
	}

	renderPage(c, "cards.gohtml", view)
}

// Save routes the submitted form to create or update depending on id
// presence, then refetches the full list.
func (ctrl *Controller) Save(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		redirectAlert(c, "Invalid form submission.")
		return
	}

	data := ExtractFormData(ItemForm, c.Request.PostForm)
	item := itemFromForm(data)

	if item.Item == "" || item.Category == "" {
		redirectAlert(c, "Item name and category are required.")
		return
	}

	ctx := c.Request.Context()
	var err error
	if item.IsNew() {
		_, err = ctrl.api.Create(ctx, item)
	} else {
		_, err = ctrl.api.Update(ctx, item)
	}
	if err != nil {
		redirectAlert(c, userMessage(err))
		return
	}

	if err := ctrl.refresh(ctx); err != nil {
		redirectAlert(c, userMessage(err))
		return
	}

	redirectToast(c, "Menu item saved.")
}

// RequestDelete starts the confirmation step. No delete request is
// issued here; the page it renders carries a single-use token.
func (ctrl *Controller) RequestDelete(c *gin.Context) {
	id := c.Param("id")

	item, ok := ctrl.cache.Find(id)
	if !ok {
		redirectAlert(c, "Menu item not found.")
		return
	}

	view := confirmView{
		ID:    id,
		Name:  item.Item,
		Token: ctrl.tokens.issue(id),
	}
	renderPage(c, "confirm.gohtml", view)
}

// ConfirmDelete consumes the token and issues the delete. A missing or
// stale token means no request is sent at all.
func (ctrl *Controller) ConfirmDelete(c *gin.Context) {
	id := c.Param("id")
	token := c.PostForm("token")

	if !ctrl.tokens.consume(id, token) {
		redirectAlert(c, "No pending deletion for this item.")
		return
	}

	ctx := c.Request.Context()
	if err := ctrl.api.Delete(ctx, id); err != nil {
		redirectAlert(c, userMessage(err))
		return
	}

	if err := ctrl.refresh(ctx); err != nil {
		redirectAlert(c, userMessage(err))
		return
	}

	redirectToast(c, "Menu item deleted.")
}

// CancelDelete discards the pending confirmation without any request.
func (ctrl *Controller) CancelDelete(c *gin.Context) {
	ctrl.tokens.cancel(c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/manager")
}

// UploadImage stores an item image asset and records its URL.
func (ctrl *Controller) UploadImage(c *gin.Context) {
	if ctrl.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	id := c.Param("id")
	if _, ok := ctrl.cache.Find(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	if err := ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("items/%s/%s%s", id, uuid.New().String(), ext)

	assetURL, err := ctrl.uploads.Upload(
		c.Request.Context(),
		key,
		file,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctrl.images.Set(id, assetURL)

	c.JSON(http.StatusCreated, gin.H{"image_url": assetURL})
}

func renderPage(c *gin.Context, name string, view any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(c.Writer, name, view); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func redirectToast(c *gin.Context, message string) {
	c.Redirect(http.StatusSeeOther, "/manager?toast="+url.QueryEscape(message))
}

func redirectAlert(c *gin.Context, message string) {
	c.Redirect(http.StatusSeeOther, "/manager?alert="+url.QueryEscape(message))
}
