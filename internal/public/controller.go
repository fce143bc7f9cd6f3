package public

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"menuboard/internal/catalog"
	"menuboard/internal/label"
	"menuboard/internal/nutrition"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

// Catalog is the read-only slice of the menu API the public view uses.
type Catalog interface {
	List(ctx context.Context) ([]catalog.MenuItem, error)
}

// Controller owns the public browsing view: the grouped listing, the
// filter bar, and the detail popup payload.
type Controller struct {
	api    Catalog
	cache  *catalog.Cache
	images ImageResolver
}

func NewController(api Catalog, cache *catalog.Cache, images ImageResolver) *Controller {
	return &Controller{
		api:    api,
		cache:  cache,
		images: images,
	}
}

type menuView struct {
	Unavailable bool
	Message     string
	Buttons     []FilterButton
	Nutrition   []nutritionOption
	Sections    []Section
	// ActiveCategory and ActiveNutrition echo the selection into links.
	ActiveCategory  string
	ActiveNutrition string
}

type nutritionOption struct {
	Filter string
	Badge  string
	Active bool
}

// Page renders the public listing. The filter state is rebuilt per
// request from the query string, so every load recomputes the visible
// sections from the full snapshot.
func (ctrl *Controller) Page(c *gin.Context) {
	view := menuView{}

	filter := &Filter{}
	filter.ShowAllCategories()
	if category := c.Query("category"); category != "" {
		filter.SetCategoryFilter(category)
	}
	if name := c.Query("filter"); name != "" {
		if _, ok := nutrition.ByFilter(name); ok {
			filter.SetNutritionFilter(name)
		}
	}
	view.ActiveCategory = filter.Category()
	view.ActiveNutrition = filter.Nutrition()
	view.Buttons = filter.Buttons()
	for _, h := range nutrition.Highlights {
		view.Nutrition = append(view.Nutrition, nutritionOption{
			Filter: h.Filter,
			Badge:  h.Badge,
			Active: h.Filter == filter.Nutrition(),
		})
	}

	items, err := ctrl.api.List(c.Request.Context())
	if err != nil {
		view.Unavailable = true
		view.Message = "The menu is unavailable right now."
		render(c, view)
		return
	}
	ctrl.cache.ReplaceAll(items)

	view.Sections = BuildListings(items, filter, ctrl.images)
	if len(view.Sections) == 0 {
		view.Message = "No menu items to show."
	}

	render(c, view)
}

// ItemDetail returns the payload behind the detail popup. The popup is
// loaded on demand; nothing is precomputed at listing time.
func (ctrl *Controller) ItemDetail(c *gin.Context) {
	id := c.Param("id")

	item, ok := ctrl.cache.Find(id)
	if !ok {
		// Cold cache (detail hit before any listing render): fetch once.
		items, err := ctrl.api.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "menu service unavailable"})
			return
		}
		ctrl.cache.ReplaceAll(items)
		if item, ok = ctrl.cache.Find(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
	}

	extracted := label.Extract(label.PublicRules, item.Item, item.Category)

	facts := make([]gin.H, 0, len(nutrition.Fields))
	for _, f := range nutrition.Fields {
		value, present := item.Nutrient(f.Key)
		if !present {
			continue
		}
		facts = append(facts, gin.H{
			"label": f.Label,
			"value": displayValue(f.Key, value),
			"unit":  f.Unit,
		})
	}

	payload := gin.H{
		"id":       item.ID,
		"name":     extracted.Name,
		"quantity": extracted.Quantity,
		"category": catalog.FormatCategoryName(item.Category),
		"facts":    facts,
	}
	if ctrl.images != nil {
		payload["image_url"] = ctrl.images.URLFor(item.ID)
	}

	c.JSON(http.StatusOK, payload)
}

// displayValue formats calorie counts with thousands separators;
// every other column renders its raw numeric string.
func displayValue(key, raw string) string {
	if key != "CAL" {
		return raw
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return raw
	}
	return humanize.Comma(n)
}

func render(c *gin.Context, view menuView) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(c.Writer, "menu.gohtml", view); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
