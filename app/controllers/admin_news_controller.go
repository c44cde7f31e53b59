package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/app/repository"
)

// AdminNewsController handles admin news-related HTTP requests
type AdminNewsController struct {
	newsRepo repository.NewsRepository
}

// NewAdminNewsController creates a new admin news controller with repository
func NewAdminNewsController(newsRepo repository.NewsRepository) *AdminNewsController {
	return &AdminNewsController{
		newsRepo: newsRepo,
	}
}

// HandleAdminNews renders the news management page
func (anc *AdminNewsController) HandleAdminNews(c *fiber.Ctx) error {
	newsList, err := anc.newsRepo.GetAll()
	if err != nil {
		return flashError(c, "Failed to load news articles: "+err.Error(), "/admin")
	}

	return c.Render("admin/news_index", viewData(c, "Manage News", fiber.Map{
		"NewsItems": newsList,
	}), mainLayout)
}

// HandleAdminNewsCreate renders the news creation form
func (anc *AdminNewsController) HandleAdminNewsCreate(c *fiber.Ctx) error {
	return c.Render("admin/news_create", viewData(c, "Create News Article", nil), mainLayout)
}

// HandleAdminNewsStore handles news creation
func (anc *AdminNewsController) HandleAdminNewsStore(c *fiber.Ctx) error {
	news, errMsg := anc.newsFromForm(c)
	if errMsg != "" {
		return flashError(c, errMsg, "/admin/news/create")
	}

	if err := anc.newsRepo.Create(news); err != nil {
		return flashError(c, "Failed to create news article: "+err.Error(), "/admin/news/create")
	}

	return flashSuccess(c, "News article '"+news.Title+"' created successfully!", "/admin/news")
}

// HandleAdminNewsEdit renders the news edit form
func (anc *AdminNewsController) HandleAdminNewsEdit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Redirect("/admin/news", fiber.StatusSeeOther)
	}

	news, err := anc.newsRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("News article not found")
	}

	return c.Render("admin/news_edit", viewData(c, "Edit News Article", fiber.Map{
		"News": news,
	}), mainLayout)
}

// HandleAdminNewsUpdate handles news update. A row deleted between load
// and save answers 404 instead of being resurrected.
func (anc *AdminNewsController) HandleAdminNewsUpdate(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return c.Redirect("/admin/news", fiber.StatusSeeOther)
	}

	news, errMsg := anc.newsFromForm(c)
	if errMsg != "" {
		return flashError(c, errMsg, "/admin/news/edit/"+idParam)
	}
	news.ID = uint(id)

	if err := anc.newsRepo.Update(news); err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).SendString("News article not found")
		}
		return flashError(c, "Failed to update news article: "+err.Error(), "/admin/news/edit/"+idParam)
	}

	return flashSuccess(c, "News article updated successfully!", "/admin/news")
}

// HandleAdminNewsDelete handles news deletion
func (anc *AdminNewsController) HandleAdminNewsDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Redirect("/admin/news", fiber.StatusSeeOther)
	}

	if err := anc.newsRepo.Delete(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).SendString("News article not found")
		}
		return flashError(c, "Failed to delete news article: "+err.Error(), "/admin/news")
	}

	return flashSuccess(c, "News article deleted successfully!", "/admin/news")
}

// newsFromForm parses and validates the shared create/edit form. Returns
// a user-facing message on validation failure.
func (anc *AdminNewsController) newsFromForm(c *fiber.Ctx) (*models.News, string) {
	news := &models.News{
		Title:    c.FormValue("title"),
		Content:  c.FormValue("content"),
		ImageURL: c.FormValue("image_url"),
		IsActive: c.FormValue("is_active") == "1",
	}

	if news.Title == "" || news.Content == "" {
		return nil, "Title and content are required"
	}

	news.PublishedDate = time.Now()
	if v := c.FormValue("published_date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return nil, "Invalid published date"
		}
		news.PublishedDate = parsed
	}

	if err := news.Validate(); err != nil {
		return nil, "Invalid news article: " + err.Error()
	}

	return news, ""
}

var adminNewsController *AdminNewsController

// InitializeAdminNewsController initializes the global admin news controller
func InitializeAdminNewsController() {
	adminNewsController = NewAdminNewsController(repository.GetGlobalFactory().GetNewsRepository())
}

// GetAdminNewsController returns the global admin news controller instance
func GetAdminNewsController() *AdminNewsController {
	if adminNewsController == nil {
		InitializeAdminNewsController()
	}
	return adminNewsController
}
