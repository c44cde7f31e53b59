package controllers

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/app/repository"
	"github.com/korlavalasa/villageportal/internal/pkg/imagestore"
	"github.com/korlavalasa/villageportal/internal/pkg/upload"
)

// AdminGalleryController handles admin gallery management including the
// multi-file upload pipeline
type AdminGalleryController struct {
	galleryRepo repository.GalleryRepository
	store       imagestore.Store
}

// NewAdminGalleryController creates a new admin gallery controller
func NewAdminGalleryController(galleryRepo repository.GalleryRepository, store imagestore.Store) *AdminGalleryController {
	return &AdminGalleryController{
		galleryRepo: galleryRepo,
		store:       store,
	}
}

// HandleAdminGallery renders the gallery management page
func (agc *AdminGalleryController) HandleAdminGallery(c *fiber.Ctx) error {
	category := c.Query("category", repository.GalleryCategoryAll)

	images, err := agc.galleryRepo.GetByCategory(category)
	if err != nil {
		return flashError(c, "Failed to load gallery: "+err.Error(), "/admin")
	}

	return c.Render("admin/gallery_index", viewData(c, "Manage Gallery", fiber.Map{
		"GalleryImages": images,
		"Category":      category,
	}), mainLayout)
}

// HandleAdminGalleryCreate renders the upload form
func (agc *AdminGalleryController) HandleAdminGalleryCreate(c *fiber.Ctx) error {
	return c.Render("admin/gallery_create", viewData(c, "Upload Images", fiber.Map{
		"DefaultCategory": models.GalleryDefaultCategory,
	}), mainLayout)
}

// HandleAdminGalleryStore processes a multi-file upload. Files with a bad
// extension, oversize files and files the image service rejects are
// skipped without aborting the batch; all successes are committed as one
// all-or-nothing insert. Zero successes means no database writes at all.
func (agc *AdminGalleryController) HandleAdminGalleryStore(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Gallery] Panic during upload: %v", r)
			err = flashError(c, "Upload failed unexpectedly. Please try again.", "/admin/gallery/create")
		}
	}()

	form, err := c.MultipartForm()
	if err != nil {
		return flashError(c, "Failed to read upload: "+err.Error(), "/admin/gallery/create")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return flashError(c, "Please select at least one image.", "/admin/gallery/create")
	}

	category := strings.TrimSpace(c.FormValue("category"))
	if category == "" {
		return flashError(c, "Category is required.", "/admin/gallery/create")
	}

	var uploaded []models.GalleryImage
	for _, file := range files {
		img, ok := agc.uploadOne(c, file, category)
		if !ok {
			continue
		}
		uploaded = append(uploaded, img)
	}

	if len(uploaded) == 0 {
		return flashError(c, "No valid images uploaded.", "/admin/gallery/create")
	}

	if err := agc.galleryRepo.CreateBatch(uploaded); err != nil {
		return flashError(c, "Failed to save gallery entries: "+err.Error(), "/admin/gallery/create")
	}

	return flashSuccess(c, fmt.Sprintf("Uploaded %d image(s) successfully!", len(uploaded)), "/admin/gallery")
}

// uploadOne validates a single file and forwards it to the image store.
// Invalid or failed files are logged and skipped.
func (agc *AdminGalleryController) uploadOne(c *fiber.Ctx, file *multipart.FileHeader, category string) (models.GalleryImage, bool) {
	if file == nil || file.Size == 0 {
		return models.GalleryImage{}, false
	}

	if err := upload.ValidateSize(file.Size); err != nil {
		log.Warnf("[Gallery] File too large skipped: %s (%d bytes)", file.Filename, file.Size)
		return models.GalleryImage{}, false
	}

	src, err := file.Open()
	if err != nil {
		log.Warnf("[Gallery] Cannot open %s: %v", file.Filename, err)
		return models.GalleryImage{}, false
	}
	defer src.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(src, head)
	if _, err := upload.ValidateImage(file.Filename, head[:n]); err != nil {
		log.Warnf("[Gallery] Invalid file skipped: %s (%v)", file.Filename, err)
		return models.GalleryImage{}, false
	}

	body := io.MultiReader(bytes.NewReader(head[:n]), src)
	url, err := agc.store.Upload(c.Context(), file.Filename, body)
	if err != nil {
		log.Errorf("[Gallery] Upload failed for %s: %v", file.Filename, err)
		return models.GalleryImage{}, false
	}

	title := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	if len(title) > 100 {
		title = title[:100]
	}

	return models.GalleryImage{
		Title:      title,
		ImagePath:  url,
		Category:   category,
		UploadDate: time.Now().UTC(),
	}, true
}

// HandleAdminGalleryDelete removes a gallery row and attempts to remove
// its backing file. File cleanup failures are logged but never block the
// database deletion.
func (agc *AdminGalleryController) HandleAdminGalleryDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Redirect("/admin/gallery", fiber.StatusSeeOther)
	}

	image, err := agc.galleryRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Gallery image not found")
	}

	// The row goes first; a surviving row must never point at a file
	// that is already gone
	if err := agc.galleryRepo.Delete(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Gallery image not found")
		}
		return flashError(c, "Failed to delete image: "+err.Error(), "/admin/gallery")
	}

	if image.ImagePath != "" {
		if err := agc.store.Delete(c.Context(), image.ImagePath); err != nil {
			log.Warnf("[Gallery] Could not delete backing file for %s: %v", image.ImagePath, err)
		}
	}

	return flashSuccess(c, "Image '"+image.Title+"' has been deleted successfully!", "/admin/gallery")
}

var adminGalleryController *AdminGalleryController

// InitializeAdminGalleryController initializes the global admin gallery controller
func InitializeAdminGalleryController() {
	adminGalleryController = NewAdminGalleryController(
		repository.GetGlobalFactory().GetGalleryRepository(),
		imagestore.GetStore(),
	)
}

// GetAdminGalleryController returns the global admin gallery controller instance
func GetAdminGalleryController() *AdminGalleryController {
	if adminGalleryController == nil {
		InitializeAdminGalleryController()
	}
	return adminGalleryController
}
