package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/app/repository"
)

// AdminVillageController manages the singleton village profile
type AdminVillageController struct {
	villageRepo repository.VillageInfoRepository
}

// NewAdminVillageController creates a new admin village controller with repository
func NewAdminVillageController(villageRepo repository.VillageInfoRepository) *AdminVillageController {
	return &AdminVillageController{
		villageRepo: villageRepo,
	}
}

// HandleAdminVillageInfo renders the profile form, lazily creating the
// singleton row on first access
func (avc *AdminVillageController) HandleAdminVillageInfo(c *fiber.Ctx) error {
	info, err := avc.villageRepo.GetOrCreate()
	if err != nil {
		return flashError(c, "Failed to load village info: "+err.Error(), "/admin")
	}

	return c.Render("admin/village_info", viewData(c, "Village Information", fiber.Map{
		"VillageInfo": info,
	}), mainLayout)
}

// HandleAdminVillageInfoUpdate validates and conditionally updates the profile
func (avc *AdminVillageController) HandleAdminVillageInfoUpdate(c *fiber.Ctx) error {
	info, errMsg := avc.infoFromForm(c)
	if errMsg != "" {
		return flashError(c, errMsg, "/admin/village-info")
	}

	if err := avc.villageRepo.Update(info); err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Village info not found")
		}
		return flashError(c, "Failed to update village info: "+err.Error(), "/admin/village-info")
	}

	return flashSuccess(c, "Village information updated successfully!", "/admin")
}

func (avc *AdminVillageController) infoFromForm(c *fiber.Ctx) (*models.VillageInfo, string) {
	id, err := strconv.ParseUint(c.FormValue("id"), 10, 32)
	if err != nil {
		return nil, "Invalid form submission"
	}

	population, err := strconv.Atoi(c.FormValue("population"))
	if err != nil {
		return nil, "Population must be a number"
	}
	area, err := strconv.ParseFloat(c.FormValue("area"), 64)
	if err != nil {
		return nil, "Area must be a number"
	}

	info := &models.VillageInfo{
		ID:            uint(id),
		AboutText:     c.FormValue("about_text"),
		History:       c.FormValue("history"),
		Population:    population,
		Area:          area,
		MainCrops:     c.FormValue("main_crops"),
		ContactEmail:  c.FormValue("contact_email"),
		ContactNumber: c.FormValue("contact_number"),
		Address:       c.FormValue("address"),
		SarpanchName:  c.FormValue("sarpanch_name"),
		SecretaryName: c.FormValue("secretary_name"),
	}

	if err := info.Validate(); err != nil {
		return nil, "Invalid village info: " + err.Error()
	}

	return info, ""
}

var adminVillageController *AdminVillageController

// InitializeAdminVillageController initializes the global admin village controller
func InitializeAdminVillageController() {
	adminVillageController = NewAdminVillageController(repository.GetGlobalFactory().GetVillageInfoRepository())
}

// GetAdminVillageController returns the global admin village controller instance
func GetAdminVillageController() *AdminVillageController {
	if adminVillageController == nil {
		InitializeAdminVillageController()
	}
	return adminVillageController
}
