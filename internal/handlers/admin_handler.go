package handlers

import (
	"portal/internal/middleware"
	"portal/internal/models"
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for portal administrators.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// RegisterRoutes registers the admin routes. They are behind authRequired and
// only open to admin accounts.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	adminRoutes := router.Group("/admin", authRequired, middleware.RequireUserType(models.UserTypeAdmin))
	adminRoutes.Get("/all", h.HandleGetAdmins)
	adminRoutes.Get("/:id<int>", h.HandleGetAdminByID)
	adminRoutes.Post("/add", h.HandleCreateAdmin)
	adminRoutes.Patch("/update/:id<int>", h.HandleUpdateAdmin)
	adminRoutes.Patch("/deactivate/:id<int>", h.HandleDeactivateAdmin)
	adminRoutes.Patch("/activate/:id<int>", h.HandleActivateAdmin)
}

func (h *AdminHandler) HandleGetAdmins(c *fiber.Ctx) error {
	admins, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(admins)
}

func (h *AdminHandler) HandleGetAdminByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	admin, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(admin)
}

func (h *AdminHandler) HandleCreateAdmin(c *fiber.Ctx) error {
	details, err := parseDetails[services.AdminDetails](c)
	if err != nil {
		return err
	}
	outcome, err := h.service.Create(c.UserContext(), details, c.IP())
	if err != nil {
		return err
	}
	return respond(c, outcome, fiber.StatusCreated, "Created Admin Successfully.")
}

func (h *AdminHandler) HandleUpdateAdmin(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	details, err := parseDetails[services.AdminUpdate](c)
	if err != nil {
		return err
	}
	outcome, err := h.service.Update(c.UserContext(), id, details, c.IP())
	if err != nil {
		return err
	}
	return respond(c, outcome, fiber.StatusOK, "Updated admin details successfully.")
}

func (h *AdminHandler) HandleDeactivateAdmin(c *fiber.Ctx) error {
	return h.setActive(c, false, "Deactivated admin successfully.")
}

func (h *AdminHandler) HandleActivateAdmin(c *fiber.Ctx) error {
	return h.setActive(c, true, "Activated admin successfully.")
}

func (h *AdminHandler) setActive(c *fiber.Ctx, active bool, message string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.SetActive(c.UserContext(), id, active); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": message})
}
