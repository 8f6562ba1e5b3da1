package handlers

import (
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SellerHandler handles HTTP requests for sellers.
type SellerHandler struct {
	service *services.SellerService
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(service *services.SellerService) *SellerHandler {
	return &SellerHandler{
		service: service,
	}
}

// RegisterRoutes registers the seller routes. Self-service registration
// through /seller/new is public.
func (h *SellerHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	sellerRoutes := router.Group("/seller")
	sellerRoutes.Post("/new", h.HandleRegisterSeller)
	sellerRoutes.Get("/all", authRequired, h.HandleGetSellers)
	sellerRoutes.Get("/:id<int>", authRequired, h.HandleGetSellerByID)
	sellerRoutes.Post("/add", authRequired, h.HandleCreateSeller)
	sellerRoutes.Patch("/update/:id<int>", authRequired, h.HandleUpdateSeller)
	sellerRoutes.Patch("/deactivate/:id<int>", authRequired, h.HandleDeactivateSeller)
	sellerRoutes.Patch("/activate/:id<int>", authRequired, h.HandleActivateSeller)
}

func (h *SellerHandler) HandleGetSellers(c *fiber.Ctx) error {
	sellers, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(sellers)
}

func (h *SellerHandler) HandleGetSellerByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	seller, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(seller)
}

// HandleCreateSeller creates a seller on behalf of an admin.
func (h *SellerHandler) HandleCreateSeller(c *fiber.Ctx) error {
	return h.create(c, true)
}

// HandleRegisterSeller lets a seller sign up; the password must be confirmed.
func (h *SellerHandler) HandleRegisterSeller(c *fiber.Ctx) error {
	return h.create(c, false)
}

func (h *SellerHandler) create(c *fiber.Ctx, createdByAdmin bool) error {
	details, err := parseDetails[services.SellerDetails](c)
	if err != nil {
		return err
	}
	outcome, err := h.service.Create(c.UserContext(), details, createdByAdmin, c.IP())
	if err != nil {
		return err
	}
	return respond(c, outcome, fiber.StatusCreated, "Created Seller Successfully.")
}

func (h *SellerHandler) HandleUpdateSeller(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	details, err := parseDetails[services.SellerUpdate](c)
	if err != nil {
		return err
	}
	outcome, err := h.service.Update(c.UserContext(), id, details, c.IP())
	if err != nil {
		return err
	}
	return respond(c, outcome, fiber.StatusOK, "Updated seller details successfully.")
}

func (h *SellerHandler) HandleDeactivateSeller(c *fiber.Ctx) error {
	return h.setActive(c, false, "Deactivated seller successfully.")
}

func (h *SellerHandler) HandleActivateSeller(c *fiber.Ctx) error {
	return h.setActive(c, true, "Activated seller successfully.")
}

func (h *SellerHandler) setActive(c *fiber.Ctx, active bool, message string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.SetActive(c.UserContext(), id, active); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": message})
}
