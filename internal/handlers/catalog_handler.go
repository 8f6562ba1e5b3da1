package handlers

import (
	"log"

	"portal/internal/apperrors"
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for product categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes, all behind authRequired.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	categoryRoutes := router.Group("/category", authRequired)
	categoryRoutes.Get("/all", h.HandleGetCategories)
	categoryRoutes.Get("/:id<int>", h.HandleGetCategoryByID)
	categoryRoutes.Post("/add", h.HandleCreateCategory)
	categoryRoutes.Patch("/deactivate/:id<int>", h.HandleDeactivateCategory)
	categoryRoutes.Patch("/activate/:id<int>", h.HandleActivateCategory)
}

func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	category, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var details services.CategoryDetails
	if err := c.BodyParser(&details); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return apperrors.Invalid("Invalid request body", nil)
	}
	category, err := h.service.Create(c.UserContext(), details)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Created Category Successfully.",
		"category": category,
	})
}

func (h *CategoryHandler) HandleDeactivateCategory(c *fiber.Ctx) error {
	return h.setActive(c, false, "Deactivated category successfully.")
}

func (h *CategoryHandler) HandleActivateCategory(c *fiber.Ctx) error {
	return h.setActive(c, true, "Activated category successfully.")
}

func (h *CategoryHandler) setActive(c *fiber.Ctx, active bool, message string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.SetActive(c.UserContext(), id, active); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": message})
}

// ShopHandler handles HTTP requests for shops.
type ShopHandler struct {
	service *services.ShopService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(service *services.ShopService) *ShopHandler {
	return &ShopHandler{
		service: service,
	}
}

// RegisterRoutes registers the shop routes, all behind authRequired.
func (h *ShopHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	shopRoutes := router.Group("/shop", authRequired)
	shopRoutes.Get("/all", h.HandleGetShops)
	shopRoutes.Get("/:id<int>", h.HandleGetShopByID)
	shopRoutes.Post("/add", h.HandleCreateShop)
}

func (h *ShopHandler) HandleGetShops(c *fiber.Ctx) error {
	shops, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(shops)
}

func (h *ShopHandler) HandleGetShopByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	shop, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(shop)
}

func (h *ShopHandler) HandleCreateShop(c *fiber.Ctx) error {
	var details services.ShopDetails
	if err := c.BodyParser(&details); err != nil {
		log.Printf("Error parsing shop request body: %v", err)
		return apperrors.Invalid("Invalid request body", nil)
	}
	shop, err := h.service.Create(c.UserContext(), details)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Created Shop Successfully.",
		"shop":    shop,
	})
}
