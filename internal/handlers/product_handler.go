package handlers

import (
	"encoding/json"
	"io"
	"log"

	"portal/internal/apperrors"
	"portal/internal/services"
	"portal/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes. Everything but the latest
// products list sits behind authRequired.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	productRoutes := router.Group("/product")
	productRoutes.Get("/latest-products", h.HandleGetLatestProducts)
	productRoutes.Get("/all", authRequired, h.HandleGetProducts)
	productRoutes.Get("/:id<int>", authRequired, h.HandleGetProductByID)
	productRoutes.Post("/add", authRequired, h.HandleCreateProduct)
	productRoutes.Patch("/update/:id<int>", authRequired, h.HandleUpdateProduct)
	productRoutes.Patch("/deactivate/:id<int>", authRequired, h.HandleDeactivateProduct)
	productRoutes.Patch("/activate/:id<int>", authRequired, h.HandleActivateProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetLatestProducts retrieves the newest active products.
func (h *ProductHandler) HandleGetLatestProducts(c *fiber.Ctx) error {
	products, err := h.service.ListLatest(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	product, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product from a multipart form with a JSON
// "details" field and an "image_file" file.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	details, file, err := parseProductForm(c)
	if err != nil {
		return err
	}
	defer file.close()

	outcome, err := h.service.Create(c.UserContext(), details, file.storageFile())
	if err != nil {
		return err
	}
	return respond(c, outcome, fiber.StatusCreated, "Created Product Successfully.")
}

// HandleUpdateProduct updates a product from the same form as create. The
// image is optional.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	details, file, err := parseProductForm(c)
	if err != nil {
		return err
	}
	defer file.close()

	outcome, err := h.service.Update(c.UserContext(), id, details, file.storageFile())
	if err != nil {
		return err
	}
	return respond(c, outcome, fiber.StatusOK, "Updated product details successfully.")
}

// HandleDeactivateProduct hides a product from the shop.
func (h *ProductHandler) HandleDeactivateProduct(c *fiber.Ctx) error {
	return h.setActive(c, false, "Deactivated product successfully.")
}

// HandleActivateProduct makes a product visible again.
func (h *ProductHandler) HandleActivateProduct(c *fiber.Ctx) error {
	return h.setActive(c, true, "Activated product successfully.")
}

func (h *ProductHandler) setActive(c *fiber.Ctx, active bool, message string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.SetActive(c.UserContext(), id, active); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": message})
}

// uploadedFile is an open multipart file. The zero value means no file.
type uploadedFile struct {
	file   storage.File
	closer io.Closer
}

func (f *uploadedFile) storageFile() *storage.File {
	if f == nil {
		return nil
	}
	return &f.file
}

func (f *uploadedFile) close() {
	if f == nil || f.closer == nil {
		return
	}
	if err := f.closer.Close(); err != nil {
		log.Printf("Error closing uploaded file %s: %v", f.file.Name, err)
	}
}

func parseProductForm(c *fiber.Ctx) (services.ProductDetails, *uploadedFile, error) {
	var details services.ProductDetails
	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("Error parsing product form: %v", err)
		return details, nil, apperrors.Invalid("Expected a multipart form", nil)
	}

	if values := form.Value["details"]; len(values) > 0 && values[0] != "" {
		if err := json.Unmarshal([]byte(values[0]), &details); err != nil {
			return details, nil, apperrors.Invalid("Invalid product details", map[string]string{
				"details": err.Error(),
			})
		}
	}

	headers := form.File["image_file"]
	if len(headers) == 0 {
		return details, nil, nil
	}
	header := headers[0]
	body, err := header.Open()
	if err != nil {
		return details, nil, apperrors.Internal(err, "failed to open uploaded file")
	}
	return details, &uploadedFile{
		file: storage.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        body,
		},
		closer: body,
	}, nil
}
