package server

import (
	"strings"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProducts handles GET /api/v1/products
func (s *Server) GetProducts(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	products, err := s.productRepo.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, products, "Products fetched successfully")
}

// GetProduct handles GET /api/v1/products/:id
func (s *Server) GetProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.productRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, product, "Product fetched successfully")
}

// CreateProduct handles POST /api/v1/products
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	var req struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		ProductImage string `json:"product_image"`
		Price        int64  `json:"price"`
		Stock        int64  `json:"stock"`
		CategoryID   uint   `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and description are required"))
	}
	if req.CategoryID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("category_id is required"))
	}
	if req.Price < 0 || req.Stock < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Price and stock must not be negative"))
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		ProductImage: req.ProductImage,
		Price:        req.Price,
		Stock:        req.Stock,
		CategoryID:   req.CategoryID,
		OwnerID:      s.currentUserID(c),
	}
	if err := s.productRepo.Create(c.Context(), product); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles PATCH /api/v1/products/:id
func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.productRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if product.OwnerID != s.currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only modify your own products"))
	}

	var req struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		ProductImage string `json:"product_image"`
		Price        *int64 `json:"price"`
		Stock        *int64 `json:"stock"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.ProductImage != "" {
		product.ProductImage = req.ProductImage
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Price must not be negative"))
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Stock must not be negative"))
		}
		product.Stock = *req.Stock
	}

	if err := s.productRepo.Update(c.Context(), product); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.productRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if product.OwnerID != s.currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only delete your own products"))
	}

	if err := s.productRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, nil, "Product deleted successfully")
}

// GetCategories handles GET /api/v1/products/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.productRepo.ListCategories(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, categories, "Categories fetched successfully")
}

// CreateCategory handles POST /api/v1/products/categories
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Category name is required"))
	}

	category := &models.Category{Name: strings.ToLower(strings.TrimSpace(req.Name))}
	if err := s.productRepo.CreateCategory(c.Context(), category); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusCreated, category, "Category created successfully")
}
