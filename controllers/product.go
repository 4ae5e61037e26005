// controllers/product.go
package controllers

import (
	"errors"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/repository"
	"backoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required,min=0"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price" binding:"omitempty,min=0"`
}

// ProductController handles the product catalog resource
type ProductController struct {
	repo *repository.Repository[models.Product]
}

func NewProductController(repo *repository.Repository[models.Product]) *ProductController {
	return &ProductController{repo: repo}
}

// GetProducts retrieves all products of the business
func (ctl *ProductController) GetProducts(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	products, err := ctl.repo.List(businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No products found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		}
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific product by ID
func (ctl *ProductController) GetProduct(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	product, err := ctl.repo.GetByID(businessID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a new product for the business
func (ctl *ProductController) CreateProduct(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		Name:  input.Name,
		Price: *input.Price,
	}

	if err := ctl.repo.Create(businessID, &product); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies the provided fields to an existing product
func (ctl *ProductController) UpdateProduct(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product, err := ctl.repo.GetByID(businessID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}

	if err := ctl.repo.Save(product); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct permanently removes a product
func (ctl *ProductController) DeleteProduct(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := ctl.repo.Delete(businessID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
