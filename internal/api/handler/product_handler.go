package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/formalshoes/store-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the public catalog.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type seedResponse struct {
	Seeded bool `json:"seeded"`
	Count  int  `json:"count"`
}

// List handles GET /shoes.
//
// @Summary      List the catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /shoes [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Get handles GET /shoes/:id.
//
// @Summary      Get a catalog item
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /shoes/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*product))
}

// Seed handles POST /seed. Inserting sample data is a no-op on a populated
// catalog, so the endpoint is safe to call repeatedly.
//
// @Summary      Seed the catalog with sample shoes
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  seedResponse
// @Router       /seed [post]
func (h *ProductHandler) Seed(c echo.Context) error {
	count, err := h.catalog.Seed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seedResponse{Seeded: count > 0, Count: count})
}
