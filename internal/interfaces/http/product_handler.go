package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/report"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	reports *report.ReportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, reports *report.ReportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, reports: reports}
}

// Create godoc
// @Summary      Registrar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.RegisterProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCode godoc
// @Summary      Obtener producto por código
// @Tags         products
// @Produce      json
// @Param        code  path  string  true  "Código (sin distinguir mayúsculas)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{code} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	code, err := url.PathUnescape(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "código mal codificado"})
	}
	out, err := h.uc.Find(c.UserContext(), code)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos con totales
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.StockListReport
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.reports.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por subcadena
// @Tags         products
// @Produce      json
// @Param        field  query  string  false  "code, name o category"  default(name)
// @Param        q      query  string  true   "Término"
// @Success      200    {array}   dto.ProductResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Field == "" {
		in.Field = string(repository.SearchByName)
	}
	out, err := h.uc.Search(c.UserContext(), repository.SearchField(in.Field), in.Term)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
