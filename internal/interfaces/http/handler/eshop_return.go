package handler

import (
	"errors"
	"net/http"
	"strconv"

	eshopapp "github.com/euroweb/backoffice/internal/application/eshop"
	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// editViewPathPrefix is where the back-office edit view for a return lives
const editViewPathPrefix = "/euroweb/module/eshop-return/edit/"

// EshopReturnHandler handles return request endpoints, including the
// warehouse sticker operations proxied to the remote warehouse API
type EshopReturnHandler struct {
	BaseHandler
	returnService *eshopapp.ReturnService
	warehouse     eshop.WarehouseManager
}

// NewEshopReturnHandler creates a new EshopReturnHandler
func NewEshopReturnHandler(returnService *eshopapp.ReturnService, warehouse eshop.WarehouseManager) *EshopReturnHandler {
	return &EshopReturnHandler{
		returnService: returnService,
		warehouse:     warehouse,
	}
}

// RegisterRoutes registers return endpoints on the given router group
func (h *EshopReturnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	returns := rg.Group("/eshop-return")
	{
		returns.POST("/create-from-id", h.CreateFromID)
		returns.POST("/stickers/create/:id", h.CreateStickers)
		returns.GET("/stickers/print/:id", h.PrintStickers)
		returns.DELETE("/stickers/:id", h.CancelStickers)
		returns.GET("/stickers/:id", h.GetStickers)
	}
}

// CreateFromID creates a return request for an external order id, or reuses
// the existing one, and redirects to its edit view
func (h *EshopReturnHandler) CreateFromID(c *gin.Context) {
	orderID := c.PostForm("orderId")
	if orderID == "" {
		h.NotFound(c, "Order not found")
		return
	}

	ret, err := h.returnService.CreateFromOrderID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Order not found")
			return
		}
		h.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, editViewPathPrefix+ret.ID.String())
}

// CreateStickers asks the warehouse to create one sticker per shipment box
func (h *EshopReturnHandler) CreateStickers(c *gin.Context) {
	ret, ok := h.lookupReturn(c)
	if !ok {
		return
	}

	// Validate before contacting the warehouse
	boxCount, err := strconv.Atoi(c.PostForm("boxCount"))
	if err != nil || boxCount <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid box count number"})
		return
	}

	if _, err := h.warehouse.CreateStickers(c.Request.Context(), ret, boxCount); err != nil {
		h.handleWarehouseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// PrintStickers streams the printable sticker PDF for a manifest
func (h *EshopReturnHandler) PrintStickers(c *gin.Context) {
	ret, ok := h.lookupReturn(c)
	if !ok {
		return
	}

	manifestNumber := c.Query("manifestNumber")
	if manifestNumber == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Missing manifest number"})
		return
	}

	doc, err := h.warehouse.PrintStickers(c.Request.Context(), ret, manifestNumber)
	if err != nil {
		var warehouseErr *eshop.WarehouseError
		if errors.As(err, &warehouseErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": warehouseErr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something went wrong"})
		return
	}

	c.Header("Content-Disposition", "inline; filename="+doc.FileName)
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

// CancelStickers cancels the stickers of a manifest at the warehouse
func (h *EshopReturnHandler) CancelStickers(c *gin.Context) {
	ret, ok := h.lookupReturn(c)
	if !ok {
		return
	}

	manifestNumber := c.Query("manifestNumber")
	if manifestNumber == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Missing manifest number"})
		return
	}

	if err := h.warehouse.CancelStickers(c.Request.Context(), ret, manifestNumber); err != nil {
		h.handleWarehouseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// GetStickers lists the stickers currently registered for a return
func (h *EshopReturnHandler) GetStickers(c *gin.Context) {
	ret, ok := h.lookupReturn(c)
	if !ok {
		return
	}

	stickers, err := h.warehouse.GetStickers(c.Request.Context(), ret)
	if err != nil {
		h.handleWarehouseError(c, err)
		return
	}
	if stickers == nil {
		stickers = []eshop.Sticker{}
	}

	c.JSON(http.StatusOK, stickers)
}

// lookupReturn resolves the return from the :id path parameter. It writes
// the error response itself and reports success via the second value.
func (h *EshopReturnHandler) lookupReturn(c *gin.Context) (*eshop.Return, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid return id")
		return nil, false
	}

	ret, err := h.returnService.GetReturn(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Return not found")
		} else {
			h.HandleError(c, err)
		}
		return nil, false
	}
	return ret, true
}

// handleWarehouseError maps warehouse failures to responses. Remote
// rejections become 422 with the warehouse message; anything else is an
// internal error.
func (h *EshopReturnHandler) handleWarehouseError(c *gin.Context, err error) {
	var warehouseErr *eshop.WarehouseError
	if errors.As(err, &warehouseErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": warehouseErr.Message})
		return
	}
	h.HandleError(c, err)
}
