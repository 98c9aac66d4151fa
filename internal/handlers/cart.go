package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bariskaplan/portfolio-hub/internal/models"
	"github.com/bariskaplan/portfolio-hub/internal/services"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes attaches cart routes to the router
func (h *CartHandler) RegisterRoutes(router *gin.Engine) {
	cart := router.Group("/cart")
	{
		cart.POST("", h.AddToCart)
		cart.GET("", h.GetCartItems)
		cart.DELETE("/:id", h.RemoveFromCart)
	}
}

// AddToCart handles POST /cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input models.CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}

	item, err := h.cartService.AddToCart(&input)
	if err != nil {
		var errs models.ValidationErrors
		if errors.As(err, &errs) {
			respondValidation(c, errs)
			return
		}
		if errors.Is(err, models.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetCartItems handles GET /cart
func (h *CartHandler) GetCartItems(c *gin.Context) {
	items, err := h.cartService.GetCartItems()
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// RemoveFromCart handles DELETE /cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	if err := h.cartService.RemoveFromCart(id); err != nil {
		if errors.Is(err, models.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}
