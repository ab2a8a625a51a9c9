package httpserver

import (
	"net/http"

	"ecommerce/internal/domain"
	cartsvc "ecommerce/internal/service/cart"
	"github.com/gin-gonic/gin"
)

func getCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Get(c.Request.Context(), currentPrincipal(c).UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "cart", cart)
	}
}

type putCartRequest struct {
	Items []cartsvc.ItemInput `json:"cartItems"`
}

// putCartHandler replaces the cart's entire item set with the request body.
func putCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in putCartRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		cart, err := carts.AddOrReplace(c.Request.Context(), currentPrincipal(c).UserID, in.Items)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "cart updated", cart)
	}
}

func deleteCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Delete(c.Request.Context(), currentPrincipal(c).UserID); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "cart deleted", nil)
	}
}
