package httpserver

import (
	"errors"
	"net/http"

	"ecommerce/internal/domain"
	"github.com/gin-gonic/gin"
)

func getWishlistHandler(wishlists WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := wishlists.Get(c.Request.Context(), currentPrincipal(c).UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "wishlist", w)
	}
}

func addWishlistHandler(wishlists WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := pathID(c, "productId")
		if err != nil {
			respondError(c, err)
			return
		}
		if err := wishlists.Add(c.Request.Context(), currentPrincipal(c).UserID, productID); err != nil {
			// Re-adding a saved product is a 400 on this endpoint; 409 is
			// reserved for the review uniqueness conflict.
			var dup *domain.DuplicateError
			if errors.As(err, &dup) {
				c.AbortWithStatusJSON(http.StatusBadRequest, envelope{Message: dup.Error()})
				return
			}
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "product added to wishlist", nil)
	}
}

func removeWishlistHandler(wishlists WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := pathID(c, "productId")
		if err != nil {
			respondError(c, err)
			return
		}
		if err := wishlists.Remove(c.Request.Context(), currentPrincipal(c).UserID, productID); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "product removed from wishlist", nil)
	}
}
