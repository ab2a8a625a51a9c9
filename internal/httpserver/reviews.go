package httpserver

import (
	"net/http"

	"ecommerce/internal/domain"
	reviewsvc "ecommerce/internal/service/review"
	"github.com/gin-gonic/gin"
)

func createReviewHandler(reviews ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in reviewsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		r, err := reviews.Create(c.Request.Context(), currentPrincipal(c).UserID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "review created", r)
	}
}

func listProductReviewsHandler(reviews ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		items, err := reviews.ListForProduct(c.Request.Context(), productID)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "reviews", items)
	}
}

// listUserReviewsHandler serves a user's reviews to that user, or to an admin.
func listUserReviewsHandler(reviews ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		p := currentPrincipal(c)
		if userID != p.UserID && !p.IsAdmin() {
			respondError(c, &domain.ForbiddenError{Reason: "cannot view another user's reviews"})
			return
		}
		items, err := reviews.ListForUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "reviews", items)
	}
}

func listAllReviewsHandler(reviews ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePagination(c)
		if err != nil {
			respondError(c, err)
			return
		}
		items, err := reviews.ListAll(c.Request.Context(), page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "reviews", items)
	}
}
