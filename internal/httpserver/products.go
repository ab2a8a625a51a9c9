package httpserver

import (
	"net/http"
	"strconv"

	"ecommerce/internal/domain"
	productsvc "ecommerce/internal/service/product"
	"github.com/gin-gonic/gin"
)

// listProductsHandler serves both the public catalog (published products
// only) and the admin listing (everything).
func listProductsHandler(products ProductService, includeUnpublished bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePagination(c)
		if err != nil {
			respondError(c, err)
			return
		}
		var categoryID *int64
		if raw := c.Query("categoryId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id < 1 {
				respondError(c, &domain.ValidationError{Reason: "invalid categoryId"})
				return
			}
			categoryID = &id
		}
		items, err := products.List(c.Request.Context(), !includeUnpublished, categoryID, page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "products", items)
	}
}

func getProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		p, err := products.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "product", p)
	}
}

func createProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		p, err := products.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "product created", p)
	}
}

func updateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		p, err := products.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "product updated", p)
	}
}

func deleteProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		if err := products.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "product deleted", nil)
	}
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

func restockProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		var in restockRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		p, err := products.Restock(c.Request.Context(), id, in.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "product restocked", p)
	}
}

type addImageRequest struct {
	ImageURL string `json:"imageUrl"`
}

func addProductImageHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		var in addImageRequest
		if err := c.ShouldBindJSON(&in); err != nil || in.ImageURL == "" {
			respondError(c, &domain.ValidationError{Reason: "imageUrl required"})
			return
		}
		img, err := products.AddImage(c.Request.Context(), id, in.ImageURL)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "image added", img)
	}
}
