package httpserver

import (
	"net/http"

	"ecommerce/internal/domain"
	categorysvc "ecommerce/internal/service/category"
	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePagination(c)
		if err != nil {
			respondError(c, err)
			return
		}
		items, err := categories.List(c.Request.Context(), page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "categories", items)
	}
}

func getCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		cat, err := categories.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "category", cat)
	}
}

func createCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		cat, err := categories.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "category created", cat)
	}
}

func updateCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		var in categorysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		cat, err := categories.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "category updated", cat)
	}
}

func deleteCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		if err := categories.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "category deleted", nil)
	}
}
