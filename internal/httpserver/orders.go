package httpserver

import (
	"net/http"
	"strings"

	"ecommerce/internal/domain"
	ordersvc "ecommerce/internal/service/order"
	"github.com/gin-gonic/gin"
)

// checkoutHandler converts the caller's cart into an order.
func checkoutHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		o, err := orders.Checkout(c.Request.Context(), currentPrincipal(c).UserID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "order placed", o)
	}
}

func listOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePagination(c)
		if err != nil {
			respondError(c, err)
			return
		}
		items, err := orders.ListForUser(c.Request.Context(), currentPrincipal(c).UserID, page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "orders", items)
	}
}

func listAllOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePagination(c)
		if err != nil {
			respondError(c, err)
			return
		}
		items, err := orders.ListAll(c.Request.Context(), page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "orders", items)
	}
}

// getOrderHandler lets an order be read by its owner, or by an admin.
func getOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		o, err := orders.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		p := currentPrincipal(c)
		if o.UserID != p.UserID && !p.IsAdmin() {
			respondError(c, &domain.NotFoundError{Entity: "Order", ID: id})
			return
		}
		respond(c, http.StatusOK, "order", o)
	}
}

func setOrderStatusHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		status := strings.TrimSpace(c.Query("new_status"))
		o, err := orders.SetStatus(c.Request.Context(), id, status)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "order status updated", o)
	}
}

func deleteOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		if err := orders.Delete(c.Request.Context(), id, currentPrincipal(c).UserID); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "order deleted", nil)
	}
}
