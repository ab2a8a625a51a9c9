package httpserver

import (
	"net/http"

	"ecommerce/internal/domain"
	"github.com/gin-gonic/gin"
)

// uploadHandler accepts a multipart file and returns the URL it is served
// under. The URL is what gets attached to products and categories.
func uploadHandler(uploads Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			respondError(c, &domain.ValidationError{Reason: "file field required"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		defer f.Close()

		url, err := uploads.Save(fileHeader.Filename, f)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "file uploaded", gin.H{"url": url})
	}
}
