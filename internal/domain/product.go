package domain

import "time"

type Product struct {
	ID                 int64          `json:"id"`
	CategoryID         int64          `json:"categoryId"`
	Title              string         `json:"title"`
	Description        string         `json:"description,omitempty"`
	Brand              string         `json:"brand,omitempty"`
	Price              float64        `json:"price"`
	DiscountPercentage float64        `json:"discountPercentage"`
	Stock              int            `json:"stock"`
	IsAvailable        bool           `json:"isAvailable"`
	IsPublished        bool           `json:"isPublished"`
	ThumbnailURL       string         `json:"thumbnail,omitempty"`
	AverageRating      float64        `json:"averageRating"`
	ReviewCount        int            `json:"reviewCount"`
	Images             []ProductImage `json:"images,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
}

type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	ImageURL  string `json:"imageUrl"`
}

// DiscountedPrice is the unit price after applying the flat percentage
// discount. Cart subtotals are frozen from this value at add time.
func (p Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.DiscountPercentage/100)
}
