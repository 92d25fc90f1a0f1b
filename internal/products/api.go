package products

import (
	"context"
	"fmt"

	"github.com/jask/storefront/internal/httpx"
)

// Product is the catalog item shape shared by the list and detail endpoints.
// The list payload omits some fields; the zero values are fine there.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Stock       int      `json:"stock"`
	Brand       string   `json:"brand,omitempty"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

type ListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// API talks to the product endpoints.
type API struct {
	Client *httpx.Client
}

func (a *API) List(ctx context.Context) (ListResponse, error) {
	var resp ListResponse
	if err := a.Client.GetJSON(ctx, "/products", &resp); err != nil {
		return ListResponse{}, err
	}
	return resp, nil
}

func (a *API) Get(ctx context.Context, id int) (Product, error) {
	var resp Product
	if err := a.Client.GetJSON(ctx, fmt.Sprintf("/products/%d", id), &resp); err != nil {
		return Product{}, err
	}
	return resp, nil
}
