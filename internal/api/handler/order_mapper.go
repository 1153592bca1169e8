package handler

import (
	"github.com/formalshoes/store-api/internal/core/domain"
	"github.com/formalshoes/store-api/internal/core/ports"
)

// --- Request to service input ---

func toCreateOrderInput(req createOrderRequest) ports.CreateOrderInput {
	items := make([]ports.CartItemInput, len(req.Items))
	for i, line := range req.Items {
		items[i] = ports.CartItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
		}
	}
	return ports.CreateOrderInput{
		Items:         items,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Address:       req.Address,
	}
}

// --- Service result to HTTP response ---

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			Image:     item.Image,
		}
	}
	return orderResponse{
		ID:            o.ID,
		Items:         items,
		Subtotal:      o.Subtotal,
		Shipping:      o.Shipping,
		Total:         o.Total,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Address:       o.Address,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.UTC(),
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}
