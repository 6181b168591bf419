package handler

import "github.com/receipt-rewards-ledger/internal/domain/receipt"

// ReceiptItemRequest represents a single item on a submitted receipt
type ReceiptItemRequest struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// ProcessReceiptRequest represents a receipt submitted for scoring.
// Field-level format checks belong to the domain validator so that each
// grammar violation keeps its distinct reason.
type ProcessReceiptRequest struct {
	Retailer     string               `json:"retailer"`
	PurchaseDate string               `json:"purchaseDate"`
	PurchaseTime string               `json:"purchaseTime"`
	Items        []ReceiptItemRequest `json:"items"`
	Total        string               `json:"total"`
}

// toDomain maps the request DTO to the domain receipt
func (r *ProcessReceiptRequest) toDomain() *receipt.Receipt {
	items := make([]receipt.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, receipt.Item{
			ShortDescription: item.ShortDescription,
			Price:            item.Price,
		})
	}

	return &receipt.Receipt{
		Retailer:     r.Retailer,
		PurchaseDate: r.PurchaseDate,
		PurchaseTime: r.PurchaseTime,
		Items:        items,
		Total:        r.Total,
	}
}

// ProcessReceiptResponse carries the identifier assigned to a processed receipt
type ProcessReceiptResponse struct {
	ID string `json:"id"`
}

// PointsResponse carries the points awarded to a receipt
type PointsResponse struct {
	Points int64 `json:"points"`
}
