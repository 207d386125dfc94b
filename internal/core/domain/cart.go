package domain

import "github.com/shopspring/decimal"

// CartItem is one line of the in-progress order draft. Lines are unique
// per product; Subtotal is always Price × Quantity, never carried over.
type CartItem struct {
	ID       string          `json:"id"`
	Product  Product         `json:"producto"`
	Quantity int             `json:"cantidad"`
	Notes    string          `json:"observaciones,omitempty"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartTotal recomputes the cart total as the exact sum of Price×Quantity
// over all lines. Callers must use this after every mutation: the total
// is never drifted incrementally.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// MergeCartLine returns the item slice after adding quantity of product.
// An existing line for the same product is incremented (its notes
// replaced by the latest value); otherwise a new line is appended with
// the given line ID. The function is pure: the input slice is not
// mutated.
func MergeCartLine(items []CartItem, lineID string, p Product, quantity int, notes string) []CartItem {
	out := make([]CartItem, 0, len(items)+1)
	merged := false
	for _, it := range items {
		if it.Product.ID == p.ID {
			it.Quantity += quantity
			it.Notes = notes
			it.Subtotal = it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			merged = true
		}
		out = append(out, it)
	}
	if !merged {
		out = append(out, CartItem{
			ID:       lineID,
			Product:  p,
			Quantity: quantity,
			Notes:    notes,
			Subtotal: p.Price.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}
	return out
}

// RemoveCartLine returns the item slice without the line matching
// productID. The input slice is not mutated.
func RemoveCartLine(items []CartItem, productID string) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.Product.ID != productID {
			out = append(out, it)
		}
	}
	return out
}

// SetCartQuantity returns the item slice with the matching line set to
// quantity and its subtotal recomputed. Quantities <= 0 must be handled
// by the caller as a removal.
func SetCartQuantity(items []CartItem, productID string, quantity int) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.Product.ID == productID {
			it.Quantity = quantity
			it.Subtotal = it.Product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		}
		out = append(out, it)
	}
	return out
}

// CartItemCount is the sum of line quantities, not the number of lines.
func CartItemCount(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
