package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
	"github.com/fred1edm/jaguarexpress/internal/metrics"
)

// cartBlob is the persisted shape of the cart under keyCart.
type cartBlob struct {
	Items    []domain.CartItem `json:"items"`
	Merchant *domain.Merchant  `json:"negocio"`
	Total    decimal.Decimal   `json:"total"`
}

// CartStore owns the in-progress order draft. A non-empty cart is bound
// to exactly one merchant; the binding clears when the last line is
// removed. The total is recomputed from the lines after every mutation.
//
// State transitions are the pure functions in the domain package; this
// store adds the merchant constraint, persistence write-through and
// user notices on top.
type CartStore struct {
	mu       sync.Mutex
	storage  ports.Storage
	notifier ports.Notifier
	log      zerolog.Logger

	items    []domain.CartItem
	merchant *domain.Merchant
	total    decimal.Decimal
}

// NewCartStore builds a cart and rehydrates any persisted draft. A
// malformed blob is discarded silently, leaving an empty cart.
func NewCartStore(storage ports.Storage, notifier ports.Notifier, log zerolog.Logger) *CartStore {
	c := &CartStore{storage: storage, notifier: notifier, log: log, total: decimal.Zero}
	c.rehydrate()
	return c
}

// AddItem adds quantity of product to the draft. If the cart is already
// bound to a different merchant the call is rejected with a notice and
// no state change. An existing line for the product is incremented and
// its notes replaced; a new line on an empty cart binds the merchant.
func (c *CartStore) AddItem(product domain.Product, quantity int, notes string) {
	if quantity <= 0 {
		c.log.Warn().Str("product_id", product.ID).Int("quantity", quantity).Msg("ignoring non-positive quantity")
		return
	}

	c.mu.Lock()
	if c.merchant != nil && c.merchant.ID != product.MerchantID {
		c.mu.Unlock()
		metrics.CartMutationsTotal.WithLabelValues("rejected").Inc()
		c.notifier.Error("Solo puedes agregar productos del mismo negocio")
		return
	}

	wasEmpty := len(c.items) == 0
	c.items = domain.MergeCartLine(c.items, uuid.NewString(), product, quantity, notes)
	if wasEmpty {
		c.merchant = bindMerchant(product)
	}
	c.total = domain.CartTotal(c.items)
	c.persist()
	c.mu.Unlock()

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	c.notifier.Success("Producto agregado al carrito")
}

// RemoveItem removes the line matching productID. When the cart becomes
// empty the merchant binding clears.
func (c *CartStore) RemoveItem(productID string) {
	c.mu.Lock()
	c.items = domain.RemoveCartLine(c.items, productID)
	if len(c.items) == 0 {
		c.merchant = nil
	}
	c.total = domain.CartTotal(c.items)
	c.persist()
	c.mu.Unlock()

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	c.notifier.Success("Producto eliminado del carrito")
}

// UpdateQuantity replaces the line's quantity. A quantity <= 0 behaves
// exactly as RemoveItem.
func (c *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	c.items = domain.SetCartQuantity(c.items, productID, quantity)
	c.total = domain.CartTotal(c.items)
	c.persist()
	c.mu.Unlock()

	metrics.CartMutationsTotal.WithLabelValues("update_quantity").Inc()
}

// ClearCart resets the draft to empty with no merchant binding.
func (c *CartStore) ClearCart() {
	c.mu.Lock()
	c.items = nil
	c.merchant = nil
	c.total = decimal.Zero
	c.persist()
	c.mu.Unlock()

	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
}

// ItemCount is the sum of line quantities, not the number of lines.
func (c *CartStore) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.CartItemCount(c.items)
}

// CanAddProduct reports whether a product of merchantID may enter the
// cart: true when the cart is unbound or already bound to merchantID.
func (c *CartStore) CanAddProduct(merchantID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.merchant == nil || c.merchant.ID == merchantID
}

// Items returns a copy of the current lines.
func (c *CartStore) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Merchant returns a copy of the bound merchant, or nil.
func (c *CartStore) Merchant() *domain.Merchant {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.merchant == nil {
		return nil
	}
	m := *c.merchant
	return &m
}

// MerchantID returns the bound merchant's ID, or "".
func (c *CartStore) MerchantID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.merchant == nil {
		return ""
	}
	return c.merchant.ID
}

func (c *CartStore) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// CheckoutInput assembles the typed POST /pedidos payload from the
// current draft. Returns domain.ErrEmptyCart when there is nothing to
// check out.
func (c *CartStore) CheckoutInput(deliveryAddress string, method domain.PaymentMethod, notes string) (ports.CreateOrderInput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 || c.merchant == nil {
		return ports.CreateOrderInput{}, domain.ErrEmptyCart
	}

	lines := make([]ports.OrderLine, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, ports.OrderLine{ProductID: it.Product.ID, Quantity: it.Quantity, Notes: it.Notes})
	}
	return ports.CreateOrderInput{
		MerchantID:      c.merchant.ID,
		Lines:           lines,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   method,
		Notes:           notes,
	}, nil
}

// persist writes the cart blob through to durable storage. Callers must
// hold c.mu.
func (c *CartStore) persist() {
	blob := cartBlob{Items: c.items, Merchant: c.merchant, Total: c.total}
	raw, err := json.Marshal(blob)
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to serialize cart")
		return
	}
	if err := c.storage.Set(context.Background(), keyCart, string(raw)); err != nil {
		c.log.Warn().Err(err).Msg("failed to persist cart")
	}
}

// rehydrate loads a previously persisted draft, discarding anything
// malformed.
func (c *CartStore) rehydrate() {
	ctx := context.Background()
	raw, err := c.storage.Get(ctx, keyCart)
	if err != nil {
		return
	}

	var blob cartBlob
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		c.log.Warn().Err(err).Msg("stored cart malformed, discarding")
		if derr := c.storage.Delete(ctx, keyCart); derr != nil {
			c.log.Warn().Err(derr).Msg("failed to discard malformed cart")
		}
		return
	}

	c.items = blob.Items
	c.merchant = blob.Merchant
	// Recompute rather than trust the persisted total.
	c.total = domain.CartTotal(c.items)
	if len(c.items) == 0 {
		c.merchant = nil
	}
}

// bindMerchant picks the merchant to bind from the product: the full
// embedded record when present, else a stub carrying the ID.
func bindMerchant(p domain.Product) *domain.Merchant {
	if p.Merchant != nil {
		m := *p.Merchant
		return &m
	}
	return &domain.Merchant{ID: p.MerchantID}
}
