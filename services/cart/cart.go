package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"drepto/models"
	"drepto/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrIndexOutOfRange = errors.New("cart index out of range")

// Decode parses a stored cart. Anything that is not a JSON array of items,
// including an empty string, yields an empty cart.
func Decode(raw string) []models.CartItem {
	if raw == "" {
		return []models.CartItem{}
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []models.CartItem{}
	}
	return items
}

// Total sums every price that parses as a number. Unparseable prices stay
// display-only and add nothing.
func Total(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		if p, ok := utils.ParsePrice(it.Price); ok {
			sum += p
		}
	}
	return sum
}

// Cart is one open view of the stored cart. Several carts may share a store key
// and bus; each reloads when another one publishes a change.
type Cart struct {
	mu     sync.Mutex
	id     string
	key    string
	items  []models.CartItem
	store  Store
	bus    *Bus
	unsub  func()
	logger *zap.Logger
}

// Open rehydrates the cart stored under key and starts listening for changes.
func Open(ctx context.Context, store Store, bus *Bus, key string, logger *zap.Logger) (*Cart, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cart{id: uuid.New().String(), key: key, store: store, bus: bus, logger: logger}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	if bus != nil {
		c.unsub = bus.Subscribe(c.onEvent)
	}
	return c, nil
}

func (c *Cart) onEvent(e Event) {
	if e.Name != EventCartUpdated || e.Key != c.key || e.Origin == c.id {
		return
	}
	if err := c.Reload(context.Background()); err != nil {
		c.logger.Warn("Failed to reload cart after update", zap.String("key", c.key), zap.Error(err))
	}
}

// Reload replaces the in-memory items with the stored ones.
func (c *Cart) Reload(ctx context.Context) error {
	raw, _, err := c.store.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}
	items := Decode(raw)
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// Items returns a copy of the cart lines in order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Count is the number of lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums the parseable prices.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Total(c.items)
}

// Add appends item.
func (c *Cart) Add(ctx context.Context, item models.CartItem) error {
	return c.mutate(ctx, func(items []models.CartItem) ([]models.CartItem, error) {
		return append(items, item), nil
	})
}

// Remove deletes the line at index.
func (c *Cart) Remove(ctx context.Context, index int) error {
	return c.mutate(ctx, func(items []models.CartItem) ([]models.CartItem, error) {
		if index < 0 || index >= len(items) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(items))
		}
		return slices.Delete(items, index, index+1), nil
	})
}

func (c *Cart) mutate(ctx context.Context, change func([]models.CartItem) ([]models.CartItem, error)) error {
	c.mu.Lock()
	next, err := change(slices.Clone(c.items))
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if err := save(ctx, c.store, c.key, next); err != nil {
		c.mu.Unlock()
		return err
	}
	c.items = next
	c.mu.Unlock()

	c.logger.Debug("Cart updated", zap.String("key", c.key), zap.Int("items", len(next)))
	if c.bus != nil {
		c.bus.Publish(Event{Name: EventCartUpdated, Key: c.key, Origin: c.id})
	}
	return nil
}

// Close stops listening for changes. The stored cart is kept.
func (c *Cart) Close() {
	if c.unsub != nil {
		c.unsub()
	}
}

func save(ctx context.Context, store Store, key string, items []models.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("failed to write cart: %w", err)
	}
	return nil
}

// AddToStored appends item straight to storage and announces the change. The
// medicines catalog page uses it without holding an open cart.
func AddToStored(ctx context.Context, store Store, bus *Bus, key string, item models.CartItem) error {
	raw, _, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}
	items := append(Decode(raw), item)
	if err := save(ctx, store, key, items); err != nil {
		return err
	}
	if bus != nil {
		bus.Publish(Event{Name: EventCartUpdated, Key: key})
	}
	return nil
}
