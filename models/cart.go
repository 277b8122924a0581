package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ItemID is a cart line id as the storefront wrote it. Catalog pages and
// quick-add write numbers, older entries may carry strings; either form is
// written back unchanged.
type ItemID struct {
	value   string
	numeric bool
}

// NumericID is an id stored as a JSON number.
func NumericID(n int64) ItemID {
	return ItemID{value: strconv.FormatInt(n, 10), numeric: true}
}

// TextID is an id stored as a JSON string.
func TextID(s string) ItemID {
	return ItemID{value: s}
}

func (id ItemID) String() string { return id.value }

// IsNumeric reports whether the id is written as a JSON number.
func (id ItemID) IsNumeric() bool { return id.numeric }

func (id ItemID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ItemID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = TextID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("cart item id: %w", err)
	}
	*id = ItemID{value: n.String(), numeric: true}
	return nil
}

// CartItem is one line in the patient cart, stored exactly as the storefront writes it.
type CartItem struct {
	ID    ItemID `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}
