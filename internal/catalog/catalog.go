package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	ErrEmpty             = errors.New("catalog has no items")
	ErrMissingSymbol     = errors.New("catalog record has no symbol")
	ErrUnsupportedSource = errors.New("unsupported catalog source")
)

// Record is one entry of the element dataset as it is stored on disk.
type Record struct {
	Number   int    `mapstructure:"numero" json:"numero"`
	Symbol   string `mapstructure:"simbolo" json:"simbolo"`
	Name     string `mapstructure:"nome" json:"nome"`
	Category string `mapstructure:"categoria" json:"categoria"`
}

// Item is a tagged item: what a single block of a piece is skinned with.
type Item struct {
	Number   int    `json:"number"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    Color  `json:"color"`
}

func itemFromRecord(r Record) Item {
	return Item{
		Number:   r.Number,
		Symbol:   strings.TrimSpace(r.Symbol),
		Name:     r.Name,
		Category: r.Category,
		Color:    ColorFor(r.Category),
	}
}

// Catalog is the ordered, read-only sequence of items pieces are built from.
type Catalog struct {
	items []Item
	raw   []byte
}

// New builds a catalog from already decoded items. Its Raw form is the items
// encoded as records.
func New(items []Item) (*Catalog, error) {
	c, err := newCatalog(items)
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(c.items))
	for i, item := range c.items {
		records[i] = Record{Number: item.Number, Symbol: item.Symbol, Name: item.Name, Category: item.Category}
	}
	c.raw, err = json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog records: %w", err)
	}
	return c, nil
}

func newCatalog(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{items: make([]Item, len(items))}
	copy(c.items, items)
	return c, nil
}

// Decode parses a JSON list of records.
func Decode(data []byte) (*Catalog, error) {
	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	var records []Record
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &records,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog records: %w", err)
	}

	items := make([]Item, 0, len(records))
	for i, r := range records {
		item := itemFromRecord(r)
		if item.Symbol == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingSymbol)
		}
		items = append(items, item)
	}

	c, err := newCatalog(items)
	if err != nil {
		return nil, err
	}
	c.raw = data
	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at index i, wrapping around in both directions.
func (c *Catalog) At(i int) Item {
	n := len(c.items)
	i %= n
	if i < 0 {
		i += n
	}
	return c.items[i]
}

// Items returns a copy of all items in order.
func (c *Catalog) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Lookup finds an item by symbol, ignoring case.
func (c *Catalog) Lookup(symbol string) (Item, bool) {
	for _, item := range c.items {
		if strings.EqualFold(item.Symbol, symbol) {
			return item, true
		}
	}
	return Item{}, false
}

// Raw returns the JSON the catalog was decoded from.
func (c *Catalog) Raw() []byte {
	return c.raw
}

// Cursor hands out catalog items in round-robin order. It only moves forward.
type Cursor struct {
	catalog *Catalog
	index   int
}

// Cursor returns a new cursor positioned at the first item.
func (c *Catalog) Cursor() *Cursor {
	return &Cursor{catalog: c}
}

// Next returns the item under the cursor and advances it.
func (cur *Cursor) Next() Item {
	item := cur.catalog.items[cur.index]
	cur.index++
	if cur.index >= len(cur.catalog.items) {
		cur.index = 0
	}
	return item
}

// Index is the position of the next item to be handed out.
func (cur *Cursor) Index() int {
	return cur.index
}
