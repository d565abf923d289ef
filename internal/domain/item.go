package domain

import (
	"fmt"
	"strings"
)

// Item is a named, valued thing that recipes consume and produce.
// The id is fixed at construction; Name and SellValue may be edited.
type Item struct {
	id        string
	Name      string
	SellValue int
}

// ItemRecord is the flat serialized form of an Item.
type ItemRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SellValue int    `json:"sell_value"`
}

// NewItem validates and creates an Item.
func NewItem(id, name string, sellValue int) (*Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invalidValue("id", "item id must not be empty")
	}
	if sellValue < 0 {
		return nil, invalidValue("sell_value", "sell value for %s must not be negative, got %d", id, sellValue)
	}
	return &Item{id: id, Name: name, SellValue: sellValue}, nil
}

// ID returns the item's stable identifier.
func (i *Item) ID() string {
	return i.id
}

// Clone returns an independent copy of the item.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// Record converts the item to its serialized form.
func (i *Item) Record() ItemRecord {
	return ItemRecord{ID: i.id, Name: i.Name, SellValue: i.SellValue}
}

// ItemFromRecord rebuilds an Item from its serialized form.
func ItemFromRecord(r ItemRecord) (*Item, error) {
	return NewItem(r.ID, r.Name, r.SellValue)
}

// Iron (ID: iron, Sell value: 10)
func (i *Item) String() string {
	return fmt.Sprintf("%s (ID: %s, Sell value: %d)", i.Name, i.id, i.SellValue)
}

// Item(id='iron', name='Iron', sell_value=10)
func (i *Item) GoString() string {
	return fmt.Sprintf("Item(id='%s', name='%s', sell_value=%d)", i.id, i.Name, i.SellValue)
}
