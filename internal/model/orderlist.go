package model

// OrderItemType tags entries in the combined render list.
type OrderItemType string

const (
	OrderItemModule  OrderItemType = "module"
	OrderItemDivider OrderItemType = "divider"
	OrderItemGroup   OrderItemType = "group"
)

// OrderListItem is one row of the flattened render projection. Identity is
// (Type, ID) and must stay stable across re-projections so consumers can key
// rows without spurious remounts.
type OrderListItem struct {
	Type OrderItemType `json:"type"`
	ID   string        `json:"id"`
}

// Key returns the stable identity string for the item.
func (i OrderListItem) Key() string {
	return string(i.Type) + ":" + i.ID
}
