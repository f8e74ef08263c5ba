package domain

import "time"

type ToolStatus string

const (
	ToolAvailable   ToolStatus = "available"
	ToolInUse       ToolStatus = "in-use"
	ToolMaintenance ToolStatus = "maintenance"
	ToolBroken      ToolStatus = "broken"
)

// Tool is a rentable/purchasable workshop tool.
type Tool struct {
	ID          string     `json:"tool_id" gorm:"column:tool_id;primaryKey"`
	Name        string     `json:"name" gorm:"type:text;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Category    string     `json:"category" gorm:"type:text"`
	Status      ToolStatus `json:"status" gorm:"type:text;not null"`
	Location    string     `json:"location" gorm:"type:text"`
	UnitPrice   int64      `json:"unit_price" gorm:"not null"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"not null"`
}

func (Tool) TableName() string { return "tools" }

// Component is a consumable electronic part tracked by quantity.
type Component struct {
	ID                string    `json:"component_id" gorm:"column:component_id;primaryKey"`
	Name              string    `json:"name" gorm:"type:text;not null"`
	Description       string    `json:"description" gorm:"type:text"`
	Category          string    `json:"category" gorm:"type:text"`
	Quantity          int64     `json:"quantity" gorm:"not null"`
	Unit              string    `json:"unit" gorm:"type:text"`
	LowStockThreshold int64     `json:"low_stock_threshold" gorm:"not null;default:0"`
	StorageLocation   string    `json:"storage_location" gorm:"type:text"`
	Supplier          string    `json:"supplier" gorm:"type:text"`
	UnitPrice         int64     `json:"unit_price" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"not null"`
}

func (Component) TableName() string { return "components" }

// Item is the pricing-facing projection of a tool or component.
type Item struct {
	ID            string `json:"item_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	UnitPrice     int64  `json:"unit_price"`
	StockQuantity int64  `json:"stock_quantity"`
}
