package seed

import (
	"time"

	catalogdomain "github.com/innovationlabs/trackify/internal/catalog/domain"
	"gorm.io/gorm"
)

// EnsureDefaultCatalog populates an empty catalog with the lab's standard
// tools and components so a fresh install is browsable immediately.
func EnsureDefaultCatalog(conn *gorm.DB) error {
	var toolCount int64
	if err := conn.Raw(`SELECT COUNT(1) FROM tools`).Scan(&toolCount).Error; err != nil {
		return err
	}
	if toolCount == 0 {
		now := time.Now().UTC()
		for i := range defaultTools {
			defaultTools[i].CreatedAt = now
			defaultTools[i].UpdatedAt = now
		}
		if err := conn.Create(&defaultTools).Error; err != nil {
			return err
		}
	}

	var componentCount int64
	if err := conn.Raw(`SELECT COUNT(1) FROM components`).Scan(&componentCount).Error; err != nil {
		return err
	}
	if componentCount == 0 {
		now := time.Now().UTC()
		for i := range defaultComponents {
			defaultComponents[i].CreatedAt = now
			defaultComponents[i].UpdatedAt = now
		}
		if err := conn.Create(&defaultComponents).Error; err != nil {
			return err
		}
	}

	return nil
}

var defaultTools = []catalogdomain.Tool{
	{ID: "tool_solder01", Name: "Professional Soldering Station", Category: "Electronics", Status: catalogdomain.ToolAvailable, Location: "Bench A1", UnitPrice: 250000},
	{ID: "tool_multim01", Name: "Digital Multimeter", Category: "Electronics", Status: catalogdomain.ToolAvailable, Location: "Bench A2", UnitPrice: 120000},
	{ID: "tool_oscill01", Name: "Oscilloscope", Category: "Electronics", Status: catalogdomain.ToolAvailable, Location: "Bench A3", UnitPrice: 850000},
	{ID: "tool_ender301", Name: "Ender 3 Pro 3D Printer", Category: "3D Printing", Status: catalogdomain.ToolAvailable, Location: "Print Corner", UnitPrice: 1200000},
	{ID: "tool_screwd01", Name: "Precision Screwdriver Set", Category: "Hand Tools", Status: catalogdomain.ToolAvailable, Location: "Drawer B1", UnitPrice: 85000},
	{ID: "tool_calip01", Name: "Digital Calipers", Category: "Measurement", Status: catalogdomain.ToolAvailable, Location: "Drawer B2", UnitPrice: 65000},
	{ID: "tool_drill01", Name: "Cordless Drill Driver", Category: "Power Tools", Status: catalogdomain.ToolAvailable, Location: "Cabinet C1", UnitPrice: 320000},
}

var defaultComponents = []catalogdomain.Component{
	{ID: "comp_arduino01", Name: "Arduino Uno R3", Category: "Microcontrollers", Quantity: 25, Unit: "pcs", LowStockThreshold: 5, StorageLocation: "Shelf D1", UnitPrice: 68000},
	{ID: "comp_esp3201", Name: "ESP32 DevKit", Category: "Microcontrollers", Quantity: 15, Unit: "pcs", LowStockThreshold: 3, StorageLocation: "Shelf D1", UnitPrice: 45000},
	{ID: "comp_resist01", Name: "Resistor Kit 1/4W", Category: "Passive", Quantity: 40, Unit: "kits", LowStockThreshold: 10, StorageLocation: "Shelf D2", UnitPrice: 15000},
	{ID: "comp_jumper01", Name: "Jumper Wire Set", Category: "Wiring", Quantity: 30, Unit: "sets", LowStockThreshold: 8, StorageLocation: "Shelf D2", UnitPrice: 8000},
	{ID: "comp_breadb01", Name: "Solderless Breadboard", Category: "Prototyping", Quantity: 20, Unit: "pcs", LowStockThreshold: 5, StorageLocation: "Shelf D3", UnitPrice: 12000},
}
