package domain

import (
	"github.com/innovationlabs/trackify/internal/rates"
)

type ServiceKind string

const (
	KindPrinter3D       ServiceKind = "printer_3d"
	KindSoldering       ServiceKind = "soldering"
	KindDocumentPrinter ServiceKind = "document_printer"
	KindToolsComponents ServiceKind = "tools_components"
)

// UsageRequest describes service consumption submitted for pricing. Exactly
// one of the kind-specific payloads must be set, matching ServiceKind.
type UsageRequest struct {
	ServiceKind     ServiceKind           `json:"service_kind"`
	Printer3D       *Printer3DUsage       `json:"printer_3d,omitempty"`
	Soldering       *SolderingUsage       `json:"soldering,omitempty"`
	DocumentPrinter *DocumentPrinterUsage `json:"document_printer,omitempty"`
	ToolsComponents *ToolsComponentsUsage `json:"tools_components,omitempty"`
}

type Printer3DUsage struct {
	FilamentWeightGrams float64            `json:"filament_weight_grams"`
	FilamentType        rates.FilamentType `json:"filament_type"`
	PrintingHours       float64            `json:"printing_hours"`
}

type SolderingUsage struct {
	HoursUsed float64 `json:"hours_used"`
}

type PrintJob struct {
	Pages     int             `json:"pages"`
	Copies    int             `json:"copies"`
	PaperSize rates.PaperSize `json:"paper_size"`
	ColorMode rates.ColorMode `json:"color_mode"`
	PaperType rates.PaperType `json:"paper_type"`
}

type DocumentPrinterUsage struct {
	Jobs    []PrintJob `json:"jobs"`
	Binding bool       `json:"binding"`
}

type Selection struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type ToolsComponentsUsage struct {
	Selections []Selection `json:"selections"`
}

// LineItem is one priced component of a breakdown. Amount is centavos.
type LineItem struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Breakdown is the itemized result of a calculation. Total always equals the
// exact sum of the line item amounts; repeated quotes on identical input and
// rate table are identical, line order included.
type Breakdown struct {
	ServiceKind ServiceKind `json:"service_kind"`
	Description string      `json:"description"`
	LineItems   []LineItem  `json:"line_items"`
	Total       int64       `json:"total"`
}
