package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	catalogdomain "github.com/innovationlabs/trackify/internal/catalog/domain"
	pricingdomain "github.com/innovationlabs/trackify/internal/pricing/domain"
	"github.com/innovationlabs/trackify/internal/rates"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Rates   *rates.Table
	Catalog catalogdomain.Service
}

type Service struct {
	log     *zap.Logger
	rates   *rates.Table
	catalog catalogdomain.Service
}

func New(p Params) pricingdomain.Service {
	return &Service{
		log:     p.Log.Named("pricing.service"),
		rates:   p.Rates,
		catalog: p.Catalog,
	}
}

// Quote validates the request and prices it. Line items are computed and
// summed in a fixed order per kind so identical requests produce identical
// breakdowns.
func (s *Service) Quote(ctx context.Context, req pricingdomain.UsageRequest) (*pricingdomain.Breakdown, error) {
	switch req.ServiceKind {
	case pricingdomain.KindPrinter3D:
		if req.Printer3D == nil {
			return nil, pricingdomain.ErrMissingUsage
		}
		return s.quotePrinter3D(*req.Printer3D)
	case pricingdomain.KindSoldering:
		if req.Soldering == nil {
			return nil, pricingdomain.ErrMissingUsage
		}
		return s.quoteSoldering(*req.Soldering)
	case pricingdomain.KindDocumentPrinter:
		if req.DocumentPrinter == nil {
			return nil, pricingdomain.ErrMissingUsage
		}
		return s.quoteDocumentPrinter(*req.DocumentPrinter)
	case pricingdomain.KindToolsComponents:
		if req.ToolsComponents == nil {
			return nil, pricingdomain.ErrMissingUsage
		}
		return s.quoteToolsComponents(ctx, *req.ToolsComponents)
	default:
		return nil, pricingdomain.ErrInvalidServiceKind
	}
}

func (s *Service) quotePrinter3D(usage pricingdomain.Printer3DUsage) (*pricingdomain.Breakdown, error) {
	if !positive(usage.FilamentWeightGrams) {
		return nil, pricingdomain.ErrInvalidFilamentWeight
	}
	if !positive(usage.PrintingHours) {
		return nil, pricingdomain.ErrInvalidPrintingHours
	}

	spoolPrice, err := s.rates.FilamentSpoolPrice(usage.FilamentType)
	if err != nil {
		if usage.FilamentType != rates.FilamentPLA && usage.FilamentType != rates.FilamentABS {
			return nil, pricingdomain.ErrInvalidFilamentType
		}
		return nil, err
	}
	powerRate, err := s.rates.HourlyRate(rates.HourlyPrinterPower)
	if err != nil {
		return nil, err
	}

	filamentCost := pricingdomain.FilamentCost(usage.FilamentWeightGrams, spoolPrice)
	powerCost := pricingdomain.HoursCost(usage.PrintingHours, powerRate)

	items := []pricingdomain.LineItem{
		{Label: "Filament cost", Amount: filamentCost},
		{Label: "Power cost", Amount: powerCost},
	}
	return &pricingdomain.Breakdown{
		ServiceKind: pricingdomain.KindPrinter3D,
		Description: fmt.Sprintf("3D Printing: %sg %s, %sh",
			formatNumber(usage.FilamentWeightGrams), usage.FilamentType, formatNumber(usage.PrintingHours)),
		LineItems: items,
		Total:     sum(items),
	}, nil
}

func (s *Service) quoteSoldering(usage pricingdomain.SolderingUsage) (*pricingdomain.Breakdown, error) {
	if !positive(usage.HoursUsed) {
		return nil, pricingdomain.ErrInvalidHoursUsed
	}

	rate, err := s.rates.HourlyRate(rates.HourlySoldering)
	if err != nil {
		return nil, err
	}

	items := []pricingdomain.LineItem{
		{Label: "Soldering station", Amount: pricingdomain.HoursCost(usage.HoursUsed, rate)},
	}
	return &pricingdomain.Breakdown{
		ServiceKind: pricingdomain.KindSoldering,
		Description: fmt.Sprintf("Soldering Station: %sh", formatNumber(usage.HoursUsed)),
		LineItems:   items,
		Total:       sum(items),
	}, nil
}

func (s *Service) quoteDocumentPrinter(usage pricingdomain.DocumentPrinterUsage) (*pricingdomain.Breakdown, error) {
	if len(usage.Jobs) == 0 {
		return nil, pricingdomain.ErrNoPrintJobs
	}

	var printingCost, paperCost int64
	var totalPages int
	for _, job := range usage.Jobs {
		if job.Pages < 1 || job.Pages > maxUsageUnits {
			return nil, pricingdomain.ErrInvalidPages
		}
		if job.Copies < 1 || job.Copies > maxUsageUnits {
			return nil, pricingdomain.ErrInvalidCopies
		}
		if err := validPaperType(job.PaperType); err != nil {
			return nil, err
		}

		pageRate, err := s.rates.PageRate(job.PaperSize, job.ColorMode)
		if err != nil {
			if kindErr := classifyPageLookup(job); kindErr != nil {
				return nil, kindErr
			}
			return nil, err
		}

		units := int64(job.Pages) * int64(job.Copies)
		totalPages += job.Pages * job.Copies
		printingCost += units * pageRate

		if job.PaperType == rates.PaperPremium {
			surcharge, err := s.rates.PremiumSurcharge(job.PaperSize)
			if err != nil {
				return nil, err
			}
			paperCost += units * surcharge
		}
	}

	items := []pricingdomain.LineItem{
		{Label: "Printing cost", Amount: printingCost},
	}
	if paperCost > 0 {
		items = append(items, pricingdomain.LineItem{Label: "Premium paper", Amount: paperCost})
	}
	// The binding fee is flat per document, not per job.
	if usage.Binding {
		items = append(items, pricingdomain.LineItem{Label: "Binding fee", Amount: s.rates.BindingFee()})
	}

	return &pricingdomain.Breakdown{
		ServiceKind: pricingdomain.KindDocumentPrinter,
		Description: fmt.Sprintf("Document Printing: %d job(s), %d pages", len(usage.Jobs), totalPages),
		LineItems:   items,
		Total:       sum(items),
	}, nil
}

func (s *Service) quoteToolsComponents(ctx context.Context, usage pricingdomain.ToolsComponentsUsage) (*pricingdomain.Breakdown, error) {
	var items []pricingdomain.LineItem
	var names []string
	for _, sel := range usage.Selections {
		if sel.Quantity < 0 {
			return nil, pricingdomain.ErrInvalidQuantity
		}
		// Quantity zero means the selection was removed, not a free line.
		if sel.Quantity == 0 {
			continue
		}

		item, err := s.catalog.GetItem(ctx, sel.ItemID)
		if err != nil {
			return nil, err
		}

		items = append(items, pricingdomain.LineItem{
			Label:  fmt.Sprintf("%s (%dx %s)", item.Name, sel.Quantity, pricingdomain.FormatPHP(item.UnitPrice)),
			Amount: item.UnitPrice * sel.Quantity,
		})
		names = append(names, fmt.Sprintf("%s (x%d)", item.Name, sel.Quantity))
	}
	if len(items) == 0 {
		return nil, pricingdomain.ErrEmptySelection
	}

	return &pricingdomain.Breakdown{
		ServiceKind: pricingdomain.KindToolsComponents,
		Description: "Tools/Components: " + strings.Join(names, ", "),
		LineItems:   items,
		Total:       sum(items),
	}, nil
}

func sum(items []pricingdomain.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// maxUsageUnits bounds hours, grams, pages and copies. Anything past a
// million is bogus input, and the cap keeps the centavo products inside
// int64 range.
const maxUsageUnits = 1_000_000

func positive(v float64) bool {
	return v > 0 && v <= maxUsageUnits
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validPaperType(pt rates.PaperType) error {
	switch pt {
	case rates.PaperStandard, rates.PaperPremium:
		return nil
	default:
		return pricingdomain.ErrInvalidPaperType
	}
}

func classifyPageLookup(job pricingdomain.PrintJob) error {
	switch job.PaperSize {
	case rates.PaperA4, rates.PaperA3, rates.PaperLetter:
	default:
		return pricingdomain.ErrInvalidPaperSize
	}
	switch job.ColorMode {
	case rates.ColorBlackWhite, rates.ColorFull:
	default:
		return pricingdomain.ErrInvalidColorMode
	}
	return nil
}
