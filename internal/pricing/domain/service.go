package domain

import (
	"context"
	"errors"
)

// Service prices a usage request into a cost breakdown. Quotes are
// deterministic and side-effect free; the only external read is the catalog
// lookup needed for tools/components selections.
type Service interface {
	Quote(ctx context.Context, req UsageRequest) (*Breakdown, error)
}

var (
	ErrInvalidServiceKind = errors.New("invalid_service_kind")
	ErrMissingUsage       = errors.New("missing_usage")

	ErrInvalidFilamentWeight = errors.New("invalid_filament_weight")
	ErrInvalidFilamentType   = errors.New("invalid_filament_type")
	ErrInvalidPrintingHours  = errors.New("invalid_printing_hours")

	ErrInvalidHoursUsed = errors.New("invalid_hours_used")

	ErrNoPrintJobs     = errors.New("no_print_jobs")
	ErrInvalidPages    = errors.New("invalid_pages")
	ErrInvalidCopies   = errors.New("invalid_copies")
	ErrInvalidPaperSize = errors.New("invalid_paper_size")
	ErrInvalidColorMode = errors.New("invalid_color_mode")
	ErrInvalidPaperType = errors.New("invalid_paper_type")

	ErrEmptySelection  = errors.New("empty_selection")
	ErrInvalidQuantity = errors.New("invalid_quantity")
)
