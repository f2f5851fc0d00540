package tax

import "github.com/shopspring/decimal"

// Master is a tax rate definition. Masters are descriptive only; none of the
// report arithmetic reads them.
type Master struct {
	ID   string
	Name string
	Rate decimal.Decimal
}

// Group bundles tax masters under one label for display.
type Group struct {
	ID      string
	Name    string
	Masters []Master
}
