package tickets

import (
	"math"
	"math/bits"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/Rhymond/go-money"
)

const (
	DefaultOfferingName = "General Admission"
	// DefaultPaidPrice is the price, in major units of the event currency, of the
	// default offering for paid events that have no ticket metadata.
	DefaultPaidPrice = 499
)

type Offering struct {
	Name      string
	UnitPrice *money.Money
	Quantity  int
}

// Subtotal is UnitPrice times Quantity, saturating at math.MaxInt64 minor
// units. Selections built through Adjust never reach the bound.
func (o Offering) Subtotal() *money.Money {
	amount, ok := o.subtotal()
	if !ok {
		amount = math.MaxInt64
	}
	return money.New(amount, o.UnitPrice.Currency().Code)
}

func (o Offering) subtotal() (int64, bool) {
	hi, lo := bits.Mul64(uint64(max(0, o.UnitPrice.Amount())), uint64(max(0, o.Quantity)))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// Selection is the set of offerings for one checkout and how many of each the
// buyer picked. It is a value: Adjust returns a new Selection.
type Selection struct {
	currency  string
	offerings []Offering
}

func NewSelection(event events.Event) Selection {
	currency := event.CurrencyCode()

	if len(event.Tickets) == 0 {
		price := int64(0)
		if !event.IsFree {
			price = DefaultPaidPrice * minorUnitsPerMajor(currency)
		}

		return Selection{
			currency: currency,
			offerings: []Offering{
				{Name: DefaultOfferingName, UnitPrice: money.New(price, currency)},
			},
		}
	}

	offerings := make([]Offering, 0, len(event.Tickets))
	for _, t := range event.Tickets {
		amount := int64(0)
		if t.Price != nil {
			amount = max(0, t.Price.Amount())
		}

		// Every offering is priced in the event currency so totals never mix currencies.
		offerings = append(offerings, Offering{Name: t.Name, UnitPrice: money.New(amount, currency)})
	}

	return Selection{currency: currency, offerings: offerings}
}

// Restore rebuilds a Selection from previously stored offerings.
func Restore(currency string, offerings []Offering) Selection {
	return Selection{currency: currency, offerings: append([]Offering(nil), offerings...)}
}

func (s Selection) Currency() string {
	return s.currency
}

func (s Selection) Offerings() []Offering {
	return append([]Offering(nil), s.offerings...)
}

// Adjust changes the quantity of the offering at index by delta. Quantities
// never go below zero. There is no stock limit, but an adjustment whose count
// or total no longer fits in an int64 is refused and s is returned unchanged.
func (s Selection) Adjust(index int, delta int) (Selection, error) {
	if index < 0 || index >= len(s.offerings) {
		return s, NewOfferingDoesNotExistError(index, len(s.offerings))
	}

	adjusted := s.Offerings()
	current := adjusted[index].Quantity
	if delta > 0 && current > math.MaxInt-delta {
		return s, NewQuantityTooLargeError(adjusted[index].Name)
	}
	adjusted[index].Quantity = max(0, current+delta)

	next := Selection{currency: s.currency, offerings: adjusted}
	if _, _, ok := next.sum(); !ok {
		return s, NewQuantityTooLargeError(adjusted[index].Name)
	}

	return next, nil
}

func (s Selection) Selected() []Offering {
	var selected []Offering
	for _, o := range s.offerings {
		if o.Quantity > 0 {
			selected = append(selected, o)
		}
	}
	return selected
}

// Totals sums the selection. A restored selection whose sum does not fit is
// reported at the saturated bound rather than wrapping.
func (s Selection) Totals() Totals {
	count, amount, ok := s.sum()
	if !ok {
		count, amount = math.MaxInt, math.MaxInt64
	}

	return Totals{
		Count:  count,
		Amount: money.New(amount, s.currency),
	}
}

// sum returns the ticket count and minor unit total, and false when either
// overflows.
func (s Selection) sum() (int, int64, bool) {
	count := 0
	var amount uint64
	for _, o := range s.offerings {
		if o.Quantity > math.MaxInt-count {
			return 0, 0, false
		}
		count += max(0, o.Quantity)

		subtotal, ok := o.subtotal()
		if !ok {
			return 0, 0, false
		}
		var carry uint64
		amount, carry = bits.Add64(amount, uint64(subtotal), 0)
		if carry != 0 || amount > math.MaxInt64 {
			return 0, 0, false
		}
	}
	return count, int64(amount), true
}

type Totals struct {
	Count  int
	Amount *money.Money
}

// ChargeAmount is the total rounded up to a whole major currency unit. This
// is the amount an order is created for.
func (t Totals) ChargeAmount() int64 {
	unit := minorUnitsPerMajor(t.Amount.Currency().Code)
	amount := t.Amount.Amount()
	charge := amount / unit
	if amount%unit > 0 {
		charge++
	}
	return charge
}

func (t Totals) MajorUnits() float64 {
	return MajorUnits(t.Amount)
}

func (t Totals) Display() string {
	return t.Amount.Display()
}

// MajorUnits converts m to a decimal amount in major currency units.
func MajorUnits(m *money.Money) float64 {
	return float64(m.Amount()) / float64(minorUnitsPerMajor(m.Currency().Code))
}

// FromMajorUnits converts a decimal amount in major currency units into money,
// rounding to the nearest minor unit.
func FromMajorUnits(amount float64, currency string) *money.Money {
	return money.New(int64(math.Round(amount*float64(minorUnitsPerMajor(currency)))), currency)
}

func minorUnitsPerMajor(currency string) int64 {
	unit := int64(1)
	for range money.New(0, currency).Currency().Fraction {
		unit *= 10
	}
	return unit
}
