package catalog

import "github.com/aussiebroadwan/werewolf/internal/setup/domain"

// Quantity is one row of the ledger.
type Quantity struct {
	Name     string `json:"role"`
	Quantity int    `json:"quantity"`
}

// Ledger tracks how many copies of each catalog role are selected. The
// quantities live on the catalog entries so adding or removing a role can
// never leave a stale total behind.
type Ledger struct {
	catalog *Catalog
}

func NewLedger(c *Catalog) *Ledger {
	return &Ledger{catalog: c}
}

// Increment adds one copy of the role, staying put at MaxQuantity.
func (l *Ledger) Increment(name string) (int, error) {
	return l.step(name, 1)
}

// Decrement removes one copy of the role, staying put at zero.
func (l *Ledger) Decrement(name string) (int, error) {
	return l.step(name, -1)
}

func (l *Ledger) step(name string, delta int) (int, error) {
	var q int
	err := l.catalog.Update(name, func(r *domain.Role) {
		r.Quantity = clamp(r.Quantity + delta)
		q = r.Quantity
	})
	return q, err
}

// Total sums the quantity of every role currently in the catalog.
func (l *Ledger) Total() int {
	total := 0
	for _, r := range l.catalog.roles {
		total += r.Quantity
	}
	return total
}

func (l *Ledger) Reset() {
	for i := range l.catalog.roles {
		l.catalog.roles[i].Quantity = 0
	}
}

func (l *Ledger) HasAtLeastOneSelected() bool {
	return l.Total() > 0
}

// Quantities lists every role's quantity in catalog order.
func (l *Ledger) Quantities() []Quantity {
	out := make([]Quantity, len(l.catalog.roles))
	for i, r := range l.catalog.roles {
		out[i] = Quantity{Name: r.Name, Quantity: r.Quantity}
	}
	return out
}
