package components

// Table seats at most one customer party. The table holds a non-owning
// reference; the customer carries the table id back. The pair is kept
// consistent by Seat and Clear.
type Table struct {
	ID       int
	Seats    int
	Customer *Customer
}

// Occupied reports whether a customer holds the table
func (t *Table) Occupied() bool { return t.Customer != nil }

// Seat places the customer at this table and sets the back-reference.
// The caller decides the resulting lifecycle state.
func (t *Table) Seat(c *Customer) {
	t.Customer = c
	c.TableID = t.ID
}

// Clear releases the table. The departing customer keeps its last
// TableID; it is removed from the active collection by the caller.
func (t *Table) Clear() {
	t.Customer = nil
}
