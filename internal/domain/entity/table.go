package entity

// Table describes one physical table at the venue. The catalog is fixed for
// the event; reservations copy these attributes and must match them exactly.
type Table struct {
	Number   string
	Type     string
	Capacity int
	Location string
}

// TableCatalog is the fixed seating plan for the event. It is read-only
// configuration, not mutable state; availability comes from the confirmed
// reservations in storage.
var TableCatalog = []Table{
	{Number: "VIP-01", Type: "VIP", Capacity: 8, Location: "Frente do palco"},
	{Number: "VIP-02", Type: "VIP", Capacity: 8, Location: "Frente do palco"},
	{Number: "VIP-03", Type: "VIP", Capacity: 8, Location: "Frente do palco"},
	{Number: "VIP-04", Type: "VIP", Capacity: 8, Location: "Frente do palco"},

	{Number: "P-01", Type: "Premium", Capacity: 10, Location: "Área central"},
	{Number: "P-02", Type: "Premium", Capacity: 10, Location: "Área central"},
	{Number: "P-03", Type: "Premium", Capacity: 10, Location: "Área central"},
	{Number: "P-04", Type: "Premium", Capacity: 10, Location: "Área central"},
	{Number: "P-05", Type: "Premium", Capacity: 10, Location: "Área central"},
	{Number: "P-06", Type: "Premium", Capacity: 10, Location: "Área central"},

	{Number: "S-01", Type: "Standard", Capacity: 12, Location: "Área geral"},
	{Number: "S-02", Type: "Standard", Capacity: 12, Location: "Área geral"},
	{Number: "S-03", Type: "Standard", Capacity: 12, Location: "Área geral"},
	{Number: "S-04", Type: "Standard", Capacity: 12, Location: "Área geral"},
	{Number: "S-05", Type: "Standard", Capacity: 12, Location: "Área geral"},
	{Number: "S-06", Type: "Standard", Capacity: 12, Location: "Área geral"},
	{Number: "S-07", Type: "Standard", Capacity: 12, Location: "Área geral"},
	{Number: "S-08", Type: "Standard", Capacity: 12, Location: "Área geral"},
}

// FindTable looks up a catalog entry by table number.
func FindTable(number string) (Table, bool) {
	for _, t := range TableCatalog {
		if t.Number == number {
			return t, true
		}
	}

	return Table{}, false
}

// Matches reports whether the submitted attributes agree with the catalog
// entry. Reservations carrying stale or forged table data are rejected.
func (t Table) Matches(tableType string, capacity int, location string) bool {
	return t.Type == tableType && t.Capacity == capacity && t.Location == location
}
