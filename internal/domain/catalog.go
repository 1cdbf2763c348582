package domain

// CatalogEntry is one priced service offering
type CatalogEntry struct {
	ServiceType string
	Price       float64
}

// ServiceCatalog is an ordered price list. Declaration order is meaningful:
// analytics tie-breaking follows it. Prices are looked up at query time, so
// past bookings are always valued at the current price (see DESIGN.md).
type ServiceCatalog struct {
	entries []CatalogEntry
	index   map[string]float64
}

// NewServiceCatalog builds a catalog preserving entry order
func NewServiceCatalog(entries []CatalogEntry) *ServiceCatalog {
	index := make(map[string]float64, len(entries))
	for _, e := range entries {
		index[e.ServiceType] = e.Price
	}
	return &ServiceCatalog{entries: entries, index: index}
}

// DefaultServiceCatalog returns the barbershop price list
func DefaultServiceCatalog() *ServiceCatalog {
	return NewServiceCatalog([]CatalogEntry{
		{ServiceType: "Classic Cut", Price: 40.00},
		{ServiceType: "Fade Cut", Price: 45.00},
		{ServiceType: "Full Beard", Price: 30.00},
		{ServiceType: "Cut + Beard", Price: 65.00},
		{ServiceType: "Eyebrows", Price: 20.00},
	})
}

// Price returns the price of a service type; unknown types cost 0
func (c *ServiceCatalog) Price(serviceType string) float64 {
	return c.index[serviceType]
}

// Contains reports whether the service type is offered
func (c *ServiceCatalog) Contains(serviceType string) bool {
	_, ok := c.index[serviceType]
	return ok
}

// Entries returns the price list in declaration order
func (c *ServiceCatalog) Entries() []CatalogEntry {
	return c.entries
}

// Position returns the declaration index of a service type, used for
// deterministic tie-breaking; unknown types sort last
func (c *ServiceCatalog) Position(serviceType string) int {
	for i, e := range c.entries {
		if e.ServiceType == serviceType {
			return i
		}
	}
	return len(c.entries)
}
