package catalog

import "github.com/samber/lo"

var defaultCPUs = []Entry{
	{Name: "Intel i3-8100", Score: 6000},
	{Name: "Intel i5-8400", Score: 9200},
	{Name: "Intel i5-9600K", Score: 12000},
	{Name: "Intel i7-9700K", Score: 15500},
	{Name: "Intel i9-9900K", Score: 22000},
	{Name: "Intel i5-12600K", Score: 23000},
	{Name: "Intel i9-13900K", Score: 40000},
	{Name: "AMD Ryzen 3 3200G", Score: 6000},
	{Name: "AMD Ryzen 5 3600", Score: 17000},
	{Name: "AMD Ryzen 5 5600X", Score: 19000},
	{Name: "AMD Ryzen 7 5800X", Score: 22000},
	{Name: "AMD Ryzen 9 5900X", Score: 31000},
	{Name: "AMD Ryzen 7 7800X3D", Score: 38000},
}

var defaultGPUs = []Entry{
	{Name: "GTX 1050", Score: 3473},
	{Name: "GTX 1650", Score: 5917},
	{Name: "GTX 1660 Super", Score: 9029},
	{Name: "GTX 1080", Score: 11052},
	{Name: "RTX 2060", Score: 13286},
	{Name: "RTX 3060", Score: 17367},
	{Name: "RTX 3070", Score: 19059},
	{Name: "RTX 3080", Score: 23302},
	{Name: "RTX 4090", Score: 34114},
	{Name: "AMD RX 580", Score: 6898},
	{Name: "AMD RX 6600", Score: 10567},
	{Name: "AMD RX 6700 XT", Score: 17470},
	{Name: "AMD RX 7900 XTX", Score: 31067},
}

var defaultCatalog = lo.Must(New(defaultCPUs, defaultGPUs))

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}
