// bundled.go holds the registry of datasets that ship with the library.
// The registry is populated once at init and never mutated afterwards.
package dataplot

import (
	"sort"
	"strings"
)

var bundled = map[string]*Table{}

// Bundled returns a dataset from the built-in registry by name.
func Bundled(name string) (*Table, error) {
	t, ok := bundled[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return t, nil
}

// BundledNames lists the registered dataset names, sorted.
func BundledNames() []string {
	names := make([]string, 0, len(bundled))
	for name := range bundled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func registerBundled(name, csvData string) {
	t, err := ReadCSV(strings.NewReader(strings.TrimSpace(csvData) + "\n"))
	if err != nil {
		panic("dataplot: bad bundled dataset " + name + ": " + err.Error())
	}
	bundled[name] = t
}

// penguinsCSV is a small field survey of three penguin species. Several
// cells are empty: birds that escaped before every measurement was taken.
const penguinsCSV = `
species,bill_len,bill_depth,flipper_len,body_mass
Adelie,39.1,18.7,181,3750
Adelie,39.5,17.4,186,3800
Adelie,40.3,18.0,195,3250
Adelie,36.7,19.3,193,3450
Adelie,39.3,20.6,190,3650
Adelie,38.9,17.8,181,3625
Adelie,39.2,19.6,195,4675
Adelie,34.1,18.1,193,
Adelie,42.0,20.2,190,4250
Adelie,37.8,17.1,186,3300
Chinstrap,46.5,17.9,192,3500
Chinstrap,50.0,19.5,196,3900
Chinstrap,51.3,19.2,193,3650
Chinstrap,45.4,18.7,188,3525
Chinstrap,52.7,19.8,197,3725
Chinstrap,45.2,17.8,198,3950
Chinstrap,46.1,18.2,178,3250
Chinstrap,51.9,18.2,197,3675
Gentoo,46.1,13.2,211,4500
Gentoo,50.0,16.3,230,5700
Gentoo,48.7,14.1,210,4450
Gentoo,50.0,15.2,218,5700
Gentoo,47.6,14.5,215,5400
Gentoo,46.5,13.5,210,4550
Gentoo,45.4,14.6,211,4800
Gentoo,46.7,15.3,219,5200
Gentoo,43.3,13.4,209,4400
Gentoo,46.8,15.4,215,5150
`

// carsCSV pairs engine displacement with city and highway fuel economy.
const carsCSV = `
model,class,displ,cyl,cty,hwy
corolla,compact,1.8,4,28,37
civic,compact,2.0,4,26,36
jetta,compact,2.5,5,21,29
sonata,midsize,2.4,4,21,30
camry,midsize,2.5,4,21,31
passat,midsize,3.6,6,16,26
a4,midsize,2.0,4,19,27
mustang,sports,4.6,8,15,22
corvette,sports,6.2,8,15,24
impreza,compact,2.5,4,19,25
forester,suv,2.5,4,18,24
grand cherokee,suv,4.7,8,9,12
tahoe,suv,5.3,8,11,15
caravan,minivan,3.3,6,17,24
odyssey,minivan,3.5,6,18,25
ranger,pickup,3.0,6,14,20
f150,pickup,5.4,8,11,15
`

func init() {
	registerBundled("penguins", penguinsCSV)
	registerBundled("cars", carsCSV)
}
