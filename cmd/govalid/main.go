// Command govalid validates a JSON order document against a demo validator
// and prints the collected issues, either as text tuples or as JSON.
//
// Usage:
//
//	govalid [-f order.json] [-lang en|ja] [-catalog extra.yaml] [-json]
//
// With no -f flag the document is read from stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	govalid "github.com/reoring/govalid"
	"github.com/reoring/govalid/i18n"
	"github.com/reoring/govalid/rules"
)

type Address struct {
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

type Item struct {
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	CustomerName string   `json:"customer_name"`
	Email        string   `json:"email"`
	Age          int      `json:"age"`
	IsCompany    bool     `json:"is_company"`
	Company      string   `json:"company"`
	CardNumber   string   `json:"card_number"`
	Address      *Address `json:"address"`
	Items        []Item   `json:"items"`
}

func newAddressValidator() *govalid.Validator[Address] {
	v := govalid.New[Address]()
	govalid.RuleFor(v, "City", func(a Address) string { return a.City }).
		Add(rules.NotEmpty[Address]())
	govalid.RuleFor(v, "ZipCode", func(a Address) string { return a.ZipCode }).
		Add(rules.Matches[Address](`^\d{5}$`))
	return v
}

func newItemValidator() *govalid.Validator[Item] {
	v := govalid.New[Item]()
	govalid.RuleFor(v, "SKU", func(i Item) string { return i.SKU }).
		Add(rules.NotEmpty[Item]())
	govalid.RuleFor(v, "Price", func(i Item) float64 { return i.Price }).
		Add(rules.GreaterThan[Item](0.0))
	return v
}

func newOrderValidator() *govalid.Validator[Order] {
	v := govalid.New[Order]()
	govalid.RuleFor(v, "CustomerName", func(o Order) string { return o.CustomerName }).
		Cascade(govalid.Stop).
		Add(rules.NotEmpty[Order]()).
		Add(rules.Length[Order](2, 50))
	govalid.RuleFor(v, "Email", func(o Order) string { return o.Email }).
		Add(rules.Email[Order]())
	govalid.RuleFor(v, "Age", func(o Order) int { return o.Age }).
		Add(rules.Between[Order](18, 65))
	govalid.RuleFor(v, "Company", func(o Order) string { return o.Company }).
		Add(rules.NotEmpty[Order]()).
		When(func(o Order) bool { return o.IsCompany })
	govalid.RuleFor(v, "CardNumber", func(o Order) string { return o.CardNumber }).
		Add(rules.CreditCard[Order]()).
		Unless(func(o Order) bool { return o.CardNumber == "" })
	govalid.Nested(
		govalid.RuleFor(v, "Address", func(o Order) *Address { return o.Address }).
			Add(rules.NotNil[Order, Address]()),
		newAddressValidator(),
	)
	govalid.EachNested(
		govalid.Each(
			govalid.RuleFor(v, "Items", func(o Order) []Item { return o.Items }),
			func(i Item) bool { return i.Quantity > 0 },
			govalid.CodeTooSmall, "quantity must be positive",
		),
		newItemValidator(),
	)
	return v
}

func main() {
	var (
		file    string
		lang    string
		catalog string
		asJSON  bool
	)
	flag.StringVar(&file, "f", "", "JSON document to validate (default: stdin)")
	flag.StringVar(&lang, "lang", "en", "message language (BCP 47 tag)")
	flag.StringVar(&catalog, "catalog", "", "extra YAML message catalog to merge")
	flag.BoolVar(&asJSON, "json", false, "emit the result as JSON")
	flag.Parse()

	data, err := readInput(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "govalid:", err)
		os.Exit(2)
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		fmt.Fprintln(os.Stderr, "govalid: decode input:", err)
		os.Exit(2)
	}

	cat := i18n.NewCatalog()
	if catalog != "" {
		if err := cat.LoadFile(catalog); err != nil {
			fmt.Fprintln(os.Stderr, "govalid:", err)
			os.Exit(2)
		}
	}

	v := newOrderValidator().UseMessageProvider(cat.Provider(lang))
	res, err := v.ValidateCtx(context.Background(), order)
	if err != nil {
		fmt.Fprintln(os.Stderr, "govalid: validation faulted:", err)
		os.Exit(2)
	}

	if asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "govalid:", err)
			os.Exit(2)
		}
		fmt.Println(string(out))
	} else if res.IsValid() {
		fmt.Println("ok")
	} else {
		for _, it := range res.Issues() {
			fmt.Printf("%s: %s (%s)\n", it.Path, it.Message, it.Code)
		}
	}

	if !res.IsValid() {
		os.Exit(1)
	}
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}
