package models

// Optional holds either a present value or nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrZero returns the value, or the zero value of T when absent.
func (o Optional[T]) OrZero() T {
	if !o.ok {
		var zero T
		return zero
	}
	return o.value
}

// ProductColumns is the header row of the product output.
var ProductColumns = []string{"url", "image", "name", "price"}

// Product is one listing item scraped from a catalogue page.
// Every field is independently optional.
type Product struct {
	URL   Optional[string]
	Image Optional[string]
	Name  Optional[string]
	Price Optional[string]
}

// Row renders the product in ProductColumns order. Absent fields become "".
func (p Product) Row() []string {
	return []string{
		cell(p.URL),
		cell(p.Image),
		cell(p.Name),
		cell(p.Price),
	}
}

func cell(field Optional[string]) string {
	if v, ok := field.Get(); ok {
		return v
	}
	return ""
}
