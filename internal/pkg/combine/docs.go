// Package combine implements the two error-combination policies of the order workflow.
//
// Accumulate-all (CollectN, Sequence) runs every input and reports every distinct failure;
// order forms are validated this way.
// First-error (FirstN, Then) reports only the earliest failure, which is how pricing
// behaves once the input is known to be valid.
//
// Failures are compared by their Error() text; the first occurrence wins and insertion
// order is preserved. Nothing in this package panics: every failure is a returned value.
//
// Example:
//
//	id, name, err := combine.Collect2(
//	    combine.Of(kernel.NewOrderID(raw.OrderID, "orderId")),
//	    combine.Of(kernel.NewString50(raw.FirstName, "firstName")),
//	)
//	if err != nil {
//	    for _, e := range combine.List(err) { ... }
//	}
package combine
