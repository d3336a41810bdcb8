// Package cart holds the shopper's intended purchases as an ordered list of
// (product id, quantity) entries, independent of any server-confirmed order.
// Every mutation re-serializes the whole list to the backing store under the
// "mi_carrito" key, so the cart survives restarts.
//
// Quantity semantics are deliberate and slightly asymmetric: Add accumulates
// onto an existing entry, while SetQuantity writes the absolute value it is
// given, including zero or negative values. Removal on a non-positive
// quantity is the caller's responsibility via Remove. Quantity returns 0 for
// products not in the cart.
package cart
