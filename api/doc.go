// Package api provides the typed data services for every café backend
// entity: products, categories, clients, inventory, suppliers, purchases and
// their line items, orders and their line items, users, and roles.
//
// All services share one contract. List and Get read through the cache;
// Create, Update, and Delete go straight to the backend and invalidate the
// entity's cache keys on success, so the next read refetches. There are no
// optimistic updates. Numeric fields the backend serves as strings (prices,
// totals, quantities) are normalized to numbers on decode via Decimal.
//
// Wire field names stay in the backend's Spanish vocabulary (id_producto,
// precio, ...) because they are the external contract; Go-side names are
// translated.
//
//	svc := api.NewService(gateway)
//	products, err := svc.Products(ctx)
package api
