// Package services implements the pure stages of the place-order workflow that do not
// belong to a single value: resolving the price source, pricing, attaching shipping,
// the VIP shipping override and assembling the integration events.
//
// Nothing here performs I/O. Price sources and the shipping tariff are passed in as
// functions so adapters can supply them.
package services
