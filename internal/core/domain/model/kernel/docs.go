// Package kernel provides the validated value types shared by every stage of the
// order-taking workflow.
//
// The package includes:
//   - Simple values: String50, EmailAddress, ZipCode, UsStateCode, OrderID, OrderLineID,
//     PromotionCode, VipStatus
//   - Product codes and quantities: ProductCode (WidgetCode | GizmoCode) and
//     OrderQuantity (UnitQuantity | KilogramQuantity)
//   - Money: Price and BillingAmount, backed by shopspring/decimal
//   - Compound values: PersonalName, CustomerInfo, Address
//   - PdfAttachment, the placeholder document sent with a shipment
//
// Every value is immutable and built by a NewX constructor that returns a typed error
// from internal/pkg/errs on bad input. The zero value of a guarded type fails Validate,
// so a value that was not produced by its constructor cannot pass for a valid one.
package kernel
