// Package tables locates the line-item table region inside a noisy OCR word
// stream.
//
// Invoice tables carry no fixed coordinates, so detection is anchored on
// keywords instead: the first word containing a vendor start keyword (for
// example "Item" or "Description") marks the top of the table, and the first
// word below it containing an end keyword (for example "Subtotal") marks the
// bottom. Horizontal bounds come from the words inside that vertical band.
//
// Detection either succeeds with a [model.TableRegion] at a fixed 0.8
// confidence or fails terminally with [ErrNoTableRegion]; there is no graded
// confidence model and no retry.
package tables
