// Package formdata holds the form value model as an immutable snapshot.
//
// The model is owned by the host application and may be arbitrarily nested.
// The validation core never mutates it in place: every write operation
// returns a new Snapshot and leaves the receiver untouched, so concurrent
// readers always observe a consistent document and a superseded snapshot can
// be compared against its successor.
//
// Internally a snapshot is a JSON document. Path addressing uses the same
// dot-delimited convention as pkg/fieldpath and is implemented with
// tidwall/gjson for reads and tidwall/sjson for copy-on-write updates.
//
// # Usage
//
//	snap, _ := formdata.FromMap(map[string]any{"userId": "1"})
//	next, _ := snap.With("addresses.billingAddress.street", "Main St 1")
//	street, ok := next.Get("addresses.billingAddress.street")
//
// snap still reads {"userId":"1"}; next carries the nested street value.
package formdata
