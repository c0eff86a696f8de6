// Package bigint implements arbitrary-precision signed integers stored in
// two's-complement form over base-2^32 digits.
//
// The zero value of Int is ready to use and represents 0. Operations follow
// the destination-receiver convention: z.Add(x, y) stores x+y into z and
// returns z, so compound assignment is written z.Add(z, x). Operands may
// alias the destination freely.
//
// Values share their backing digit buffers copy-on-write: Set and Clone are
// O(1) for large values, and a shared buffer is cloned the first time either
// sharer mutates. Because sharing is established only through Set and Clone,
// an Int must not be copied by plain assignment after first use.
//
// An Int and any value it shares a buffer with must not be used from
// multiple goroutines at the same time. Clone a value before handing it to
// another goroutine.
package bigint
