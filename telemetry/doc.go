// Package telemetry applies a gap mask across a per-channel telemetry
// container.
//
// A container holds five measurement arrays per channel — tmi, rfi,
// rfi_usb, isi and isi_usb, keyed "<field>_<channel>" — plus two
// auxiliary collections keyed by channel: pseudo-ranges and their
// derivatives. ApplyMask multiplies every array element-wise by a mask
// (1.0 keeps a sample, NaN drops it) and returns a brand-new container:
// no output array aliases a caller buffer, so the caller's telemetry is
// never mutated, directly or later through the result.
//
// This package is a consumer of the masks built by maskprop; it holds
// no propagation logic of its own.
package telemetry
