// Package qigit provides base-256 big-endian integer primitives.
//
// A qigit is one base-256 digit: a single byte of a number's significand.
// Everything here is exact integer arithmetic on math/big values; no
// floating point intermediates are used, so the helpers stay correct at
// magnitudes far beyond machine word size.
//
// Pack and Unpack convert between integers and raw qigit strings:
//
//	Pack(255, 0)  -> FF
//	Pack(255, 2)  -> 00 FF
//	Pack(-255, 0) -> 01        (two's complement in 1 qigit)
//	Pack(-255, 2) -> FF 01     (two's complement in 2 qigits)
//	Unpack(00 AA) -> 170       (always unsigned)
//
// Note that a width below the minimum for the magnitude is not an error;
// the value silently wraps modulo 256^width. Callers that need a sign must
// carry it out of band (the codec carries sign in the zone, not in the
// qigits).
package qigit
