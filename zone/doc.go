// Package zone partitions the raw byte-string space of the number codec
// into 14 contiguous, ordered regions.
//
// Each zone is defined by a fixed minimum raw value; a raw string belongs
// to the zone whose boundary is the greatest boundary less than or equal
// to it. The boundaries, in descending order:
//
//	| Zone               | Min    |                                  |
//	|--------------------|--------|----------------------------------|
//	| Transfinite        | FF 80  | infinite exponent (unimplemented)|
//	| LudicrousLarge     | FF     | exponent beyond ~2^1000          |
//	| Positive           | 82     | >= 1                             |
//	| Fractional         | 81     | (0, 1)                           |
//	| LudicrousSmall     | 80 80  |                                  |
//	| Infinitesimal      | 80 00  |                                  |
//	| Zero               | 80     | exactly zero                     |
//	| InfinitesimalNeg   | 7F 80  |                                  |
//	| LudicrousSmallNeg  | 7F 00  |                                  |
//	| FractionalNeg      | 7E 00  | (-1, 0)                          |
//	| Negative           | 01     | <= -1                            |
//	| LudicrousLargeNeg  | 00 80  |                                  |
//	| TransfiniteNeg     | 00     |                                  |
//	| NaN                | (none) | the empty string                 |
//
// Most boundaries are themselves legal raw values (82 is an alias of one);
// FractionalNeg's boundary 7E 00 is an inter-zone value that no producer
// ever emits, since a bare trailing 00 would read as a suffix marker.
//
// Classification is total and pure: every byte string, including the empty
// string and arbitrary garbage, lands in exactly one zone.
package zone
