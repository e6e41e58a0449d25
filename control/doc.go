// Package control frames byte fields with prefix coded control blocks.
//
// The first byte of a field is its control block. Its leading bits give the
// block type, which tells how many bytes the field holds. Short payloads are
// packed directly into the control block.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks).
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                                 |
//  |---------------|---------------||----------------|-------------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                                |
//  | 0 . 1 |                       || Data Size      | 2^6 = 64 bytes                                  |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 2^13 = 8192 values                    |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 2^20 = 1048576 values               |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 2^3 = 8 bytes size; up to 2^64 bytes of data    |
//  |---------------|---------------||----------------|-------------------------------------------------|
//
// Any other first byte is invalid. Sizes are indexed starting at 1, so a field
// always carries at least one byte.
//
// Data blocks hold a single byte below 128 in their low 7 bits.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data, minus one
//  2. Data
//
// Data + 1 and Data + 2 blocks are two and three byte sequences whose first
// data byte is small enough to share the control block.
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size, minus one
//  2. Number of bytes that contain data, minus one (big-endian)
//  3. Data
//
// Examples
//
// The packed digits of +7 (0b0111_1100) fit a Data block:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---------------------------|
//  | 1 | 1 . 1 . 1 . 1 . 1 . 0 . 0 | Data 0b111_1100.
//  |---|---------------------------|
//
// The packed digits of +10 (0b0000_1100, 0b1011_0001) fit a Data + 1 block:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-----------|-------------------|
//  | 0 . 0 . 1 | 0 . 1 . 1 . 0 . 0 | Data + 1, first byte 0b0_1100.
//  | 1 . 0 . 1 . 1 . 0 . 0 . 0 . 1 | Second byte.
//  |-------------------------------|
//
// The packed digits of +42 (0b0010_1100, 0b1011_0100) need a Data Size block:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------|-----------------------|
//  | 0 . 1 | 0 . 0 . 0 . 0 . 0 . 1 | Data Size of 2.
//  | 0 . 0 . 1 . 0 . 1 . 1 . 0 . 0 | First byte.
//  | 1 . 0 . 1 . 1 . 0 . 1 . 0 . 0 | Second byte.
//  |-------------------------------|
//
package control
