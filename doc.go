// Package huffman implements lossless byte-stream compression with Huffman
// codes.
//
// Compress counts how often each byte value occurs, builds a Huffman tree
// from those counts, and packs the resulting codes into a Container that
// also records the counts and the exact number of significant bits.
// Decompress reads the counts back, rebuilds the identical tree, and walks it
// bit by bit.  The tree itself is never stored.
//
// Tree construction is deterministic: nodes of equal weight leave the
// priority queue in the order they entered it, and leaves enter in ascending
// byte order.  The container format is private to this package.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
