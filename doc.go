/*
Package sparse implements a sparse matrix as a single Morton (Z-order)
ordered coordinate format, rather than the usual DOK/COO/CSR/CSC/DIA
taxonomy of specialised formats.

Every stored entry's row and column are bit-interleaved into one 64-bit
key (see the morton subpackage); keeping a matrix's entries sorted by
that key makes the key ordering coincide with a quadtree pre-order
traversal, so quadrant splits become binary searches over plain
parallel arrays rather than pointer-chasing through an explicit tree.
Addition is a two-pointer merge of two such arrays (internal/stream);
multiplication recursively splits both operands' coordinate ranges by
the same key structure and fuses the resulting partial products with a
lazy priority-merge (internal/zheap), without ever materializing a
dense intermediate or building an explicit tree.

A Matrix is immutable once constructed. Builder offers a mutable,
map-backed staging area for incremental construction — the same
creational/operational split the DOK/CSR pairing gives elsewhere,
reduced to one representation that is already both.
*/
package sparse
