/*Package intersecter implements an in-memory index over a set of genomic
  features, answering overlap, directional-neighbor, strand-relative-neighbor,
  and k-nearest-neighbor queries.  Features are grouped per chromosome and
  kept in start-sorted arrays; queries combine binary search with knowledge
  of the longest feature in the set, so there is no tree to maintain.
  The index is built once and is then safe for concurrent readers.
*/
package intersecter
