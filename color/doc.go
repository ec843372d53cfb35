// Package color assigns palette colors to the regions of an adjacency
// graph so that no two bordering regions share a color — the classic
// map-coloring constraint-satisfaction problem.
//
// Formulation: one variable per region, domain = [0, palette), one
// inequality constraint per border. The default palette holds 5 colors;
// by the four-color theorem any planar region-adjacency graph is
// 4-colorable, so 5 colors always suffice for real boundary data and the
// spare color keeps the search shallow. Non-planar or malformed
// adjacency input can still be infeasible, which surfaces as
// ErrNoSolution rather than a panic or a bad coloring.
//
// Search strategy: depth-first backtracking with
//
//   - forward checking — assigning a color immediately removes it from
//     every unassigned neighbor's domain; an emptied domain prunes the
//     branch before it is entered;
//   - MRV ordering — the next variable is the one with the fewest
//     remaining colors (minimum remaining values), index tie-break;
//   - deterministic branching — colors are tried in ascending order and
//     variables in sorted-ID order, so identical inputs yield identical
//     colorings on this implementation (the contract only promises a
//     valid coloring, not a particular one).
//
// Budgets: WithMaxNodes and WithTimeLimit bound the search; exhausting
// either surfaces ErrNoSolution with detail. WithContext aborts
// cooperatively with the context's own error. Deadline checks are
// sparse (every 1024 node events), mirroring the branch-and-bound
// engines elsewhere in this module's lineage.
//
// Coloring is a pure function: no I/O, no shared state, the input graph
// is never mutated.
//
// Complexity: worst case O(k^V) as for any exact CSP search; forward
// checking and MRV keep planar instances effectively linear in practice.
// Memory: O(V + E).
package color
