// Package patterns computes diagnostic statistics over the missingness
// structure of a tabular dataset.
//
// Every statistic works on a Dataset, which only has to report its shape and
// which of its cells are missing. From that indicator the package derives:
//
//   - MDPairs: the rr/rm/mr/mm pair count matrices (response/missing pairs).
//   - MDPattern: the distinct row-level missingness patterns with counts.
//   - Inbound, Outbound: per-pair usable-case proportions.
//   - Influx, Outflux: per-variable connectivity coefficients.
//   - Flux: a per-variable summary of proportion observed, average
//     inbound/outbound, influx and outflux.
//
// All functions are pure. A dataset with fewer than two columns, no rows, or
// labels that do not match its width is rejected with a *DimensionError.
// Degenerate ratios (0/0) are reported as NaN, never as errors.
package patterns
