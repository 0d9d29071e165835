// Package transform provides graph transformations on reference graphs.
//
// [TransitiveReduction] removes references already implied by a longer
// chain, which keeps rendered graphs readable: if a release item references
// both a module and that module's own dependency, only the first edge is
// needed to explain the order.
package transform
