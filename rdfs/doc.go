// Package rdfs implements the RDFS (C4) and RDFS++ (C5) incremental A-Box
// engines of spec §4.4/§4.5: given a closed T-Box (tbox.Index) and a batch
// of A-Box triples, it derives every rdf:type and property assertion RDFS
// entailment adds — subClassOf/subPropertyOf propagation, rdfs:domain and
// rdfs:range typing, and (RDFS++ only) owl:TransitiveProperty and
// owl:inverseOf propagation.
//
// Ported in semantics, not in code shape, from
// original_source/src/materializations.rs's abox_sco_type_materialization,
// abox_domain_and_range_type_materialization and the property propagation
// halves of rdfs()/rdfspp(): each Rust region becomes one function built
// from dataflow.JoinCore/ArrangeByKey, and rdfspp's inner iterative scope
// becomes one dataflow.Iterate call over a combined property-assertion
// collection.
package rdfs
