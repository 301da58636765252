package triple

// MaxConst is the highest reserved schema vocabulary ID (observed value per
// spec §6). IDs <= MaxConst are schema vocabulary and MUST NOT appear as
// A-Box subjects in property position outside their intended role (spec §3
// invariant 5).
const MaxConst uint32 = 46

// Reserved schema vocabulary IDs, frozen in this one table per the Design
// Note in spec §9 ("Reserved schema ID table. Freeze the table in one
// place ... do not scatter it across multiple modules"). Values match
// spec §6 verbatim, which in turn ports original_source/src/lib.rs's
// constants::{rdf,owl,xml} modules.
const (
	SubClassOf      uint32 = 0
	SubPropertyOf   uint32 = 1
	Domain          uint32 = 2
	Range           uint32 = 3
	Type            uint32 = 4
	TransitiveProp  uint32 = 5
	InverseOf       uint32 = 6
	Thing           uint32 = 7
	Comment         uint32 = 8
	Rest            uint32 = 9
	First           uint32 = 10
	MaxQualCard     uint32 = 11
	SomeValuesFrom  uint32 = 12
	EquivClass      uint32 = 13
	IntersectionOf  uint32 = 14
	Members         uint32 = 15
	EquivProperty   uint32 = 16
	OnProperty      uint32 = 17
	PropertyChain   uint32 = 18
	DisjointWith    uint32 = 19
	PropDisjointW   uint32 = 20
	UnionOf         uint32 = 21
	Label           uint32 = 22
	HasKey          uint32 = 23
	AllValuesFrom   uint32 = 24
	ComplementOf    uint32 = 25
	OnClass         uint32 = 26
	DistinctMembers uint32 = 27
	FunctionalProp  uint32 = 28
	NamedIndividual uint32 = 29
	ObjectProperty  uint32 = 30
	Nil             uint32 = 31
	Class           uint32 = 32
	NonNegOne       uint32 = 33 // "1"^^xsd:nonNegativeInteger
	NonNegZero      uint32 = 34 // "0"^^xsd:nonNegativeInteger
	AllDisjointCls  uint32 = 35
	Restriction     uint32 = 36
	DatatypeProp    uint32 = 37
	Literal         uint32 = 38
	Ontology        uint32 = 39
	AsymmetricProp  uint32 = 40
	SymmetricProp   uint32 = 41
	IrreflexiveProp uint32 = 42
	AllDifferent    uint32 = 43
	InverseFuncProp uint32 = 44
	SameAs          uint32 = 45
	// No constant is declared for the second subClassOf entry: spec §6
	// lists subClassOf twice, once at 0 and once as "MAX_CONST" (46). The
	// two observed occurrences of subClassOf in the source vocabulary table
	// are a quirk of the original constants dump; we keep 0 as the canonical
	// subClassOf ID and MaxConst as a separate boundary marker, per spec
	// §3's "up to a declared MAX_CONST (observed value 46)".
)

// reservedIRIs maps every reserved schema ID to the IRI an Interner must
// assign it. Populated at package init so NewMemInterner (and any custom
// Interner) can validate against a single source of truth.
var reservedIRIs = map[uint32]string{
	SubClassOf:      "http://www.w3.org/2000/01/rdf-schema#subClassOf",
	SubPropertyOf:   "http://www.w3.org/2000/01/rdf-schema#subPropertyOf",
	Domain:          "http://www.w3.org/2000/01/rdf-schema#domain",
	Range:           "http://www.w3.org/2000/01/rdf-schema#range",
	Type:            "http://www.w3.org/1999/02/22-rdf-syntax-ns#type",
	TransitiveProp:  "http://www.w3.org/2002/07/owl#TransitiveProperty",
	InverseOf:       "http://www.w3.org/2002/07/owl#inverseOf",
	Thing:           "http://www.w3.org/2002/07/owl#Thing",
	Comment:         "http://www.w3.org/2000/01/rdf-schema#comment",
	Rest:            "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest",
	First:           "http://www.w3.org/1999/02/22-rdf-syntax-ns#first",
	MaxQualCard:     "http://www.w3.org/2002/07/owl#maxQualifiedCardinality",
	SomeValuesFrom:  "http://www.w3.org/2002/07/owl#someValuesFrom",
	EquivClass:      "http://www.w3.org/2002/07/owl#equivalentClass",
	IntersectionOf:  "http://www.w3.org/2002/07/owl#intersectionOf",
	Members:         "http://www.w3.org/2002/07/owl#members",
	EquivProperty:   "http://www.w3.org/2002/07/owl#equivalentProperty",
	OnProperty:      "http://www.w3.org/2002/07/owl#onProperty",
	PropertyChain:   "http://www.w3.org/2002/07/owl#propertyChainAxiom",
	DisjointWith:    "http://www.w3.org/2000/01/rdf-schema#disjointWith",
	PropDisjointW:   "http://www.w3.org/2002/07/owl#propertyDisjointWith",
	UnionOf:         "http://www.w3.org/2002/07/owl#unionOf",
	Label:           "http://www.w3.org/2000/01/rdf-schema#label",
	HasKey:          "http://www.w3.org/2002/07/owl#hasKey",
	AllValuesFrom:   "http://www.w3.org/2002/07/owl#allValuesFrom",
	ComplementOf:    "http://www.w3.org/2002/07/owl#complementOf",
	OnClass:         "http://www.w3.org/2002/07/owl#onClass",
	DistinctMembers: "http://www.w3.org/2002/07/owl#distinctMembers",
	FunctionalProp:  "http://www.w3.org/2002/07/owl#FunctionalProperty",
	NamedIndividual: "http://www.w3.org/2002/07/owl#NamedIndividual",
	ObjectProperty:  "http://www.w3.org/2002/07/owl#ObjectProperty",
	Nil:             "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil",
	Class:           "http://www.w3.org/2002/07/owl#Class",
	NonNegOne:       `"1"^^http://www.w3.org/2001/XMLSchema#nonNegativeInteger`,
	NonNegZero:      `"0"^^http://www.w3.org/2001/XMLSchema#nonNegativeInteger`,
	AllDisjointCls:  "http://www.w3.org/2002/07/owl#AllDisjointClasses",
	Restriction:     "http://www.w3.org/2002/07/owl#Restriction",
	DatatypeProp:    "http://www.w3.org/2002/07/owl#DatatypeProperty",
	Literal:         "http://www.w3.org/2000/01/rdf-schema#Literal",
	Ontology:        "http://www.w3.org/2002/07/owl#Ontology",
	AsymmetricProp:  "http://www.w3.org/2002/07/owl#AsymmetricProperty",
	SymmetricProp:   "http://www.w3.org/2002/07/owl#SymmetricProperty",
	IrreflexiveProp: "http://www.w3.org/2002/07/owl#IrreflexiveProperty",
	AllDifferent:    "http://www.w3.org/2002/07/owl#AllDifferent",
	InverseFuncProp: "http://www.w3.org/2002/07/owl#InverseFunctionalProperty",
	SameAs:          "http://www.w3.org/2002/07/owl#sameAs",
}

// IsSchemaID reports whether id falls within the reserved vocabulary range.
func IsSchemaID(id uint32) bool {
	return id <= MaxConst
}

// ReservedIRI returns the canonical IRI for a reserved schema ID, and false
// if id is not reserved.
func ReservedIRI(id uint32) (string, bool) {
	iri, ok := reservedIRIs[id]
	return iri, ok
}

// ReservedIDs returns a copy of the full reserved-ID table, for callers
// (notably Interner implementations) that need to pre-register every
// reserved IRI at construction time.
func ReservedIDs() map[uint32]string {
	out := make(map[uint32]string, len(reservedIRIs))
	for id, iri := range reservedIRIs {
		out[id] = iri
	}
	return out
}
