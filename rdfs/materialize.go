package rdfs

import (
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/tbox"
	"github.com/arkadyh/rdflow/triple"
)

// Materialize computes the A-Box deductive closure under mode, given a
// closed T-Box index, per spec §4.4 (RDFS) / §4.5 (RDFS++). It returns the
// T-Box closure (unchanged, reflecting idx's own closure) alongside the
// closed A-Box.
func Materialize(idx *tbox.Index, abox triple.Collection, mode Mode) (tboxOut, aboxOut triple.Collection) {
	aboxDF := toDataflow(abox)

	classes := classAssertions(aboxDF)
	props := propertyAssertions(aboxDF)

	var propMaterialization dataflow.Collection[propAssn]
	if mode == RDFSPP {
		propMaterialization = propagatePropertiesPP(idx, props)
	} else {
		propMaterialization = dataflow.Concat(props, propagateSPO(idx.BySPO(), props))
	}
	allProps := dataflow.Distinct(propMaterialization)

	domainRangeTypes := propagateDomainRange(idx, allProps)
	classesWithDR := dataflow.Consolidate(dataflow.Concat(classes, domainRangeTypes))

	classMaterialization := propagateSCO(idx.BySCO(), classesWithDR)
	allClasses := dataflow.Concat(classesWithDR, classMaterialization)

	closedAbox := dataflow.Consolidate(dataflow.Concat(
		aboxDF,
		propAssnToTriples(allProps),
		classAssnToTriples(allClasses),
	))

	return idx.Closure(), fromDataflow(closedAbox)
}
