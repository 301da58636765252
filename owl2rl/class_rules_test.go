package owl2rl

import (
	"testing"

	"github.com/arkadyh/rdflow/dataflow"
	"github.com/stretchr/testify/require"
)

func TestClsInt1_ConjunctionOfMemberships(t *testing.T) {
	schema := &Schema{IntersectionOf: map[uint32][]uint32{900: {901, 902}}}
	classes := dataflow.Collection[classAssn]{
		{Value: classAssn{C: 901, X: 910}, Time: 1, Diff: 1},
		{Value: classAssn{C: 902, X: 910}, Time: 1, Diff: 1},
		{Value: classAssn{C: 901, X: 911}, Time: 1, Diff: 1}, // missing 902: must not qualify
	}

	out := clsInt1(schema, classes)
	require.Len(t, out, 1)
	require.Equal(t, classAssn{C: 900, X: 910}, out[0].Value)
}

func TestClsSVF1_SomeValuesFromDerivesType(t *testing.T) {
	schema := &Schema{Restrictions: map[uint32]*Restriction{
		920: {OnProperty: 930, SomeValuesFrom: uptr(940)},
	}}
	classes := dataflow.Collection[classAssn]{
		{Value: classAssn{C: 940, X: 951}, Time: 1, Diff: 1},
	}
	props := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 930, S: 950, O: 951}, Time: 1, Diff: 1},
	}

	out := clsSVF1(schema, classes, props)
	require.Len(t, out, 1)
	require.Equal(t, classAssn{C: 920, X: 950}, out[0].Value)
}

func TestClsAVF_AllValuesFromDerivesType(t *testing.T) {
	schema := &Schema{Restrictions: map[uint32]*Restriction{
		921: {OnProperty: 931, AllValuesFrom: uptr(941)},
	}}
	classes := dataflow.Collection[classAssn]{
		{Value: classAssn{C: 921, X: 960}, Time: 1, Diff: 1},
	}
	props := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 931, S: 960, O: 961}, Time: 1, Diff: 1},
	}

	out := clsAVF(schema, classes, props)
	require.Len(t, out, 1)
	require.Equal(t, classAssn{C: 941, X: 961}, out[0].Value)
}

func TestClsMaxQC3_QualifiedCardinalityOneDerivesSameAs(t *testing.T) {
	schema := &Schema{Restrictions: map[uint32]*Restriction{
		922: {OnProperty: 932, OnClass: uptr(942), MaxQC1: true},
	}}
	classes := dataflow.Collection[classAssn]{
		{Value: classAssn{C: 922, X: 970}, Time: 1, Diff: 1},
		{Value: classAssn{C: 942, X: 980}, Time: 1, Diff: 1},
		{Value: classAssn{C: 942, X: 981}, Time: 1, Diff: 1},
	}
	props := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 932, S: 970, O: 980}, Time: 1, Diff: 1},
		{Value: propAssn{P: 932, S: 970, O: 981}, Time: 1, Diff: 1},
	}

	out := clsMaxQC3(schema, classes, props)
	require.Len(t, out, 1)
	require.Equal(t, pair{980, 981}, out[0].Value)
}

func uptr(v uint32) *uint32 { return &v }
