package owl2rl

import (
	"testing"

	"github.com/arkadyh/rdflow/dataflow"
	"github.com/stretchr/testify/require"
)

func TestPrpFP_FunctionalPropertyDerivesSameAs(t *testing.T) {
	schema := &Schema{FunctionalProps: map[uint32]bool{700: true}}
	props := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 700, S: 710, O: 720}, Time: 1, Diff: 1},
		{Value: propAssn{P: 700, S: 710, O: 721}, Time: 1, Diff: 1},
	}

	// Treating the whole batch as this round's delta (nil prior state)
	// exercises the Neu x Neu quadrant alone, matching a first-round
	// full self-join.
	out := prpFP(schema, nil, props)
	require.Len(t, out, 1)
	require.Equal(t, pair{720, 721}, out[0].Value)
}

func TestPrpIFP_InverseFunctionalPropertyDerivesSameAs(t *testing.T) {
	schema := &Schema{InverseFunctionalProps: map[uint32]bool{701: true}}
	props := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 701, S: 730, O: 740}, Time: 1, Diff: 1},
		{Value: propAssn{P: 701, S: 731, O: 740}, Time: 1, Diff: 1},
	}

	out := prpIFP(schema, nil, props)
	require.Len(t, out, 1)
	require.Equal(t, pair{730, 731}, out[0].Value)
}

func TestPrpFP_AltNeuSplitFindsCrossRoundPair(t *testing.T) {
	// One assertion is already known from a prior round (Alt), the other
	// arrives this round (Neu). The pair can only surface via the Alt x Neu
	// (or Neu x Alt) quadrant, not Neu x Neu alone — this is the case the
	// old single-snapshot self-join handled by brute force and the Alt/Neu
	// split must still catch without recomputing the Alt x Alt quadrant.
	schema := &Schema{FunctionalProps: map[uint32]bool{700: true}}
	alreadyKnown := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 700, S: 710, O: 720}, Time: 1, Diff: 1},
	}
	newThisRound := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 700, S: 710, O: 721}, Time: 2, Diff: 1},
	}
	all := dataflow.Concat(alreadyKnown, newThisRound)

	out := prpFP(schema, all, newThisRound)
	require.Len(t, out, 1)
	require.Equal(t, pair{720, 721}, out[0].Value)
}

func TestPrpSymp_EmitsReverseEdge(t *testing.T) {
	schema := &Schema{SymmetricProps: map[uint32]bool{702: true}}
	props := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 702, S: 750, O: 751}, Time: 1, Diff: 1},
	}

	out := prpSymp(schema, props)
	require.Len(t, out, 1)
	require.Equal(t, propAssn{P: 702, S: 751, O: 750}, out[0].Value)
}

func TestPrpSpo2_ComposesTwoHopChain(t *testing.T) {
	// p(760) = p1(761) . p2(762): x-p1->y, y-p2->z ⇒ x-p-z.
	schema := &Schema{PropertyChains: map[uint32][]uint32{760: {761, 762}}}
	props := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 761, S: 770, O: 771}, Time: 1, Diff: 1},
		{Value: propAssn{P: 762, S: 771, O: 772}, Time: 1, Diff: 1},
	}

	out := prpSpo2(schema, props)
	require.Len(t, out, 1)
	require.Equal(t, propAssn{P: 760, S: 770, O: 772}, out[0].Value)
}

func TestPrpKey_SharedKeyValueDerivesSameAs(t *testing.T) {
	schema := &Schema{HasKey: map[uint32]uint32{780: 790}}
	classes := dataflow.Collection[classAssn]{
		{Value: classAssn{C: 780, X: 800}, Time: 1, Diff: 1},
		{Value: classAssn{C: 780, X: 801}, Time: 1, Diff: 1},
	}
	props := dataflow.Collection[propAssn]{
		{Value: propAssn{P: 790, S: 800, O: 999}, Time: 1, Diff: 1},
		{Value: propAssn{P: 790, S: 801, O: 999}, Time: 1, Diff: 1},
	}

	out := prpKey(schema, classes, props)
	require.Len(t, out, 1)
	require.Equal(t, pair{800, 801}, out[0].Value)
}
