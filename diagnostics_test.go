package qhyp

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDiagnostics(t *testing.T) {
	Convey("Given an empty set", t, func(c C) {
		set := NewHypothesisSet(nil)

		Convey("Entropy should be zero", func(c C) {
			c.So(set.Entropy(), ShouldEqual, 0)
			c.So(set.MaxEntropy(), ShouldEqual, 0)
		})

		Convey("There should be no leading hypothesis", func(c C) {
			c.So(set.LeadingIndex(), ShouldEqual, -1)
			c.So(set.Coherent(0.5), ShouldBeFalse)
		})
	})

	Convey("Given a single-hypothesis set", t, func(c C) {
		set := NewHypothesisSet(nil)
		_, _ = set.Add("lonely", 0.7)
		_ = set.Normalize()

		Convey("Entropy should be zero", func(c C) {
			c.So(set.Entropy(), ShouldEqual, 0)
		})
	})

	Convey("Given a uniform distribution over four hypotheses", t, func(c C) {
		set := NewHypothesisSet(nil)
		for _, content := range []string{"a", "b", "c", "d"} {
			_, _ = set.Add(content, 0.5)
		}
		_ = set.Normalize()

		Convey("Entropy should reach its maximum, ln(N)", func(c C) {
			c.So(set.Entropy(), ShouldAlmostEqual, math.Log(4), 1e-9)
			c.So(set.Entropy(), ShouldAlmostEqual, set.MaxEntropy(), 1e-9)
		})

		Convey("And interference should lower it", func(c C) {
			engine := NewInterferenceEngine(nil)
			c.So(engine.Interfere(set, map[int]float64{2: 1}, 1.0), ShouldBeNil)
			c.So(set.Entropy(), ShouldBeLessThan, math.Log(4))
			c.So(set.LeadingIndex(), ShouldEqual, 2)
		})
	})

	Convey("Given a skewed distribution", t, func(c C) {
		set := referenceSet()

		Convey("The leading index should point at the heaviest hypothesis", func(c C) {
			c.So(set.LeadingIndex(), ShouldEqual, 0)
		})

		Convey("Coherence should depend on the threshold", func(c C) {
			c.So(set.Coherent(0.5), ShouldBeTrue)
			c.So(set.Coherent(0.9), ShouldBeFalse)
		})

		Convey("The distribution should sum to one", func(c C) {
			total := 0.0
			for _, p := range set.Distribution() {
				total += p
			}
			c.So(total, ShouldAlmostEqual, 1.0, 1e-9)
		})

		Convey("Exported diagnostics should mirror the accessors", func(c C) {
			engine := NewInterferenceEngine(nil)
			c.So(engine.Interfere(set, map[int]float64{0: 0.5, 1: -0.5}, 1.0), ShouldBeNil)

			export := set.ExportDiagnostics()
			c.So(export["id"], ShouldEqual, set.ID)
			c.So(export["size"], ShouldEqual, 3)
			c.So(export["collapsed"], ShouldBeFalse)
			c.So(export["entropy"], ShouldAlmostEqual, set.Entropy(), 1e-12)
			c.So(export["max_entropy"], ShouldAlmostEqual, math.Log(3), 1e-12)
			c.So(export["leading_index"], ShouldEqual, 0)
			c.So(export["total_evidence"], ShouldEqual, 2)
		})
	})
}
