package qhyp

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSnapshot(t *testing.T) {
	Convey("Given a set shaped by a few interference rounds", t, func(c C) {
		set := referenceSet()
		engine := NewInterferenceEngine(nil)
		c.So(engine.Interfere(set, map[int]float64{0: 1, 2: -0.5}, 0.8), ShouldBeNil)
		c.So(engine.Interfere(set, map[int]float64{1: 0.3}, 0.5), ShouldBeNil)

		Convey("When taking a snapshot", func(c C) {
			snapshot := set.Snapshot()
			spew.Dump(snapshot)

			Convey("It should preserve order, amplitudes and evidence counts", func(c C) {
				c.So(snapshot.ID, ShouldEqual, set.ID)
				c.So(snapshot.Collapsed, ShouldBeFalse)
				c.So(len(snapshot.Hypotheses), ShouldEqual, 3)

				for i, record := range snapshot.Hypotheses {
					h := set.Hypothesis(i)
					c.So(record.Content, ShouldEqual, h.Content)
					c.So(record.AmplitudeReal, ShouldAlmostEqual, real(h.Amplitude), 1e-12)
					c.So(record.AmplitudeImag, ShouldAlmostEqual, imag(h.Amplitude), 1e-12)
					c.So(record.EvidenceCount, ShouldEqual, h.EvidenceCount)
				}
			})

			Convey("Restoring should reproduce the distribution", func(c C) {
				restored := Restore(snapshot, nil)
				c.So(restored.ID, ShouldEqual, set.ID)
				c.So(restored.Size(), ShouldEqual, set.Size())

				original := set.Distribution()
				for i, p := range restored.Distribution() {
					c.So(p, ShouldAlmostEqual, original[i], 1e-12)
				}

				Convey("And the restored set should still be open", func(c C) {
					c.So(restored.IsCollapsed(), ShouldBeFalse)
					c.So(restored.Normalize(), ShouldBeNil)
				})
			})
		})

		Convey("When snapshotting after collapse", func(c C) {
			_, err := NewMeasurementOperator(nil).Measure(set, Greedy, 0)
			c.So(err, ShouldBeNil)

			snapshot := set.Snapshot()
			restored := Restore(snapshot, nil)

			Convey("The restored set should be terminal history", func(c C) {
				c.So(snapshot.Collapsed, ShouldBeTrue)
				c.So(restored.IsCollapsed(), ShouldBeTrue)
				c.So(restored.Normalize(), ShouldEqual, ErrAlreadyCollapsed)

				_, err := restored.Add("resurrection attempt", 0.5)
				c.So(err, ShouldEqual, ErrAlreadyCollapsed)
			})
		})

		Convey("When restoring a snapshot without an identifier", func(c C) {
			restored := Restore(Snapshot{
				Hypotheses: []HypothesisRecord{
					{Content: "anon", AmplitudeReal: 1},
				},
			}, nil)

			Convey("A fresh identifier should be generated", func(c C) {
				c.So(restored.ID, ShouldNotBeEmpty)
			})
		})
	})
}
