package qhyp

/*
HypothesisRecord is the serialized form of a single hypothesis. The
amplitude is split into its real and imaginary components so the record
stays a plain float pair for any host serializer.
*/
type HypothesisRecord struct {
	Content       string  `json:"content"`
	AmplitudeReal float64 `json:"amplitude_real"`
	AmplitudeImag float64 `json:"amplitude_imag"`
	EvidenceCount int     `json:"evidence_count"`
}

/*
Snapshot is an ordered, point-in-time record of a hypothesis set. It is
sufficient to resume diagnostics on a set after a restart; the engine's
own logic never depends on it.
*/
type Snapshot struct {
	ID         string             `json:"id,omitempty"`
	Collapsed  bool               `json:"collapsed"`
	Hypotheses []HypothesisRecord `json:"hypotheses"`
}

// Snapshot captures the set's current state, preserving insertion order.
func (hs *HypothesisSet) Snapshot() Snapshot {
	records := make([]HypothesisRecord, len(hs.hypotheses))
	for i, h := range hs.hypotheses {
		records[i] = HypothesisRecord{
			Content:       h.Content,
			AmplitudeReal: real(h.Amplitude),
			AmplitudeImag: imag(h.Amplitude),
			EvidenceCount: h.EvidenceCount,
		}
	}

	return Snapshot{
		ID:         hs.ID,
		Collapsed:  hs.collapsed,
		Hypotheses: records,
	}
}

/*
Restore rebuilds a hypothesis set from a snapshot, amplitudes and collapse
state intact. Passing a nil config selects the package defaults. A
restored collapsed set is read-only history, exactly as the original was
after measurement.
*/
func Restore(snapshot Snapshot, config *Config) *HypothesisSet {
	if config == nil {
		config = NewConfig()
	}

	hypotheses := make([]Hypothesis, len(snapshot.Hypotheses))
	for i, record := range snapshot.Hypotheses {
		hypotheses[i] = Hypothesis{
			Content:       record.Content,
			Amplitude:     complex(record.AmplitudeReal, record.AmplitudeImag),
			EvidenceCount: record.EvidenceCount,
		}
	}

	id := snapshot.ID
	if id == "" {
		id = config.NewID()
	}

	return &HypothesisSet{
		ID:         id,
		config:     config,
		hypotheses: hypotheses,
		collapsed:  snapshot.Collapsed,
	}
}
