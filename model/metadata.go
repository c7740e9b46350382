package model

type Metadata struct {
	Title      string
	Composer   string
	Meter      string
	UnitLength string
	Tempo      int
	Key        string
}

func DefaultMetadata() Metadata {
	return Metadata{
		Meter:      "4/4",
		UnitLength: "1/4",
		Tempo:      120,
		Key:        "C",
	}
}
