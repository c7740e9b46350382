package model

type NoteEvent struct {
	Tick     int
	Duration int
	Pitch    int
	Lyric    string
	Params   ParamState
}

type Score struct {
	Metadata Metadata
	Notes    []NoteEvent

	// tick cursor after the last token, trailing rests included
	EndTick  int
	Warnings []string
}
