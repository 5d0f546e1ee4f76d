package blockfall

// Input is the key-held snapshot the engine samples once per tick.
// Adapters fill it from whatever their backend reports as held at
// sample time; the engine does its own repeat gating with tick
// counters, so no debouncing is expected.
type Input struct {
	Left     bool
	Right    bool
	SoftDrop bool
	Rotate   bool
	Restart  bool
}
