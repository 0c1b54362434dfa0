package component

// Input stores per-frame input state for an entity. Pressed fields are true
// only on the frame the key went down. Mouse deltas are in pixels.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	DashPressed        bool
	JumpPressed        bool
	DebugDamagePressed bool
	RestartPressed     bool
	QuitPressed        bool

	MouseDX float64
	MouseDY float64
}

var InputComponent = NewComponent[Input]()
