package config

const (
	WindowWidth  = 900
	WindowHeight = 600
	WindowTitle  = "Przelewanie cieczy w zbiornikach"

	// Start/stop button
	ButtonWidth  = 100
	ButtonHeight = 30
	ButtonX      = 50
	ButtonY      = 550

	// Scene loader button, right of start/stop
	LoadButtonWidth = 100
	LoadButtonX     = ButtonX + ButtonWidth + 20

	TicksPerSecond = 60

	// Tank geometry
	TankWidth  = 100
	TankHeight = 140

	// Flow tone
	SampleRate = 44100
	ToneBase   = 110.0
	ToneHeated = 165.0
	ToneGain   = 0.15
)
