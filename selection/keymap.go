package selection

// Key binding constants used in choiceModel.Update.
const (
	KeyQuit  = "q"
	KeyEsc   = "esc"
	KeyCtrlC = "ctrl+c"
	KeyUp    = "up"
	KeyDown  = "down"
	KeyK     = "k"
	KeyJ     = "j"
	KeyEnter = "enter"
	KeySpace = " "
	KeyHome  = "home"
	KeyEnd   = "end"
)
