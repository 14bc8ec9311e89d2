package core

// Color is a semantic foreground role for a screen cell.
// Frontends map roles to concrete colors from the configured theme.
type Color uint8

// Color roles used by the board renderer and HUD.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorTrail
	ColorHead
	ColorGrow
	ColorSpeed
	ColorHUD
	ColorAlert
)

// String returns the theme key for a color role.
func (c Color) String() string {
	switch c {
	case ColorGrid:
		return "grid"
	case ColorTrail:
		return "trail"
	case ColorHead:
		return "head"
	case ColorGrow:
		return "grow"
	case ColorSpeed:
		return "speed"
	case ColorHUD:
		return "hud"
	case ColorAlert:
		return "alert"
	default:
		return "default"
	}
}
